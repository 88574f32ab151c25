package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"jersey-quiz-service/internal/domain"
)

// ScoreStore persists finished games in the game_scores table.
type ScoreStore struct {
	pool *pgxpool.Pool
}

func NewScoreStore(pool *pgxpool.Pool) *ScoreStore {
	return &ScoreStore{pool: pool}
}

const scoreColumns = `id, player_name, level, correct_answers, wrong_answers, skipped_answers, completed_at`

func (s *ScoreStore) Create(ctx context.Context, r domain.ScoreRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO game_scores (`+scoreColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.PlayerName, r.Level, r.CorrectAnswers, r.WrongAnswers, r.SkippedAnswers, r.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *ScoreStore) Get(ctx context.Context, id string) (domain.ScoreRecord, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+scoreColumns+` FROM game_scores WHERE id=$1`, id)
	record, err := scanScore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ScoreRecord{}, domain.ErrScoreNotFound
	}
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("get score: %w", err)
	}
	return record, nil
}

func (s *ScoreStore) Top(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM game_scores ORDER BY correct_answers DESC, completed_at ASC, id ASC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ScoreRecord, 0, limit)
	for rows.Next() {
		record, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanScore(row pgx.Row) (domain.ScoreRecord, error) {
	var r domain.ScoreRecord
	err := row.Scan(&r.ID, &r.PlayerName, &r.Level, &r.CorrectAnswers, &r.WrongAnswers, &r.SkippedAnswers, &r.CompletedAt)
	if err != nil {
		return domain.ScoreRecord{}, err
	}
	r.CompletedAt = r.CompletedAt.UTC()
	return r, nil
}
