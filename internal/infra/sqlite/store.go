package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jersey-quiz-service/internal/domain"
)

// Store keeps the roster and score records in a local SQLite file. It serves
// as both catalog loader and score store when no Postgres URL is configured.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// SeedPlayers inserts players that are not stored yet.
func (s *Store) SeedPlayers(ctx context.Context, players []domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, p := range players {
		_, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO cricket_players (id, name, jersey, hint, team, difficulty)
			VALUES (?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, p.Jersey, p.Hint, p.Team, string(p.Difficulty))
		if err != nil {
			return fmt.Errorf("seed player %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func (s *Store) LoadPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, jersey, hint, team, difficulty
		FROM cricket_players
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var (
			p    domain.Player
			tier string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Jersey, &p.Hint, &p.Team, &tier); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		p.Difficulty = domain.Tier(tier)
		players = append(players, p)
	}
	return players, rows.Err()
}

func (s *Store) Create(ctx context.Context, r domain.ScoreRecord) error {
	var name sql.NullString
	if r.PlayerName != nil {
		name = sql.NullString{String: *r.PlayerName, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO game_scores (id, player_name, level, correct_answers, wrong_answers, skipped_answers, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, r.ID, name, r.Level, r.CorrectAnswers, r.WrongAnswers, r.SkippedAnswers, r.CompletedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.ScoreRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, player_name, level, correct_answers, wrong_answers, skipped_answers, completed_at
		FROM game_scores
		WHERE id = ?
	`, id)
	record, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ScoreRecord{}, domain.ErrScoreNotFound
	}
	return record, err
}

func (s *Store) Top(ctx context.Context, limit int) ([]domain.ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, player_name, level, correct_answers, wrong_answers, skipped_answers, completed_at
		FROM game_scores
		ORDER BY correct_answers DESC, completed_at ASC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()

	records := []domain.ScoreRecord{}
	for rows.Next() {
		record, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScore(row scanner) (domain.ScoreRecord, error) {
	var (
		r           domain.ScoreRecord
		name        sql.NullString
		completedAt int64
	)
	if err := row.Scan(&r.ID, &name, &r.Level, &r.CorrectAnswers, &r.WrongAnswers, &r.SkippedAnswers, &completedAt); err != nil {
		return domain.ScoreRecord{}, err
	}
	if name.Valid {
		r.PlayerName = &name.String
	}
	r.CompletedAt = time.Unix(0, completedAt).UTC()
	return r, nil
}
