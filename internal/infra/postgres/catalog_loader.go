package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"jersey-quiz-service/internal/domain"
)

// CatalogLoader loads the player roster from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := l.pool.Query(ctx, `SELECT id, name, jersey, hint, team, difficulty FROM cricket_players ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	defer rows.Close()

	players := make([]domain.Player, 0, 128)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	return players, nil
}
