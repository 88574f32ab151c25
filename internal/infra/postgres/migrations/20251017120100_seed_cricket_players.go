package migrations

import (
	"context"

	"github.com/uptrace/bun"

	"jersey-quiz-service/internal/catalog"
)

type playerRow struct {
	bun.BaseModel `bun:"table:cricket_players"`

	ID         string `bun:"id,pk"`
	Name       string `bun:"name,notnull"`
	Jersey     int    `bun:"jersey,notnull"`
	Hint       string `bun:"hint,notnull"`
	Team       string `bun:"team,notnull"`
	Difficulty string `bun:"difficulty,notnull"`
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			seed := catalog.Seed()
			rows := make([]playerRow, 0, len(seed))
			for _, p := range seed {
				rows = append(rows, playerRow{
					ID:         p.ID,
					Name:       p.Name,
					Jersey:     p.Jersey,
					Hint:       p.Hint,
					Team:       p.Team,
					Difficulty: string(p.Difficulty),
				})
			}
			_, err := db.NewInsert().Model(&rows).On("CONFLICT (id) DO NOTHING").Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			ids := make([]string, 0, 128)
			for _, p := range catalog.Seed() {
				ids = append(ids, p.ID)
			}
			_, err := db.NewDelete().Model((*playerRow)(nil)).Where("id IN (?)", bun.In(ids)).Exec(ctx)
			return err
		},
	)
}
