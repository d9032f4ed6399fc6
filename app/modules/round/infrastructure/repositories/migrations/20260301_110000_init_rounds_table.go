package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS rounds (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				course_id UUID NOT NULL REFERENCES golf_courses(id),
				tee_box_id UUID NOT NULL REFERENCES tee_boxes(id),
				date_played TEXT NOT NULL,
				submission_type TEXT NOT NULL,
				front_nine_scores JSONB,
				back_nine_scores JSONB,
				front_nine_putts JSONB,
				back_nine_putts JSONB,
				front_nine_fairways JSONB,
				back_nine_fairways JSONB,
				front_nine_gir JSONB,
				back_nine_gir JSONB,
				total_score INTEGER NOT NULL,
				total_putts INTEGER NOT NULL,
				total_fairways_hit INTEGER NOT NULL,
				total_gir INTEGER NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
			);
			CREATE INDEX IF NOT EXISTS idx_rounds_user_id ON rounds(user_id);
			CREATE INDEX IF NOT EXISTS idx_rounds_date_played ON rounds(user_id, date_played DESC);
		`)
		if err != nil {
			return fmt.Errorf("failed to create rounds table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS rounds;`)
		if err != nil {
			return fmt.Errorf("failed to drop rounds table: %w", err)
		}
		return nil
	})
}
