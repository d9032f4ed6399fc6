package coursemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating golf_courses and tee_boxes tables...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS golf_courses (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name TEXT NOT NULL,
				city TEXT,
				state TEXT
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create golf_courses table: %w", err)
		}

		_, err = db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS tee_boxes (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				course_id UUID NOT NULL REFERENCES golf_courses(id) ON DELETE CASCADE,
				tee_name TEXT NOT NULL,
				front_nine_par JSONB NOT NULL,
				back_nine_par JSONB NOT NULL,
				front_nine_distance JSONB,
				back_nine_distance JSONB,
				slope INTEGER,
				rating NUMERIC,
				total_distance INTEGER
			);
			CREATE INDEX IF NOT EXISTS idx_tee_boxes_course_id ON tee_boxes(course_id);
		`)
		if err != nil {
			return fmt.Errorf("failed to create tee_boxes table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS tee_boxes;
			DROP TABLE IF EXISTS golf_courses;
		`)
		if err != nil {
			return fmt.Errorf("failed to drop course tables: %w", err)
		}
		return nil
	})
}
