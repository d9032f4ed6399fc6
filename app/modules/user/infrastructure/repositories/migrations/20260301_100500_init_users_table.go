package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS users (
				id BIGSERIAL PRIMARY KEY,
				firebase_uid TEXT NOT NULL UNIQUE,
				email TEXT NOT NULL,
				display_name TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
			);
		`)
		if err != nil {
			return fmt.Errorf("failed to create users table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS users;`)
		if err != nil {
			return fmt.Errorf("failed to drop users table: %w", err)
		}
		return nil
	})
}
