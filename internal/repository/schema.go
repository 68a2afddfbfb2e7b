package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS content_pillars (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		title TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_posts (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		batch_id TEXT NOT NULL,
		channel TEXT NOT NULL,
		placement TEXT NOT NULL,
		caption TEXT NOT NULL DEFAULT '',
		media_kind TEXT NOT NULL,
		scheduled_date DATE NOT NULL,
		scheduled_time TIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'scheduled',
		pillar_id BIGINT REFERENCES content_pillars (id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS scheduled_posts_user_date_idx ON scheduled_posts (user_id, scheduled_date)`,
	`CREATE TABLE IF NOT EXISTS post_media (
		post_id BIGINT NOT NULL REFERENCES scheduled_posts (id) ON DELETE CASCADE,
		media_ref TEXT NOT NULL,
		display_order INT NOT NULL,
		PRIMARY KEY (post_id, display_order)
	)`,
	`CREATE TABLE IF NOT EXISTS relay_history (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL,
		post_id BIGINT NOT NULL,
		channel TEXT NOT NULL,
		error_message TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the planner tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	return nil
}
