package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates the full-text search GIN indexes. The same
// statements live in the migration files; this helper exists so test
// databases created through ent auto-migration get them too.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_feed_articles_fts
		ON feed_articles USING gin(to_tsvector('english', title || ' ' || COALESCE(content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create feed_articles GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_content_fts
		ON chat_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create chat_messages GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates the partial and expression indexes that
// Ent cannot express in schema definitions. These must match the
// statements in 20260418120000_init_schema.up.sql and
// 20260730141500_add_workflow_archival.up.sql.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflows_pending_queue
		ON workflows (created_at)
		WHERE status = 'pending'`)
	if err != nil {
		return fmt.Errorf("failed to create pending queue index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflows_running_heartbeat
		ON workflows (last_heartbeat_at)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create running heartbeat index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workflows_archive_scan
		ON workflows (completed_at)
		WHERE archived_at IS NULL AND status IN ('completed', 'failed', 'cancelled')`)
	if err != nil {
		return fmt.Errorf("failed to create archive scan index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_channel_id
		ON events (channel, id)`)
	if err != nil {
		return fmt.Errorf("failed to create event catchup index: %w", err)
	}

	return nil
}
