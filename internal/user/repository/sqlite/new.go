package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"braindump/internal/user/repository"
	pkgLog "braindump/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id          TEXT PRIMARY KEY,
	device_id        TEXT NOT NULL DEFAULT '',
	email            TEXT NOT NULL DEFAULT '',
	calendar_enabled INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_users_device_id ON users (device_id);
`

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a SQLite-backed user repository and ensures the schema exists.
func New(ctx context.Context, l pkgLog.Logger, db *sql.DB) (*implRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize users schema: %w", err)
	}
	return &implRepository{l: l, db: db}, nil
}
