package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"braindump/internal/model"
	"braindump/internal/user/repository"
)

func (r *implRepository) GetByDevice(ctx context.Context, deviceID string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, device_id, email, calendar_enabled FROM users WHERE device_id = ? LIMIT 1`,
		deviceID)
	return scanUser(row)
}

func (r *implRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT user_id, device_id, email, calendar_enabled FROM users WHERE user_id = ? LIMIT 1`,
		userID)
	return scanUser(row)
}

func (r *implRepository) Upsert(ctx context.Context, u model.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (user_id, device_id, email, calendar_enabled)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			device_id        = excluded.device_id,
			email            = excluded.email,
			calendar_enabled = excluded.calendar_enabled`,
		u.UserID, u.DeviceID, u.Email, boolToInt(u.CalendarEnabled))
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", u.UserID, err)
	}
	r.l.Infof(ctx, "internal.user.repository.sqlite: upserted user %s (device %s)", u.UserID, u.DeviceID)
	return nil
}

func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var enabled int
	err := row.Scan(&u.UserID, &u.DeviceID, &u.Email, &enabled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	u.CalendarEnabled = enabled != 0
	return &u, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
