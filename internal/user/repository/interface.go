package repository

import (
	"context"
	"errors"

	"braindump/internal/model"
)

// ErrNotFound is returned when no user record matches the lookup.
var ErrNotFound = errors.New("user record not found")

// Repository is the persistence interface for user identity records.
type Repository interface {
	// GetByDevice looks a user up by the technical device id.
	GetByDevice(ctx context.Context, deviceID string) (*model.User, error)

	// GetByUserID looks a user up by the canonical id (phone number).
	GetByUserID(ctx context.Context, userID string) (*model.User, error)

	// Upsert inserts or replaces the record keyed by UserID.
	Upsert(ctx context.Context, u model.User) error
}
