package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"braindump/internal/model"
	"braindump/internal/user/repository"
)

// cacheSize bounds the identity cache; every request resolves a device id,
// so hot devices should never hit the database twice in a row.
const cacheSize = 1024

type implRepository struct {
	next     repository.Repository
	byID     *lru.Cache[string, model.User] // keyed by user id
	byDevice *lru.Cache[string, string]     // device id -> user id
}

var _ repository.Repository = (*implRepository)(nil)

// New wraps a repository with an LRU read cache. Upserts write through and
// invalidate both key spaces.
func New(next repository.Repository) (*implRepository, error) {
	byID, err := lru.New[string, model.User](cacheSize)
	if err != nil {
		return nil, err
	}
	byDevice, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	return &implRepository{next: next, byID: byID, byDevice: byDevice}, nil
}

func (r *implRepository) GetByDevice(ctx context.Context, deviceID string) (*model.User, error) {
	if userID, ok := r.byDevice.Get(deviceID); ok {
		if u, ok := r.byID.Get(userID); ok {
			return &u, nil
		}
	}

	u, err := r.next.GetByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	r.store(*u)
	return u, nil
}

func (r *implRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	if u, ok := r.byID.Get(userID); ok {
		return &u, nil
	}

	u, err := r.next.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.store(*u)
	return u, nil
}

func (r *implRepository) Upsert(ctx context.Context, u model.User) error {
	if err := r.next.Upsert(ctx, u); err != nil {
		return err
	}
	// The record may have moved to a new device id; drop any stale mapping
	// before re-priming.
	r.byID.Remove(u.UserID)
	r.byDevice.Remove(u.DeviceID)
	r.store(u)
	return nil
}

func (r *implRepository) store(u model.User) {
	r.byID.Add(u.UserID, u)
	if u.DeviceID != "" {
		r.byDevice.Add(u.DeviceID, u.UserID)
	}
}
