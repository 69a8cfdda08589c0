package usecase

import (
	"context"

	"braindump/internal/model"
	"braindump/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// In-memory repository for testing
type mockRepository struct {
	users    map[string]model.User // keyed by user id
	upserted []model.User
}

func (r *mockRepository) GetByDevice(ctx context.Context, deviceID string) (*model.User, error) {
	for _, u := range r.users {
		if u.DeviceID == deviceID {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *mockRepository) GetByUserID(ctx context.Context, userID string) (*model.User, error) {
	if u, ok := r.users[userID]; ok {
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *mockRepository) Upsert(ctx context.Context, u model.User) error {
	if r.users == nil {
		r.users = map[string]model.User{}
	}
	r.users[u.UserID] = u
	r.upserted = append(r.upserted, u)
	return nil
}

// Mock calendar verifier for testing
type mockVerifier struct {
	granted map[string]bool
	calls   []string
}

func (m *mockVerifier) VerifyAccess(ctx context.Context, calendarID string) bool {
	m.calls = append(m.calls, calendarID)
	return m.granted[calendarID]
}
