package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

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

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := New(context.Background(), &mockLogger{}, db)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return repo
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	daniel := model.User{
		UserID:          "0541234567",
		DeviceID:        "device-abc",
		Email:           "daniel@example.com",
		CalendarEnabled: true,
	}

	t.Run("Lookup before insert", func(t *testing.T) {
		_, err := repo.GetByUserID(ctx, "0541234567")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Upsert and fetch by user id", func(t *testing.T) {
		if err := repo.Upsert(ctx, daniel); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		got, err := repo.GetByUserID(ctx, "0541234567")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if *got != daniel {
			t.Errorf("got %+v, want %+v", *got, daniel)
		}
	})

	t.Run("Fetch by device id", func(t *testing.T) {
		got, err := repo.GetByDevice(ctx, "device-abc")
		if err != nil {
			t.Fatalf("get by device failed: %v", err)
		}
		if got.UserID != "0541234567" {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("Upsert replaces the existing record", func(t *testing.T) {
		updated := daniel
		updated.DeviceID = "device-new"
		updated.CalendarEnabled = false

		if err := repo.Upsert(ctx, updated); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}

		got, err := repo.GetByUserID(ctx, "0541234567")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.DeviceID != "device-new" || got.CalendarEnabled {
			t.Errorf("record not replaced: %+v", got)
		}

		if _, err := repo.GetByDevice(ctx, "device-abc"); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("old device id should not resolve, got %v", err)
		}
	})
}
