package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"braindump/internal/braindump"
	"braindump/internal/braindump/delivery/telegram"
	"braindump/internal/model"
	"braindump/internal/user"
	pkgTelegram "braindump/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockBrainDumpUC struct {
	mu        sync.Mutex
	resp      braindump.Response
	err       error
	lastScope model.Scope
}

func (m *mockBrainDumpUC) Process(ctx context.Context, sc model.Scope, input braindump.ProcessInput) (braindump.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastScope = sc
	return m.resp, m.err
}

func (m *mockBrainDumpUC) scope() model.Scope {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastScope
}

type mockUserUC struct {
	record *model.User
	err    error
}

func (m *mockUserUC) ResolveDevice(ctx context.Context, deviceID string) (*model.User, error) {
	return m.record, m.err
}
func (m *mockUserUC) VerifyDevice(ctx context.Context, deviceID string) bool { return false }
func (m *mockUserUC) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return m.record, m.err
}
func (m *mockUserUC) LookupEmail(ctx context.Context, userID string) (string, error) {
	return "", user.ErrNoEmail
}
func (m *mockUserUC) Register(ctx context.Context, input user.RegisterInput) (*model.User, error) {
	return nil, user.ErrNotFound
}

// ── Test Helpers ───────────────────────────────────────────────────────────

type capturedMessages struct {
	mu   sync.Mutex
	msgs []string
}

func (c *capturedMessages) add(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, text)
}

func (c *capturedMessages) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}

func (c *capturedMessages) waitFor(atLeast int, timeout time.Duration) []string {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if out := c.snapshot(); len(out) >= atLeast {
			return out
		}
		time.Sleep(20 * time.Millisecond)
	}
	return c.snapshot()
}

type testEnv struct {
	engine   *gin.Engine
	uc       *mockBrainDumpUC
	users    *mockUserUC
	captured *capturedMessages
}

func newTestEnv(t *testing.T) (*testEnv, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := &capturedMessages{}

	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				captured.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockBrainDumpUC{}
	users := &mockUserUC{}

	engine := gin.New()
	h := telegram.New(&mockLogger{}, uc, users, bot, "https://example.test/register")
	engine.POST("/webhook/telegram", h.HandleWebhook)

	return &testEnv{engine: engine, uc: uc, users: users, captured: captured}, tgServer
}

func sendWebhook(engine *gin.Engine, text string) *httptest.ResponseRecorder {
	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456, Username: "dana"},
			Text:      text,
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func assertContains(t *testing.T, msgs []string, substr string) {
	t.Helper()
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return
		}
	}
	t.Errorf("expected a message containing %q, got: %v", substr, msgs)
}

func registeredUser() *model.User {
	return &model.User{UserID: "0541234567", DeviceID: "telegram_456", Email: "me@example.com", CalendarEnabled: true}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBufferString("{bad json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleWebhook_NonMessageUpdate(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{UpdateID: 1, Message: nil}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestHandleStart(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	w := sendWebhook(env.engine, "/start")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "Brain Dump")
}

func TestHandleHelp(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	sendWebhook(env.engine, "/help")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "איך משתמשים")
}

func TestUnregisteredChat(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.users.err = user.ErrNotFound

	sendWebhook(env.engine, "תזכיר לי להתקשר לדנה")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "https://example.test/register")
}

func TestPipelineReply(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.users.record = registeredUser()
	env.uc.resp = braindump.GenericResponse{
		Success: true,
		Message: "משימה נוספה: 'לקנות חלב'",
		Status:  braindump.StatusSuccess,
	}

	w := sendWebhook(env.engine, "לקנות חלב")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "משימה נוספה")

	if sc := env.uc.scope(); sc.UserID != "0541234567" {
		t.Errorf("expected resolved user id in scope, got %q", sc.UserID)
	}
}

func TestNoteReplyIsFormattedContent(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.users.record = registeredUser()
	env.uc.resp = braindump.NoteResponse{
		Status:  braindump.StatusSuccess,
		Intent:  braindump.IntentNote,
		Message: "רעיון למתנה\n\n(06/02/2026 15:30)",
	}

	sendWebhook(env.engine, "רעיון למתנה")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "רעיון למתנה")
}

func TestVoiceMessagePrompt(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	update := pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Voice:     &pkgTelegram.Voice{FileID: "voice-1", Duration: 4},
		},
	}
	body, _ := json.Marshal(update)
	req, _ := http.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "טקסט")
}

func TestPipelineFailureReply(t *testing.T) {
	env, tgSrv := newTestEnv(t)
	defer tgSrv.Close()

	env.users.record = registeredUser()
	env.uc.err = errors.New("provider down")

	sendWebhook(env.engine, "לקנות חלב")
	msgs := env.captured.waitFor(1, 500*time.Millisecond)
	assertContains(t, msgs, "משהו השתבש")
}
