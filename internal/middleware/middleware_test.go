package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shopfloor-tasks/internal/middleware"
	"shopfloor-tasks/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newEngine(mw middleware.Middleware) (*gin.Engine, *model.Scope) {
	gin.SetMode(gin.TestMode)
	captured := &model.Scope{}
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		*captured = middleware.GetScope(c)
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestAuth(t *testing.T) {
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	t.Run("valid bearer token", func(t *testing.T) {
		r, captured := newEngine(mw)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer tok-123")
		req.Header.Set("X-Worker-Id", "w42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if captured.AccessToken != "tok-123" || captured.WorkerID != "w42" {
			t.Errorf("unexpected scope: %+v", captured)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r, _ := newEngine(mw)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r, _ := newEngine(mw)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, middleware.Config{})

	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("expected a generated request id")
		}
	})

	t.Run("echoes the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "given-id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if got := w.Header().Get(middleware.RequestIDHeader); got != "given-id" {
			t.Errorf("expected given-id, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("limits after burst", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{RateLimitPerMin: 10})
		r := gin.New()
		r.Use(mw.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		limited := false
		for i := 0; i < 20; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Worker-Id", "w1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				limited = true
				break
			}
		}
		if !limited {
			t.Errorf("expected rate limiting to kick in")
		}
	})

	t.Run("disabled when unconfigured", func(t *testing.T) {
		mw := middleware.New(&mockLogger{}, middleware.Config{})
		r := gin.New()
		r.Use(mw.RateLimit())
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("request %d unexpectedly limited", i)
			}
		}
	})
}
