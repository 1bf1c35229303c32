package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfloor-tasks/internal/auth"
	"shopfloor-tasks/internal/auth/usecase"
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

func newTokenServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("grant_type") != "password" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("username") != "w42" || r.PostForm.Get("password") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-abc","token_type":"bearer","expires_in":3600}`))
	}))
}

func TestLogin(t *testing.T) {
	ts := newTokenServer()
	defer ts.Close()

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, ts.URL+"/oauth/token", "shopfloor-client")

		out, err := uc.Login(ctx, auth.LoginInput{EmployeeID: "w42", Password: "secret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.AccessToken != "tok-abc" {
			t.Errorf("unexpected token: %+v", out.Session)
		}
		if out.Session.WorkerID != "w42" {
			t.Errorf("unexpected worker id: %+v", out.Session)
		}
		if out.Session.ExpiresAt.IsZero() {
			t.Errorf("expected expiry to be set")
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, ts.URL+"/oauth/token", "shopfloor-client")

		_, err := uc.Login(ctx, auth.LoginInput{EmployeeID: "w42", Password: "wrong"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("empty credentials", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, ts.URL+"/oauth/token", "shopfloor-client")

		_, err := uc.Login(ctx, auth.LoginInput{})
		if !errors.Is(err, auth.ErrEmptyCredentials) {
			t.Errorf("expected ErrEmptyCredentials, got %v", err)
		}
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, "http://127.0.0.1:1/oauth/token", "shopfloor-client")

		_, err := uc.Login(ctx, auth.LoginInput{EmployeeID: "w42", Password: "secret"})
		if !errors.Is(err, auth.ErrGatewayUnavailable) {
			t.Errorf("expected ErrGatewayUnavailable, got %v", err)
		}
	})
}
