package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopfloor-tasks/internal/task/repository/remote"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/workers/me/tasks", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		tasks := []remote.TaskRecord{
			{ID: "t1", Name: "Tighten bolts", ExecutionCount: 2, TargetCount: 5, Comments: []string{"PRIORITY:2"}},
			{ID: "t2", Name: "Clean station", ExecutionCount: 1, TargetCount: 1, IsCompleted: true},
		}
		if r.URL.Query().Get("team") == "assembly" {
			tasks = tasks[:1]
		}
		json.NewEncoder(w).Encode(map[string]any{"tasks": tasks})
	})

	mux.HandleFunc("/api/v1/tasks/t1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(remote.TaskRecord{ID: "t1", Name: "Tighten bolts", ExecutionCount: 2, TargetCount: 5})
	})

	mux.HandleFunc("/api/v1/tasks/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/api/v1/tasks/t1/executions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req remote.UpdateExecutionsRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.ExecutionCount < 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/api/v1/tasks/t1/complete", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return httptest.NewServer(mux)
}

func TestClient(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client := remote.NewClient(ts.URL, 5*time.Second)
	ctx := context.Background()

	t.Run("ListTasks", func(t *testing.T) {
		tasks, err := client.ListTasks(ctx, "test-token", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(tasks))
		}
		if tasks[0].ID != "t1" || tasks[0].TargetCount != 5 {
			t.Errorf("unexpected first record: %+v", tasks[0])
		}
	})

	t.Run("ListTasks team filter", func(t *testing.T) {
		tasks, err := client.ListTasks(ctx, "test-token", "assembly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(tasks) != 1 {
			t.Errorf("expected 1 task for team filter, got %d", len(tasks))
		}
	})

	t.Run("ListTasks bad token", func(t *testing.T) {
		_, err := client.ListTasks(ctx, "wrong", "")
		var apiErr *remote.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 APIError, got %v", err)
		}
	})

	t.Run("GetTask", func(t *testing.T) {
		rec, err := client.GetTask(ctx, "test-token", "t1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Name != "Tighten bolts" {
			t.Errorf("unexpected record: %+v", rec)
		}
	})

	t.Run("GetTask not found", func(t *testing.T) {
		_, err := client.GetTask(ctx, "test-token", "missing")
		var apiErr *remote.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 APIError, got %v", err)
		}
	})

	t.Run("UpdateExecutions", func(t *testing.T) {
		if err := client.UpdateExecutions(ctx, "test-token", "t1", 3); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("CompleteTask", func(t *testing.T) {
		if err := client.CompleteTask(ctx, "test-token", "t1"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
