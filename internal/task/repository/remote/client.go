package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the HTTP wrapper for the remote task-management REST API.
// It carries no credentials: the bearer token arrives with every call,
// so one client instance serves all worker sessions.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new task API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListTasks lists the authenticated worker's assigned tasks via
// GET /api/v1/workers/me/tasks, optionally filtered by team.
func (c *Client) ListTasks(ctx context.Context, token, team string) ([]TaskRecord, error) {
	u := fmt.Sprintf("%s/api/v1/workers/me/tasks", c.baseURL)
	if team != "" {
		u += "?team=" + url.QueryEscape(team)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build list tasks request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task list API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "list"); err != nil {
		return nil, err
	}

	var listResp struct {
		Tasks []TaskRecord `json:"tasks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listResp); err != nil {
		return nil, fmt.Errorf("failed to decode task list response: %w", err)
	}
	return listResp.Tasks, nil
}

// GetTask fetches a single task by id via GET /api/v1/tasks/{id}.
func (c *Client) GetTask(ctx context.Context, token, id string) (*TaskRecord, error) {
	u := fmt.Sprintf("%s/api/v1/tasks/%s", c.baseURL, url.PathEscape(id))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build get task request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call task get API: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, "get"); err != nil {
		return nil, err
	}

	var record TaskRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode task get response: %w", err)
	}
	return &record, nil
}

// UpdateExecutions persists a new execution count via
// PATCH /api/v1/tasks/{id}/executions.
func (c *Client) UpdateExecutions(ctx context.Context, token, id string, count int) error {
	u := fmt.Sprintf("%s/api/v1/tasks/%s/executions", c.baseURL, url.PathEscape(id))

	body, err := json.Marshal(UpdateExecutionsRequest{ExecutionCount: count})
	if err != nil {
		return fmt.Errorf("failed to marshal executions request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build executions request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call executions API: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, "executions")
}

// CompleteTask marks the task completed via POST /api/v1/tasks/{id}/complete.
func (c *Client) CompleteTask(ctx context.Context, token, id string) error {
	u := fmt.Sprintf("%s/api/v1/tasks/%s/complete", c.baseURL, url.PathEscape(id))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build complete request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call complete API: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, "complete")
}

// checkStatus normalizes non-2xx responses into errors. Callers in the
// repository layer map the status codes onto domain errors.
func checkStatus(resp *http.Response, op string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(resp.Body)
	return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
}

// APIError is a non-2xx answer from the task API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("task API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// ---- Request/Response types scoped to this package ----

// TaskRecord is the raw task object from the task-management API.
type TaskRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ExecutionCount int      `json:"executionCount"`
	TargetCount    int      `json:"targetCount"`
	IsCompleted    bool     `json:"isCompleted"`
	Comments       []string `json:"comments,omitempty"`
	TeamName       string   `json:"teamName,omitempty"`
	HasConflict    bool     `json:"hasConflict,omitempty"`
}

// UpdateExecutionsRequest is the body for PATCH /api/v1/tasks/{id}/executions.
type UpdateExecutionsRequest struct {
	ExecutionCount int `json:"executionCount"`
}
