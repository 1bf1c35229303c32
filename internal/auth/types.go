package auth

import "time"

// LoginInput carries the worker's credentials from the login form.
type LoginInput struct {
	EmployeeID string
	Password   string
}

// Session is an authenticated worker session issued by the remote
// task-management API. The browser keeps it and sends the token back
// with every request; the service itself stores nothing.
type Session struct {
	WorkerID    string    `json:"worker_id"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	Session Session `json:"session"`
}
