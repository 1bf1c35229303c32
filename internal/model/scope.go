package model

// Scope carries the per-request identity and credentials of a worker.
// It is built by the auth middleware from the Authorization header and
// passed explicitly through every use case and gateway call; there is
// no ambient session singleton.
type Scope struct {
	WorkerID    string // Employee identifier resolved from the session
	AccessToken string // Bearer token for the remote task-management API
}
