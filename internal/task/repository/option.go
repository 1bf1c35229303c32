package repository

// ListAssignedOptions holds the parameters for listing a worker's tasks.
type ListAssignedOptions struct {
	Team string // Filter by team name (optional)
}
