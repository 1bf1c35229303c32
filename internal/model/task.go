package model

// Task represents a production task assigned to a worker.
type Task struct {
	ID             string   // Stable identifier from the task-management API
	Name           string   // Display label, non-empty
	ExecutionCount int      // Times the task has been performed, >= 0
	TargetCount    int      // Required repetitions; 0 is a valid degenerate target
	IsCompleted    bool     // Completed tasks are frozen: counters never change
	Priority       int      // 1..10, derived from Comments on materialization (1 = most urgent)
	Comments       []string // Free-text annotations; source of the priority derivation
	TeamName       string   // Display-only team label (optional)
	HasConflict    bool     // Presentation flag only, no workflow behavior
}
