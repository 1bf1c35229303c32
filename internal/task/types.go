package task

// TaskView is the presentation-ready projection of a task. It is the
// contract consumed by the browser front end; markup and styling stay on
// that side.
type TaskView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TeamName        string `json:"team_name,omitempty"`
	HasConflict     bool   `json:"has_conflict,omitempty"`
	Completed       bool   `json:"completed"`
	ProgressText    string `json:"progress_text,omitempty"`   // "3 / 5", active tasks only
	ProgressPercent int    `json:"progress_percent"`          // 0..100; fixed 100 for completed tasks
	PriorityColor   string `json:"priority_color,omitempty"`  // red/yellow/blue, active tasks only
	SuccessMark     bool   `json:"success_mark,omitempty"`    // completed tasks only
}

// ListInput filters the assigned-task listing.
type ListInput struct {
	Team string // Optional team filter
}

// ListOutput is the ordered, render-ready task list.
type ListOutput struct {
	Tasks []TaskView `json:"tasks"`
	Count int        `json:"count"`
}

// ExecutionInput identifies the task whose counter is changing.
type ExecutionInput struct {
	TaskID string
}

// ExecutionOutput is the result of an increment or decrement.
type ExecutionOutput struct {
	TaskID           string `json:"task_id"`
	ExecutionCount   int    `json:"execution_count"`
	PromptCompletion bool   `json:"prompt_completion"` // True when the UI should ask for completion confirmation
}

// CompletionInput identifies the task whose completion prompt is resolved.
type CompletionInput struct {
	TaskID string
}

// CompletionOutput is the result of confirming or declining completion.
type CompletionOutput struct {
	Completed bool     `json:"completed"` // False when a stale confirmation was ignored
	Task      TaskView `json:"task"`
}
