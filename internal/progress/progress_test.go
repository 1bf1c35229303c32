package progress_test

import (
	"testing"

	"shopfloor-tasks/internal/model"
	"shopfloor-tasks/internal/progress"
)

func TestIncrement(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want int
	}{
		{"below target", model.Task{ExecutionCount: 2, TargetCount: 5}, 3},
		{"one before target", model.Task{ExecutionCount: 4, TargetCount: 5}, 5},
		{"at target stays", model.Task{ExecutionCount: 5, TargetCount: 5}, 5},
		{"zero target stays zero", model.Task{ExecutionCount: 0, TargetCount: 0}, 0},
		{"completed is frozen", model.Task{ExecutionCount: 3, TargetCount: 5, IsCompleted: true}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progress.Increment(tt.task); got != tt.want {
				t.Errorf("Increment = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDecrement(t *testing.T) {
	tests := []struct {
		name string
		task model.Task
		want int
	}{
		{"above zero", model.Task{ExecutionCount: 3, TargetCount: 5}, 2},
		{"at zero stays", model.Task{ExecutionCount: 0, TargetCount: 5}, 0},
		{"completed is frozen", model.Task{ExecutionCount: 4, TargetCount: 5, IsCompleted: true}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := progress.Decrement(tt.task); got != tt.want {
				t.Errorf("Decrement = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIncrementDoesNotMutate(t *testing.T) {
	task := model.Task{ExecutionCount: 2, TargetCount: 5}
	progress.Increment(task)
	progress.Decrement(task)
	if task.ExecutionCount != 2 {
		t.Errorf("task mutated: count = %d", task.ExecutionCount)
	}
}

func TestShouldPromptCompletion(t *testing.T) {
	tests := []struct {
		name     string
		task     model.Task
		newCount int
		want     bool
	}{
		{"reaches target", model.Task{ExecutionCount: 4, TargetCount: 5}, 5, true},
		{"below target", model.Task{ExecutionCount: 2, TargetCount: 5}, 3, false},
		{"already completed", model.Task{ExecutionCount: 5, TargetCount: 5, IsCompleted: true}, 5, false},
		{"zero target prompts at zero", model.Task{ExecutionCount: 0, TargetCount: 0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := progress.ShouldPromptCompletion(tt.task, tt.newCount)
			if got != tt.want {
				t.Errorf("ShouldPromptCompletion = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmCompletion(t *testing.T) {
	t.Run("at target marks completed", func(t *testing.T) {
		task := model.Task{ID: "t1", ExecutionCount: 5, TargetCount: 5}
		got := progress.ConfirmCompletion(task)
		if !got.IsCompleted {
			t.Errorf("expected completed task")
		}
		if task.IsCompleted {
			t.Errorf("input task mutated")
		}
	})

	t.Run("stale count is a no-op", func(t *testing.T) {
		task := model.Task{ID: "t1", ExecutionCount: 4, TargetCount: 5}
		got := progress.ConfirmCompletion(task)
		if got.IsCompleted {
			t.Errorf("stale confirmation must not complete the task")
		}
	})
}

func TestDeclineCompletion(t *testing.T) {
	task := model.Task{ID: "t1", ExecutionCount: 5, TargetCount: 5}
	got := progress.DeclineCompletion(task)
	if got.IsCompleted {
		t.Errorf("declined task must stay active")
	}

	// Idempotent on an already-active task.
	again := progress.DeclineCompletion(got)
	if again.IsCompleted {
		t.Errorf("decline must be idempotent")
	}
}

// Increment at target, prompt, then confirm: the full workflow path.
func TestCompletionWorkflow(t *testing.T) {
	task := model.Task{ID: "t1", ExecutionCount: 4, TargetCount: 5}

	newCount := progress.Increment(task)
	if newCount != 5 {
		t.Fatalf("expected count 5, got %d", newCount)
	}
	if !progress.ShouldPromptCompletion(task, newCount) {
		t.Fatalf("expected completion prompt at target")
	}

	task.ExecutionCount = newCount
	done := progress.ConfirmCompletion(task)
	if !done.IsCompleted {
		t.Fatalf("expected confirmed task to be completed")
	}

	// Completed tasks are frozen from then on.
	if progress.Increment(done) != 5 || progress.Decrement(done) != 5 {
		t.Errorf("completed task counters must not change")
	}
}
