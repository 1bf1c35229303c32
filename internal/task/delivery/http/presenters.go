package http

import (
	"shopfloor-tasks/internal/task"
)

// --- Request DTOs ---

type listReq struct {
	Team string `form:"team"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{Team: r.Team}
}

// ---

type taskIDReq struct {
	ID string // populated from URI param
}

func (r taskIDReq) toExecutionInput() task.ExecutionInput {
	return task.ExecutionInput{TaskID: r.ID}
}

func (r taskIDReq) toCompletionInput() task.CompletionInput {
	return task.CompletionInput{TaskID: r.ID}
}

// --- Response DTOs ---

// The use-case outputs already carry JSON tags shaped for the browser
// client, so the delivery layer forwards them under thin wrappers.

type listResp struct {
	Tasks []task.TaskView `json:"tasks"`
	Count int             `json:"count"`
}

func newListResp(out task.ListOutput) listResp {
	return listResp{Tasks: out.Tasks, Count: out.Count}
}

type executionResp struct {
	TaskID           string `json:"task_id"`
	ExecutionCount   int    `json:"execution_count"`
	PromptCompletion bool   `json:"prompt_completion"`
}

func newExecutionResp(out task.ExecutionOutput) executionResp {
	return executionResp{
		TaskID:           out.TaskID,
		ExecutionCount:   out.ExecutionCount,
		PromptCompletion: out.PromptCompletion,
	}
}

type completionResp struct {
	Completed bool          `json:"completed"`
	Task      task.TaskView `json:"task"`
}

func newCompletionResp(out task.CompletionOutput) completionResp {
	return completionResp{Completed: out.Completed, Task: out.Task}
}
