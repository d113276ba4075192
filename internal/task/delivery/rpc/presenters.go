package rpc

import (
	"assistant-tools/internal/model"
	"assistant-tools/internal/task"
	"assistant-tools/pkg/response"
)

// Payload keys of the success envelopes.
const (
	keyTask        = "task"
	keyTasks       = "tasks"
	keyDeletedTask = "deleted_task"
	keySummary     = "summary"
)

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	DueDate     *response.DateTime `json:"due_date"`
	Priority    string             `json:"priority"`
	Completed   bool               `json:"completed"`
	Assignee    *string            `json:"assignee"`
	Tags        []string           `json:"tags"`
	CreatedAt   response.DateTime  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     response.NewDateTime(t.DueDate),
		Priority:    t.Priority,
		Completed:   t.Completed,
		Assignee:    t.Assignee,
		Tags:        tags,
		CreatedAt:   response.DateTime(t.CreatedAt),
	}
}

func newTaskListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type priorityCountsResp struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type summaryResp struct {
	TotalTasks           int                `json:"total_tasks"`
	CompletedTasks       int                `json:"completed_tasks"`
	IncompleteTasks      int                `json:"incomplete_tasks"`
	CompletionPercentage float64            `json:"completion_percentage"`
	PriorityCounts       priorityCountsResp `json:"priority_counts"`
	Overdue              int                `json:"overdue"`
	DueToday             int                `json:"due_today"`
	DueThisWeek          int                `json:"due_this_week"`
}

func newSummaryResp(s task.Summary) summaryResp {
	return summaryResp{
		TotalTasks:           s.TotalTasks,
		CompletedTasks:       s.CompletedTasks,
		IncompleteTasks:      s.IncompleteTasks,
		CompletionPercentage: s.CompletionPercentage,
		PriorityCounts: priorityCountsResp{
			High:   s.PriorityCounts.High,
			Medium: s.PriorityCounts.Medium,
			Low:    s.PriorityCounts.Low,
		},
		Overdue:     s.Overdue,
		DueToday:    s.DueToday,
		DueThisWeek: s.DueThisWeek,
	}
}
