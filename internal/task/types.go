package task

import "assistant-tools/internal/model"

// Sort keys and directions accepted by List.
const (
	SortByDueDate   = "due_date"
	SortByPriority  = "priority"
	SortByCreatedAt = "created_at"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     string // resolved with the task policy; unrecognised text means no due date
	Priority    string // empty means medium
	Completed   bool
	Assignee    *string
	Tags        []string
}

// ListTasksInput filters are ANDed. Unset optionals do not filter.
type ListTasksInput struct {
	Completed     model.Optional[bool]
	Priority      model.Optional[string]
	Assignee      model.Optional[*string] // nil value matches unassigned tasks
	Tag           model.Optional[string]
	DueDateBefore string // skipped when it does not resolve
	DueDateAfter  string // skipped when it does not resolve
	SortBy        string // empty means created_at; unknown keys keep insertion order
	SortDir       string // anything but asc means desc
}

// UpdateTaskInput carries only the supplied fields. A supplied DueDate that
// is empty or does not resolve clears the due date.
type UpdateTaskInput struct {
	ID          string
	Title       model.Optional[string]
	Description model.Optional[*string]
	DueDate     model.Optional[string]
	Priority    model.Optional[string]
	Completed   model.Optional[bool]
	Assignee    model.Optional[*string]
	Tags        model.Optional[[]string]
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type DeleteTaskOutput struct {
	Task model.Task
}

type MarkCompletedOutput struct {
	Task model.Task
}

// PriorityCounts counts tasks carrying each recognised priority.
type PriorityCounts struct {
	High   int
	Medium int
	Low    int
}

// Summary aggregates the store. Due-date buckets count incomplete tasks only.
type Summary struct {
	TotalTasks           int
	CompletedTasks       int
	IncompleteTasks      int
	CompletionPercentage float64 // one decimal, 0 for an empty store
	PriorityCounts       PriorityCounts
	Overdue              int
	DueToday             int
	DueThisWeek          int // after today, up to and including today+7
}

type SummaryOutput struct {
	Summary Summary
}
