package repository

import (
	"time"

	"assistant-tools/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    string
	Completed   bool
	Assignee    *string
	Tags        []string
	CreatedAt   time.Time
}

// GetOneTaskOptions selects a single Task. A miss returns a zero Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter parameters. All supplied fields are applied
// as AND conditions. Tasks without a due date never match the due bounds.
type ListTasksOptions struct {
	Completed model.Optional[bool]
	Priority  model.Optional[string]
	Assignee  model.Optional[*string]
	Tag       model.Optional[string]
	DueBefore *time.Time // inclusive
	DueAfter  *time.Time // inclusive
}

// UpdateTaskOptions holds the fields to overwrite on an existing Task.
type UpdateTaskOptions struct {
	ID          string
	Title       model.Optional[string]
	Description model.Optional[*string]
	DueDate     model.Optional[*time.Time]
	Priority    model.Optional[string]
	Completed   model.Optional[bool]
	Assignee    model.Optional[*string]
	Tags        model.Optional[[]string]
}
