package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTitleRequired  = errors.New("task title is required")
	ErrTaskIDRequired = errors.New("task id is required")
	ErrTaskNotFound   = errors.New("task not found")
)
