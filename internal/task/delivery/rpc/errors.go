package rpc

import (
	"errors"
	"fmt"

	"assistant-tools/internal/task"
	"assistant-tools/pkg/response"
)

// mapError renders a use-case error as the wire message.
func (h *handler) mapError(err error, id string) response.Envelope {
	switch {
	case errors.Is(err, task.ErrTitleRequired):
		return response.Fail("Task title is required")
	case errors.Is(err, task.ErrTaskIDRequired):
		return response.Fail("Task ID is required")
	case errors.Is(err, task.ErrTaskNotFound):
		return response.Fail(fmt.Sprintf("Task with ID %s not found", id))
	default:
		return response.FromError(err)
	}
}
