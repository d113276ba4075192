package rpc

import (
	"errors"
	"fmt"

	"assistant-tools/internal/calendar"
	"assistant-tools/pkg/response"
)

// mapError renders a use-case error as the wire message. id is the event
// id the request targeted, if any.
func (h *handler) mapError(err error, id string) response.Envelope {
	switch {
	case errors.Is(err, calendar.ErrEventIDRequired):
		return response.Fail("Event ID is required")
	case errors.Is(err, calendar.ErrEventNotFound):
		return response.Fail(fmt.Sprintf("Event with ID %s not found", id))
	default:
		return response.FromError(err)
	}
}
