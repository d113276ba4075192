package repository

import (
	"time"

	"assistant-tools/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Attendees   []string
	Location    *string
	Description *string
}

// GetOneEventOptions selects a single Event. A miss returns a zero Event.
type GetOneEventOptions struct {
	ID string
}

// ListEventsOptions filters on start time. All non-nil fields are applied
// as AND conditions; bounds are inclusive.
type ListEventsOptions struct {
	From   *time.Time
	To     *time.Time
	OnDate *time.Time // same calendar date as the start time
}

// UpdateEventOptions holds the fields to overwrite on an existing Event.
type UpdateEventOptions struct {
	ID          string
	Title       model.Optional[string]
	StartTime   model.Optional[time.Time]
	EndTime     model.Optional[time.Time]
	Attendees   model.Optional[[]string]
	Location    model.Optional[*string]
	Description model.Optional[*string]
}
