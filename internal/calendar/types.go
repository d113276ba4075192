package calendar

import "assistant-tools/internal/model"

// DefaultTitle is used when an event is created without a title.
const DefaultTitle = "Untitled Event"

// --- UseCase Inputs ---

type CreateEventInput struct {
	Title       *string // nil uses DefaultTitle
	StartTime   string  // empty uses the pinned today at the default hour
	EndTime     string  // empty means one hour after StartTime
	Attendees   []string
	Location    *string
	Description *string
}

// ListEventsInput bounds are inclusive on start time. With both empty the
// pinned-year window applies.
type ListEventsInput struct {
	StartDate string
	EndDate   string
}

// UpdateEventInput carries only the supplied fields.
type UpdateEventInput struct {
	ID          string
	Title       model.Optional[string]
	StartTime   model.Optional[string]
	EndTime     model.Optional[string]
	Attendees   model.Optional[[]string]
	Location    model.Optional[*string]
	Description model.Optional[*string]
}

type FindSlotsInput struct {
	Date            string              // empty uses the pinned today
	DurationMinutes model.Optional[int] // unset uses the configured default
}

type ExportICSInput struct {
	StartDate string
	EndDate   string
}

type ImportGoogleInput struct {
	Days       int // 0 uses the configured default
	MaxResults int // 0 uses the configured default
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event model.Event
}

type ListEventsOutput struct {
	Events []model.Event
}

type DetailEventOutput struct {
	Event model.Event
}

type UpdateEventOutput struct {
	Event model.Event
}

type DeleteEventOutput struct {
	Event model.Event
}

type FindSlotsOutput struct {
	Slots []model.Slot
}

type ExportICSOutput struct {
	ICS   string
	Count int
}

type ImportGoogleOutput struct {
	Events []model.Event
}

type PublishEventOutput struct {
	Event    model.Event
	HTMLLink string
}
