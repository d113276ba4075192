package repository

import (
	"context"

	"assistant-tools/internal/model"
)

// Repository is the composed interface for the calendar data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Returned events are copies; mutating them never changes the store.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) (model.Event, error)
}
