package usecase

import (
	"context"

	"assistant-tools/internal/calendar/repository"
	"assistant-tools/pkg/datemath"
	"assistant-tools/pkg/gcalendar"
	"assistant-tools/pkg/log"
)

// Config holds the calendar behaviour knobs.
type Config struct {
	WorkDayStartHour   int
	WorkDayEndHour     int // may be 24
	DefaultSlotMinutes int
	GoogleCalendarID   string
	ImportDays         int
	ImportMaxResults   int
}

// GoogleCalendar is the part of the Google Calendar client used for import
// and publish.
type GoogleCalendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	resolver *datemath.Resolver
	cfg      Config
	gcal     GoogleCalendar // nil disables import and publish
}

// New creates a new calendar UseCase implementation. resolver must use the
// calendar policy.
func New(l log.Logger, repo repository.Repository, resolver *datemath.Resolver, cfg Config, gcal GoogleCalendar) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		resolver: resolver,
		cfg:      cfg,
		gcal:     gcal,
	}
}

// GoogleEnabled reports whether a Google Calendar client is configured.
func (uc *implUseCase) GoogleEnabled() bool {
	return uc.gcal != nil
}
