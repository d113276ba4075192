package usecase

import (
	"context"
	"fmt"

	"assistant-tools/internal/calendar"
	repo "assistant-tools/internal/calendar/repository"
	"assistant-tools/internal/model"
	"assistant-tools/pkg/gcalendar"
)

// ImportGoogle copies upcoming Google Calendar events, from today through
// the end of today+Days, into the local store.
func (uc *implUseCase) ImportGoogle(ctx context.Context, input calendar.ImportGoogleInput) (calendar.ImportGoogleOutput, error) {
	if uc.gcal == nil {
		return calendar.ImportGoogleOutput{}, calendar.ErrGoogleDisabled
	}

	days := input.Days
	if days <= 0 {
		days = uc.cfg.ImportDays
	}
	maxResults := input.MaxResults
	if maxResults <= 0 {
		maxResults = uc.cfg.ImportMaxResults
	}

	today := uc.resolver.Today()
	items, err := uc.gcal.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.cfg.GoogleCalendarID,
		TimeMin:    uc.resolver.Absolute(today),
		TimeMax:    uc.resolver.Absolute(uc.resolver.EndOfDay(today.AddDate(0, 0, days))),
		MaxResults: int64(maxResults),
		Location:   uc.resolver.Zone(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.ImportGoogle ListEvents: %v", err)
		return calendar.ImportGoogleOutput{}, fmt.Errorf("%w: %v", calendar.ErrGoogleCalendar, err)
	}

	imported := make([]model.Event, 0, len(items))
	for _, item := range items {
		ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
			Title:       titleOrDefault(item.Summary),
			StartTime:   uc.resolver.Naive(item.StartTime),
			EndTime:     uc.resolver.Naive(item.EndTime),
			Attendees:   item.Attendees,
			Location:    optionalText(item.Location),
			Description: optionalText(item.Description),
		})
		if err != nil {
			uc.l.Errorf(ctx, "calendar.usecase.ImportGoogle CreateEvent: %v", err)
			return calendar.ImportGoogleOutput{}, err
		}
		imported = append(imported, ev)
	}

	uc.l.Infof(ctx, "calendar.usecase.ImportGoogle: imported %d events", len(imported))
	return calendar.ImportGoogleOutput{Events: imported}, nil
}

// Publish inserts a local event into the configured Google calendar.
func (uc *implUseCase) Publish(ctx context.Context, id string) (calendar.PublishEventOutput, error) {
	if uc.gcal == nil {
		return calendar.PublishEventOutput{}, calendar.ErrGoogleDisabled
	}

	ev, err := uc.existing(ctx, id)
	if err != nil {
		return calendar.PublishEventOutput{}, err
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: uc.cfg.GoogleCalendarID,
		Summary:    ev.Title,
		Attendees:  ev.Attendees,
		StartTime:  uc.resolver.Absolute(ev.StartTime),
		EndTime:    uc.resolver.Absolute(ev.EndTime),
	}
	if ev.Description != nil {
		req.Description = *ev.Description
	}
	if ev.Location != nil {
		req.Location = *ev.Location
	}

	created, err := uc.gcal.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Publish CreateEvent: %v", err)
		return calendar.PublishEventOutput{}, fmt.Errorf("%w: %v", calendar.ErrGoogleCalendar, err)
	}

	return calendar.PublishEventOutput{Event: ev, HTMLLink: created.HtmlLink}, nil
}

func titleOrDefault(s string) string {
	if s == "" {
		return calendar.DefaultTitle
	}
	return s
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
