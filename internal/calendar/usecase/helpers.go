package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assistant-tools/internal/calendar"
	repo "assistant-tools/internal/calendar/repository"
	"assistant-tools/internal/model"
)

// resolve applies the calendar date policy. Empty text means the pinned
// today at the default hour.
func (uc *implUseCase) resolve(text string) (time.Time, error) {
	t, _, err := uc.resolver.Resolve(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", calendar.ErrInvalidDateTime, text, err)
	}
	return t, nil
}

// listOptions builds the start-time window for get_events and exports.
// Without bounds the whole pinned year is selected.
func (uc *implUseCase) listOptions(startDate, endDate string) (repo.ListEventsOptions, error) {
	if startDate == "" && endDate == "" {
		loc := uc.resolver.Location()
		from := time.Date(uc.resolver.PinnedYear(), time.January, 1, 0, 0, 0, 0, loc)
		to := uc.resolver.EndOfDay(time.Date(uc.resolver.PinnedYear(), time.December, 31, 0, 0, 0, 0, loc))
		return repo.ListEventsOptions{From: &from, To: &to}, nil
	}

	var opt repo.ListEventsOptions
	if startDate != "" {
		from, err := uc.resolve(startDate)
		if err != nil {
			return repo.ListEventsOptions{}, err
		}
		opt.From = &from
	}
	if endDate != "" {
		to, err := uc.resolve(endDate)
		if err != nil {
			return repo.ListEventsOptions{}, err
		}
		opt.To = &to
	}
	return opt, nil
}

// existing loads an event, translating a miss into ErrEventNotFound.
func (uc *implUseCase) existing(ctx context.Context, id string) (model.Event, error) {
	if id == "" {
		return model.Event{}, calendar.ErrEventIDRequired
	}
	ev, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.existing GetOneEvent: %v", err)
		return model.Event{}, err
	}
	if ev.ID == "" {
		return model.Event{}, notFound(id)
	}
	return ev, nil
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", calendar.ErrEventNotFound, id)
}

// mapRepoError converts a repository miss into the domain error.
func mapRepoError(err error, id string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return notFound(id)
	}
	return err
}
