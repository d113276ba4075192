package usecase

import (
	"context"
	"time"

	"assistant-tools/internal/calendar"
	repo "assistant-tools/internal/calendar/repository"
)

// Create stores a new event. A missing end time means one hour after start.
func (uc *implUseCase) Create(ctx context.Context, input calendar.CreateEventInput) (calendar.CreateEventOutput, error) {
	title := calendar.DefaultTitle
	if input.Title != nil {
		title = *input.Title
	}

	start, err := uc.resolve(input.StartTime)
	if err != nil {
		return calendar.CreateEventOutput{}, err
	}

	end := start.Add(time.Hour)
	if input.EndTime != "" {
		if end, err = uc.resolve(input.EndTime); err != nil {
			return calendar.CreateEventOutput{}, err
		}
	}

	ev, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title:       title,
		StartTime:   start,
		EndTime:     end,
		Attendees:   input.Attendees,
		Location:    input.Location,
		Description: input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Create CreateEvent: %v", err)
		return calendar.CreateEventOutput{}, err
	}

	return calendar.CreateEventOutput{Event: ev}, nil
}
