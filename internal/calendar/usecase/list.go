package usecase

import (
	"context"

	"assistant-tools/internal/calendar"
)

// List returns events in insertion order whose start falls in the window.
func (uc *implUseCase) List(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	opt, err := uc.listOptions(input.StartDate, input.EndDate)
	if err != nil {
		return calendar.ListEventsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.List ListEvents: %v", err)
		return calendar.ListEventsOutput{}, err
	}

	return calendar.ListEventsOutput{Events: events}, nil
}
