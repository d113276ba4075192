package usecase

import (
	"context"
	"time"

	"assistant-tools/internal/calendar"
	repo "assistant-tools/internal/calendar/repository"
	"assistant-tools/internal/model"
)

// Detail retrieves a single event by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (calendar.DetailEventOutput, error) {
	ev, err := uc.existing(ctx, id)
	if err != nil {
		return calendar.DetailEventOutput{}, err
	}
	return calendar.DetailEventOutput{Event: ev}, nil
}

// Update overwrites the supplied fields only. Dates are resolved before the
// store is touched so a bad value leaves the event unchanged.
func (uc *implUseCase) Update(ctx context.Context, input calendar.UpdateEventInput) (calendar.UpdateEventOutput, error) {
	if _, err := uc.existing(ctx, input.ID); err != nil {
		return calendar.UpdateEventOutput{}, err
	}

	opt := repo.UpdateEventOptions{
		ID:          input.ID,
		Title:       input.Title,
		Attendees:   input.Attendees,
		Location:    input.Location,
		Description: input.Description,
	}

	var err error
	if opt.StartTime, err = uc.resolveOptional(input.StartTime); err != nil {
		return calendar.UpdateEventOutput{}, err
	}
	if opt.EndTime, err = uc.resolveOptional(input.EndTime); err != nil {
		return calendar.UpdateEventOutput{}, err
	}

	ev, err := uc.repo.UpdateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Update UpdateEvent: %v", err)
		return calendar.UpdateEventOutput{}, mapRepoError(err, input.ID)
	}
	return calendar.UpdateEventOutput{Event: ev}, nil
}

// Delete removes an event and returns its last state.
func (uc *implUseCase) Delete(ctx context.Context, id string) (calendar.DeleteEventOutput, error) {
	if id == "" {
		return calendar.DeleteEventOutput{}, calendar.ErrEventIDRequired
	}

	ev, err := uc.repo.DeleteEvent(ctx, id)
	if err != nil {
		err = mapRepoError(err, id)
		uc.l.Warnf(ctx, "calendar.usecase.Delete DeleteEvent: %v", err)
		return calendar.DeleteEventOutput{}, err
	}
	return calendar.DeleteEventOutput{Event: ev}, nil
}

func (uc *implUseCase) resolveOptional(in model.Optional[string]) (model.Optional[time.Time], error) {
	if !in.Set {
		return model.Optional[time.Time]{}, nil
	}
	t, err := uc.resolve(in.Value)
	if err != nil {
		return model.Optional[time.Time]{}, err
	}
	return model.Some(t), nil
}
