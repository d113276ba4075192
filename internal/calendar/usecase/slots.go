package usecase

import (
	"context"
	"sort"
	"time"

	"assistant-tools/internal/calendar"
	repo "assistant-tools/internal/calendar/repository"
	"assistant-tools/internal/model"
)

// minutesPerDay bounds every gap on a single date; longer slots never fit.
const minutesPerDay = 24 * 60

// FindSlots returns at most one duration-sized slot per gap between the
// events starting on the requested date, inside the working day.
func (uc *implUseCase) FindSlots(ctx context.Context, input calendar.FindSlotsInput) (calendar.FindSlotsOutput, error) {
	minutes := uc.cfg.DefaultSlotMinutes
	if input.DurationMinutes.Set {
		minutes = input.DurationMinutes.Value
	}
	if minutes < 1 {
		return calendar.FindSlotsOutput{}, calendar.ErrInvalidDuration
	}

	date, err := uc.resolve(input.Date)
	if err != nil {
		return calendar.FindSlotsOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{OnDate: &date})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.FindSlots ListEvents: %v", err)
		return calendar.FindSlotsOutput{}, err
	}

	if minutes > minutesPerDay {
		return calendar.FindSlotsOutput{Slots: []model.Slot{}}, nil
	}

	y, m, d := date.Date()
	dayStart := time.Date(y, m, d, uc.cfg.WorkDayStartHour, 0, 0, 0, date.Location())
	dayEnd := time.Date(y, m, d, uc.cfg.WorkDayEndHour, 0, 0, 0, date.Location())

	return calendar.FindSlotsOutput{
		Slots: freeSlots(dayStart, dayEnd, events, time.Duration(minutes)*time.Minute),
	}, nil
}

// freeSlots sweeps a cursor from dayStart over events sorted by start. The
// cursor only moves forward, so overlapping events never yield negative gaps.
func freeSlots(dayStart, dayEnd time.Time, events []model.Event, duration time.Duration) []model.Slot {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})

	slots := make([]model.Slot, 0)
	cursor := dayStart
	for _, ev := range events {
		if cursor.Before(ev.StartTime) && ev.StartTime.Sub(cursor) >= duration {
			slots = append(slots, model.Slot{Start: cursor, End: cursor.Add(duration)})
		}
		if ev.EndTime.After(cursor) {
			cursor = ev.EndTime
		}
	}

	if cursor.Before(dayEnd) && dayEnd.Sub(cursor) >= duration {
		slots = append(slots, model.Slot{Start: cursor, End: cursor.Add(duration)})
	}
	return slots
}
