package memory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"assistant-tools/internal/calendar/repository"
	"assistant-tools/internal/model"
)

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	ev := model.Event{
		ID:          idPrefix + strconv.Itoa(r.lastID),
		Title:       opt.Title,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Attendees:   opt.Attendees,
		Location:    opt.Location,
		Description: opt.Description,
	}
	if ev.Attendees == nil {
		ev.Attendees = []string{}
	}
	ev = ev.Clone()

	r.events = append(r.events, ev)
	return ev.Clone(), nil
}

func (r *implRepository) GetOneEvent(ctx context.Context, opt repository.GetOneEventOptions) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(opt.ID); i >= 0 {
		return r.events[i].Clone(), nil
	}
	return model.Event{}, nil
}

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Event, 0, len(r.events))
	for _, ev := range r.events {
		if matches(ev, opt) {
			out = append(out, ev.Clone())
		}
	}
	return out, nil
}

func (r *implRepository) UpdateEvent(ctx context.Context, opt repository.UpdateEventOptions) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opt.ID)
	if i < 0 {
		return model.Event{}, fmt.Errorf("%w: event %s", repository.ErrNotFound, opt.ID)
	}

	ev := r.events[i]
	opt.Title.Apply(&ev.Title)
	opt.StartTime.Apply(&ev.StartTime)
	opt.EndTime.Apply(&ev.EndTime)
	opt.Attendees.Apply(&ev.Attendees)
	opt.Location.Apply(&ev.Location)
	opt.Description.Apply(&ev.Description)
	if ev.Attendees == nil {
		ev.Attendees = []string{}
	}

	r.events[i] = ev.Clone()
	return ev.Clone(), nil
}

func (r *implRepository) DeleteEvent(ctx context.Context, id string) (model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Event{}, fmt.Errorf("%w: event %s", repository.ErrNotFound, id)
	}

	ev := r.events[i]
	r.events = append(r.events[:i], r.events[i+1:]...)
	return ev, nil
}

// indexOf must be called with the lock held.
func (r *implRepository) indexOf(id string) int {
	for i, ev := range r.events {
		if ev.ID == id {
			return i
		}
	}
	return -1
}

func matches(ev model.Event, opt repository.ListEventsOptions) bool {
	if opt.From != nil && ev.StartTime.Before(*opt.From) {
		return false
	}
	if opt.To != nil && ev.StartTime.After(*opt.To) {
		return false
	}
	if opt.OnDate != nil && !sameDate(ev.StartTime, *opt.OnDate) {
		return false
	}
	return true
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
