package model

import "time"

// Event is a calendar entry held by the event store.
type Event struct {
	ID          string    // "event_<n>", assigned by the store
	Title       string    // Display title
	StartTime   time.Time // Naive local start
	EndTime     time.Time // Naive local end, not validated against StartTime
	Attendees   []string  // Never nil
	Location    *string   // nil when unset
	Description *string   // nil when unset
}

// Clone returns a deep copy so callers never share slices or pointers
// with the store.
func (e Event) Clone() Event {
	out := e
	out.Attendees = append([]string{}, e.Attendees...)
	out.Location = cloneString(e.Location)
	out.Description = cloneString(e.Description)
	return out
}

// Slot is an open interval returned by availability search.
type Slot struct {
	Start time.Time
	End   time.Time
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
