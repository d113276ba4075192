package rpc

import (
	"assistant-tools/internal/calendar"
	"assistant-tools/internal/model"
	"assistant-tools/pkg/response"
)

// Payload keys of the success envelopes.
const (
	keyEvent          = "event"
	keyEvents         = "events"
	keyDeletedEvent   = "deleted_event"
	keyAvailableSlots = "available_slots"
	keyICS            = "ics"
	keyImported       = "imported"
)

// --- Response DTOs ---

type eventResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	Attendees   []string          `json:"attendees"`
	Location    *string           `json:"location"`
	Description *string           `json:"description"`
}

func newEventResp(ev model.Event) eventResp {
	attendees := ev.Attendees
	if attendees == nil {
		attendees = []string{}
	}
	return eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		StartTime:   response.DateTime(ev.StartTime),
		EndTime:     response.DateTime(ev.EndTime),
		Attendees:   attendees,
		Location:    ev.Location,
		Description: ev.Description,
	}
}

func newEventListResp(events []model.Event) []eventResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return out
}

type slotResp struct {
	StartTime response.DateTime `json:"start_time"`
	EndTime   response.DateTime `json:"end_time"`
}

func newSlotsResp(out calendar.FindSlotsOutput) []slotResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = slotResp{
			StartTime: response.DateTime(s.Start),
			EndTime:   response.DateTime(s.End),
		}
	}
	return slots
}

// publishResp is inlined next to status.
type publishResp struct {
	Event    eventResp `json:"event"`
	HTMLLink string    `json:"html_link"`
}
