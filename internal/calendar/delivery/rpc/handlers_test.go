package rpc_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	calrpc "assistant-tools/internal/calendar/delivery/rpc"
	"assistant-tools/internal/calendar/repository/memory"
	"assistant-tools/internal/calendar/usecase"
	"assistant-tools/internal/rpc"
	"assistant-tools/pkg/datemath"
	pkgLog "assistant-tools/pkg/log"
)

func newTestRegistry(t *testing.T) *rpc.Registry {
	t.Helper()
	now := time.Date(2026, time.October, 19, 15, 30, 0, 0, time.Local)
	resolver, err := datemath.NewCalendarResolver(2025, 9, func() time.Time { return now })
	if err != nil {
		t.Fatalf("NewCalendarResolver: %v", err)
	}

	l := pkgLog.NewNop()
	uc := usecase.New(l, memory.New(), resolver, usecase.Config{
		WorkDayStartHour:   9,
		WorkDayEndHour:     17,
		DefaultSlotMinutes: 30,
	}, nil)

	reg := rpc.NewRegistry(l)
	calrpc.RegisterFunctions(reg, calrpc.New(l, uc))
	return reg
}

func call(t *testing.T, reg *rpc.Registry, line string) map[string]any {
	t.Helper()
	b, err := json.Marshal(reg.Handle(context.Background(), []byte(line)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestCalendarFunctions(t *testing.T) {
	reg := newTestRegistry(t)

	created := call(t, reg, `{"function":"create_event","args":{"title":"Standup","start_time":"2025-03-10 10:00","attendees":"ana, bo"}}`)
	if created["status"] != "success" {
		t.Fatalf("create failed: %v", created)
	}
	ev := created["event"].(map[string]any)
	if ev["id"] != "event_1" || ev["start_time"] != "2025-03-10T10:00:00" || ev["end_time"] != "2025-03-10T11:00:00" {
		t.Errorf("unexpected event: %v", ev)
	}
	if v, ok := ev["location"]; !ok || v != nil {
		t.Errorf("location should serialize as null, got %v (present=%v)", v, ok)
	}
	if attendees := ev["attendees"].([]any); len(attendees) != 2 || attendees[1] != "bo" {
		t.Errorf("unexpected attendees: %v", attendees)
	}

	tests := []struct {
		name        string
		line        string
		wantStatus  string
		wantMessage string
		wantKey     string
	}{
		{"List default window", `{"function":"get_events","args":{}}`, "success", "", "events"},
		{"Get by id", `{"function":"get_event","args":{"id":"event_1"}}`, "success", "", "event"},
		{"Update missing id", `{"function":"update_event","args":{"title":"x"}}`, "error", "Event ID is required", ""},
		{"Update unknown id", `{"function":"update_event","args":{"id":"event_9","title":"x"}}`, "error", "Event with ID event_9 not found", ""},
		{"Delete unknown id", `{"function":"delete_event","args":{"id":"event_9"}}`, "error", "Event with ID event_9 not found", ""},
		{"Numeric id", `{"function":"delete_event","args":{"id":7}}`, "error", "Event with ID 7 not found", ""},
		{"Slots", `{"function":"find_available_slots","args":{"date":"2025-03-10","duration_minutes":"30"}}`, "success", "", "available_slots"},
		{"Bad duration", `{"function":"find_available_slots","args":{"duration_minutes":0}}`, "error", "duration_minutes must be at least 1", ""},
		{"Export", `{"function":"export_events_ics","args":{"start_date":"2025-01-01"}}`, "success", "", "ics"},
		{"Google not registered", `{"function":"import_google_events","args":{}}`, "error", "Unknown function: import_google_events", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := call(t, reg, tt.line)
			if out["status"] != tt.wantStatus {
				t.Fatalf("status = %v, want %v (%v)", out["status"], tt.wantStatus, out)
			}
			if tt.wantMessage != "" && out["message"] != tt.wantMessage {
				t.Errorf("message = %q, want %q", out["message"], tt.wantMessage)
			}
			if tt.wantKey != "" {
				if _, ok := out[tt.wantKey]; !ok {
					t.Errorf("missing payload key %q in %v", tt.wantKey, out)
				}
			}
		})
	}

	slots := call(t, reg, `{"function":"find_available_slots","args":{"date":"2025-03-10","duration_minutes":30}}`)["available_slots"].([]any)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slots)
	}
	first := slots[0].(map[string]any)
	second := slots[1].(map[string]any)
	if first["start_time"] != "2025-03-10T09:00:00" || first["end_time"] != "2025-03-10T09:30:00" {
		t.Errorf("unexpected first slot: %v", first)
	}
	if second["start_time"] != "2025-03-10T11:00:00" || second["end_time"] != "2025-03-10T11:30:00" {
		t.Errorf("unexpected second slot: %v", second)
	}

	updated := call(t, reg, `{"function":"update_event","args":{"id":"event_1","location":"Room 2","description":null}}`)
	ev = updated["event"].(map[string]any)
	if ev["location"] != "Room 2" || ev["title"] != "Standup" {
		t.Errorf("unexpected update: %v", ev)
	}

	deleted := call(t, reg, `{"function":"delete_event","args":{"id":"event_1"}}`)
	if deleted["status"] != "success" || deleted["deleted_event"].(map[string]any)["id"] != "event_1" {
		t.Errorf("unexpected delete: %v", deleted)
	}
	if events := call(t, reg, `{"function":"get_events"}`)["events"].([]any); len(events) != 0 {
		t.Errorf("expected empty list after delete, got %v", events)
	}
}
