package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"assistant-tools/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"Whole seconds", time.Date(2025, 3, 10, 11, 0, 0, 0, time.Local), `"2025-03-10T11:00:00"`},
		{"Microseconds", time.Date(2025, 3, 10, 11, 0, 0, 123456000, time.Local), `"2025-03-10T11:00:00.123456"`},
		{"Sub-microsecond dropped", time.Date(2025, 3, 10, 11, 0, 0, 999, time.Local), `"2025-03-10T11:00:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestNewDateTimeNil(t *testing.T) {
	var payload struct {
		Due *response.DateTime `json:"due_date"`
	}
	payload.Due = response.NewDateTime(nil)

	b, _ := json.Marshal(payload)
	if string(b) != `{"due_date":null}` {
		t.Errorf("expected null due_date, got %s", b)
	}
}

func TestEnvelopeMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		env  response.Envelope
		want string
	}{
		{"Success", response.Success("event", map[string]string{"id": "event_1"}), `{"status":"success","event":{"id":"event_1"}}`},
		{"Success list", response.Success("tasks", []int{}), `{"status":"success","tasks":[]}`},
		{"Error", response.Fail("Task title is required"), `{"status":"error","message":"Task title is required"}`},
		{"Invalid JSON", response.InvalidJSON(), `{"status":"error","message":"Invalid JSON"}`},
		{"Formatted", response.Failf("Unknown function: %s", "nope"), `{"status":"error","message":"Unknown function: nope"}`},
		{"Inline fields", response.SuccessFields(struct {
			Event string `json:"event"`
			Link  string `json:"html_link"`
		}{"e", "l"}), `{"status":"success","event":"e","html_link":"l"}`},
		{"Inline empty", response.SuccessFields(struct{}{}), `{"status":"success"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestEnvelopeInlineNonObject(t *testing.T) {
	if _, err := json.Marshal(response.SuccessFields([]int{1})); err == nil {
		t.Errorf("expected error for non-object inline data")
	}
}
