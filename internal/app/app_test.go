package app

import (
	"context"
	"testing"

	"assistant-tools/config"
	pkgLog "assistant-tools/pkg/log"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Calendar = config.CalendarConfig{PinnedYear: 2025, DefaultHour: 9, WorkDayStartHour: 9, WorkDayEndHour: 17, DefaultSlotMinutes: 30}
	cfg.DateMath.CacheSize = 16
	return cfg
}

func TestNewRegistries(t *testing.T) {
	tests := []struct {
		name            string
		credentialsPath string
	}{
		{name: "Without Google"},
		{name: "Unreadable credentials fall back", credentialsPath: "/nonexistent/credentials.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.GoogleCalendar.CredentialsPath = tt.credentialsPath

			regs, err := NewRegistries(context.Background(), pkgLog.NewNop(), cfg)
			if err != nil {
				t.Fatalf("NewRegistries: %v", err)
			}

			for _, name := range []string{"create_event", "get_events", "update_event", "delete_event", "find_available_slots", "get_event", "export_events_ics"} {
				if _, ok := regs.Calendar.Get(name); !ok {
					t.Errorf("calendar function %s missing", name)
				}
			}
			for _, name := range []string{"import_google_events", "publish_event"} {
				if _, ok := regs.Calendar.Get(name); ok {
					t.Errorf("%s should not be registered without Google Calendar", name)
				}
			}
			for _, name := range []string{"create_task", "get_tasks", "get_task", "update_task", "delete_task", "mark_completed", "get_task_summary"} {
				if _, ok := regs.Tasks.Get(name); !ok {
					t.Errorf("task function %s missing", name)
				}
			}
			if _, ok := regs.Tasks.Get("create_event"); ok {
				t.Error("registries must be separate")
			}
		})
	}
}
