package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("unexpected http server config: %+v", cfg.HTTPServer)
	}
	if cfg.Calendar != (CalendarConfig{PinnedYear: 2025, DefaultHour: 9, WorkDayStartHour: 9, WorkDayEndHour: 17, DefaultSlotMinutes: 30}) {
		t.Errorf("unexpected calendar config: %+v", cfg.Calendar)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" || cfg.GoogleCalendar.ImportDays != 7 || cfg.GoogleCalendar.ImportMaxResults != 10 {
		t.Errorf("unexpected google config: %+v", cfg.GoogleCalendar)
	}
	if cfg.RateLimit.RequestsPerMin != 600 || cfg.DateMath.CacheSize != 512 {
		t.Errorf("unexpected limits: %+v %+v", cfg.RateLimit, cfg.DateMath)
	}
}

func TestLoadOverridesAndValidation(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr string
	}{
		{name: "Valid override", set: map[string]any{"calendar.work_day_start_hour": 8, "calendar.work_day_end_hour": 24}},
		{name: "Start after end", set: map[string]any{"calendar.work_day_start_hour": 18}, wantErr: "must be before"},
		{name: "End out of range", set: map[string]any{"calendar.work_day_end_hour": 25}, wantErr: "out of range"},
		{name: "Default hour out of range", set: map[string]any{"calendar.default_hour": 24}, wantErr: "out of range"},
		{name: "Zero slot", set: map[string]any{"calendar.default_slot_minutes": 0}, wantErr: "must be positive"},
		{name: "Negative rate limit", set: map[string]any{"rate_limit.requests_per_min": -1}, wantErr: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.set {
				v.Set(k, val)
			}

			cfg, err := load(v)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if cfg.Calendar.WorkDayStartHour != 8 || cfg.Calendar.WorkDayEndHour != 24 {
					t.Errorf("overrides not applied: %+v", cfg.Calendar)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/tmp/creds.json")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.HTTPServer.Port)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/tmp/creds.json" {
		t.Errorf("credentials path = %q", cfg.GoogleCalendar.CredentialsPath)
	}
}
