package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Domains
	Calendar       CalendarConfig
	DateMath       DateMathConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig limits gateway calls per client IP; 0 disables it.
type RateLimitConfig struct {
	RequestsPerMin int
}

type CalendarConfig struct {
	PinnedYear         int
	DefaultHour        int
	WorkDayStartHour   int
	WorkDayEndHour     int
	DefaultSlotMinutes int
}

type DateMathConfig struct {
	CacheSize int
}

// GoogleCalendarConfig enables the Google import/publish functions when
// CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath  string
	CalendarID       string
	ImportDays       int
	ImportMaxResults int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Calendar
	cfg.Calendar.PinnedYear = v.GetInt("calendar.pinned_year")
	cfg.Calendar.DefaultHour = v.GetInt("calendar.default_hour")
	cfg.Calendar.WorkDayStartHour = v.GetInt("calendar.work_day_start_hour")
	cfg.Calendar.WorkDayEndHour = v.GetInt("calendar.work_day_end_hour")
	cfg.Calendar.DefaultSlotMinutes = v.GetInt("calendar.default_slot_minutes")
	cfg.DateMath.CacheSize = v.GetInt("datemath.cache_size")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.ImportDays = v.GetInt("google_calendar.import_days")
	cfg.GoogleCalendar.ImportMaxResults = v.GetInt("google_calendar.import_max_results")
	if creds := v.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)
	v.SetDefault("rate_limit.requests_per_min", 600)

	v.SetDefault("calendar.pinned_year", 2025)
	v.SetDefault("calendar.default_hour", 9)
	v.SetDefault("calendar.work_day_start_hour", 9)
	v.SetDefault("calendar.work_day_end_hour", 17)
	v.SetDefault("calendar.default_slot_minutes", 30)
	v.SetDefault("datemath.cache_size", 512)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.import_days", 7)
	v.SetDefault("google_calendar.import_max_results", 10)
}

func (cfg *Config) validate() error {
	c := cfg.Calendar
	if c.DefaultHour < 0 || c.DefaultHour > 23 {
		return fmt.Errorf("calendar.default_hour %d out of range 0..23", c.DefaultHour)
	}
	if c.WorkDayStartHour < 0 || c.WorkDayStartHour > 23 {
		return fmt.Errorf("calendar.work_day_start_hour %d out of range 0..23", c.WorkDayStartHour)
	}
	if c.WorkDayEndHour < 1 || c.WorkDayEndHour > 24 {
		return fmt.Errorf("calendar.work_day_end_hour %d out of range 1..24", c.WorkDayEndHour)
	}
	if c.WorkDayStartHour >= c.WorkDayEndHour {
		return fmt.Errorf("calendar.work_day_start_hour %d must be before work_day_end_hour %d", c.WorkDayStartHour, c.WorkDayEndHour)
	}
	if c.DefaultSlotMinutes <= 0 {
		return fmt.Errorf("calendar.default_slot_minutes must be positive")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}
