// Package app wires configuration into the calendar and task function
// registries shared by every transport.
package app

import (
	"context"
	"fmt"

	"assistant-tools/config"
	calrpc "assistant-tools/internal/calendar/delivery/rpc"
	calrepo "assistant-tools/internal/calendar/repository/memory"
	calusecase "assistant-tools/internal/calendar/usecase"
	"assistant-tools/internal/rpc"
	taskrpc "assistant-tools/internal/task/delivery/rpc"
	taskrepo "assistant-tools/internal/task/repository/memory"
	taskusecase "assistant-tools/internal/task/usecase"
	"assistant-tools/pkg/datemath"
	"assistant-tools/pkg/gcalendar"
	"assistant-tools/pkg/log"
)

// Registries holds one function registry per domain.
type Registries struct {
	Calendar *rpc.Registry
	Tasks    *rpc.Registry
}

// NewRegistries builds both domains on in-memory stores. Google Calendar is
// wired only when credentials are configured and usable.
func NewRegistries(ctx context.Context, l log.Logger, cfg *config.Config) (Registries, error) {
	calResolver, err := datemath.NewResolver(datemath.Options{
		Policy:      datemath.PolicyCalendar,
		PinnedYear:  cfg.Calendar.PinnedYear,
		DefaultHour: cfg.Calendar.DefaultHour,
		CacheSize:   cfg.DateMath.CacheSize,
	})
	if err != nil {
		return Registries{}, fmt.Errorf("calendar resolver: %w", err)
	}
	taskResolver, err := datemath.NewResolver(datemath.Options{
		Policy:    datemath.PolicyTask,
		CacheSize: cfg.DateMath.CacheSize,
	})
	if err != nil {
		return Registries{}, fmt.Errorf("task resolver: %w", err)
	}

	var gcal calusecase.GoogleCalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			l.Warn(ctx, "Run `toolserver gcal-auth` to generate token.json")
		} else {
			gcal = client
			l.Info(ctx, "Google Calendar initialized")
		}
	}

	calUC := calusecase.New(l, calrepo.New(), calResolver, calusecase.Config{
		WorkDayStartHour:   cfg.Calendar.WorkDayStartHour,
		WorkDayEndHour:     cfg.Calendar.WorkDayEndHour,
		DefaultSlotMinutes: cfg.Calendar.DefaultSlotMinutes,
		GoogleCalendarID:   cfg.GoogleCalendar.CalendarID,
		ImportDays:         cfg.GoogleCalendar.ImportDays,
		ImportMaxResults:   cfg.GoogleCalendar.ImportMaxResults,
	}, gcal)
	taskUC := taskusecase.New(l, taskrepo.New(), taskResolver)

	regs := Registries{
		Calendar: rpc.NewRegistry(l),
		Tasks:    rpc.NewRegistry(l),
	}
	calrpc.RegisterFunctions(regs.Calendar, calrpc.New(l, calUC))
	taskrpc.RegisterFunctions(regs.Tasks, taskrpc.New(l, taskUC))

	return regs, nil
}

// NewLogger initializes the zap logger from cfg.
func NewLogger(cfg *config.Config) log.Logger {
	return log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
}
