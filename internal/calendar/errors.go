package calendar

import "errors"

var (
	ErrEventIDRequired = errors.New("event id is required")
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidDateTime = errors.New("invalid date or time")
	ErrInvalidDuration = errors.New("duration_minutes must be at least 1")
	ErrGoogleDisabled  = errors.New("google calendar integration is not configured")
	ErrGoogleCalendar  = errors.New("google calendar request failed")
)
