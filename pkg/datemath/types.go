package datemath

import (
	"errors"
	"time"
)

// Policy selects the natural-language fallback applied when no strict
// layout matches.
type Policy int

const (
	// PolicyCalendar pins "today" into PinnedYear, extracts an optional
	// time of day and never reports "no date".
	PolicyCalendar Policy = iota
	// PolicyTask uses the real current date, understands today, tomorrow
	// and next week only, and always yields midnight.
	PolicyTask
)

func (p Policy) String() string {
	switch p {
	case PolicyCalendar:
		return "calendar"
	case PolicyTask:
		return "task"
	default:
		return "unknown"
	}
}

// Options configures a Resolver.
type Options struct {
	Policy      Policy
	PinnedYear  int // calendar policy only
	DefaultHour int // calendar policy only
	CacheSize   int
	Zone        *time.Location   // zone of zone-aware peers, defaults to time.Local
	Now         func() time.Time // defaults to time.Now; only its wall clock is read
}

// Layouts tried in order before any natural-language handling.
var strictLayouts = []string{
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
}

const (
	DefaultPinnedYear = 2025
	DefaultHour       = 9
	DefaultCacheSize  = 512
)

const (
	keywordToday    = "today"
	keywordTomorrow = "tomorrow"
	keywordNextWeek = "next week"
	daysInWeek      = 7
	meridiemAM      = "am"
	meridiemPM      = "pm"
	hoursPerHalfDay = 12
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time of day")
)
