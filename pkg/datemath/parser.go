package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

var timeOfDayRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})(?:\s*(am|pm))?`)

// naive is the location of every point in time the resolver returns. It
// has no offset transitions, so wall-clock arithmetic is exact.
var naive = time.UTC

// Resolver converts free-form date strings into naive points in time.
type Resolver struct {
	policy      Policy
	pinnedYear  int
	defaultHour int
	zone        *time.Location
	now         func() time.Time
	cache       *lru.Cache[string, time.Time]
}

// NewResolver creates a Resolver. Zero PinnedYear, CacheSize, Zone and Now
// fall back to the package defaults; a zero DefaultHour is midnight.
func NewResolver(opt Options) (*Resolver, error) {
	if opt.Policy != PolicyCalendar && opt.Policy != PolicyTask {
		return nil, fmt.Errorf("unknown policy %d", opt.Policy)
	}
	if opt.PinnedYear == 0 {
		opt.PinnedYear = DefaultPinnedYear
	}
	if opt.DefaultHour < 0 || opt.DefaultHour > 23 {
		return nil, fmt.Errorf("default hour %d out of range", opt.DefaultHour)
	}
	if opt.CacheSize <= 0 {
		opt.CacheSize = DefaultCacheSize
	}
	if opt.Zone == nil {
		opt.Zone = time.Local
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}

	cache, err := lru.New[string, time.Time](opt.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create parse cache: %w", err)
	}

	return &Resolver{
		policy:      opt.Policy,
		pinnedYear:  opt.PinnedYear,
		defaultHour: opt.DefaultHour,
		zone:        opt.Zone,
		now:         opt.Now,
		cache:       cache,
	}, nil
}

// NewCalendarResolver is a shortcut for the calendar policy.
func NewCalendarResolver(pinnedYear, defaultHour int, now func() time.Time) (*Resolver, error) {
	return NewResolver(Options{
		Policy:      PolicyCalendar,
		PinnedYear:  pinnedYear,
		DefaultHour: defaultHour,
		Now:         now,
	})
}

// NewTaskResolver is a shortcut for the task policy.
func NewTaskResolver(now func() time.Time) (*Resolver, error) {
	return NewResolver(Options{Policy: PolicyTask, Now: now})
}

// Resolve converts text to a point in time. ok is false only under the
// task policy when the text carries no recognised date.
func (r *Resolver) Resolve(text string) (t time.Time, ok bool, err error) {
	if r.policy == PolicyTask && text == "" {
		return time.Time{}, false, nil
	}

	if t, found := r.parseStrict(text); found {
		return t, true, nil
	}

	if r.policy == PolicyTask {
		t, ok = r.resolveTaskPhrase(text)
		return t, ok, nil
	}

	t, err = r.resolveCalendarPhrase(text)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// parseStrict tries the fixed layouts in order. Successful parses are
// cached since they do not depend on the clock.
func (r *Resolver) parseStrict(text string) (time.Time, bool) {
	if t, ok := r.cache.Get(text); ok {
		return t, true
	}
	for _, layout := range strictLayouts {
		t, err := time.ParseInLocation(layout, text, naive)
		if err == nil {
			r.cache.Add(text, t)
			return t, true
		}
	}
	return time.Time{}, false
}

func (r *Resolver) resolveTaskPhrase(text string) (time.Time, bool) {
	today := r.Today()
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, keywordToday):
		return today, true
	case strings.Contains(lower, keywordTomorrow):
		return today.AddDate(0, 0, 1), true
	case strings.Contains(lower, keywordNextWeek):
		return today.AddDate(0, 0, daysInWeek), true
	}
	return time.Time{}, false
}

func (r *Resolver) resolveCalendarPhrase(text string) (time.Time, error) {
	base, err := r.PinnedToday()
	if err != nil {
		return time.Time{}, err
	}

	if lower := strings.ToLower(text); !strings.Contains(lower, keywordToday) && strings.Contains(lower, keywordTomorrow) {
		base = base.AddDate(0, 0, 1)
	}

	m := timeOfDayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Date(base.Year(), base.Month(), base.Day(), r.defaultHour, 0, 0, 0, naive), nil
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	switch strings.ToLower(m[3]) {
	case meridiemPM:
		if hour < hoursPerHalfDay {
			hour += hoursPerHalfDay
		}
	case meridiemAM:
		if hour == hoursPerHalfDay {
			hour = 0
		}
	}

	if hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour must be in 0..23, got %d", ErrInvalidTime, hour)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute must be in 0..59, got %d", ErrInvalidTime, minute)
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, naive), nil
}

// Today returns midnight of the current day.
func (r *Resolver) Today() time.Time {
	return r.startOfDay(r.Now())
}

// PinnedToday returns midnight of the current month and day forced into
// the pinned year. It fails when that day does not exist in the pinned
// year (Feb 29).
func (r *Resolver) PinnedToday() (time.Time, error) {
	now := r.Now()
	t := time.Date(r.pinnedYear, now.Month(), now.Day(), 0, 0, 0, 0, naive)
	if t.Month() != now.Month() || t.Day() != now.Day() {
		return time.Time{}, fmt.Errorf("%w: day is out of range for month (%d-%02d-%02d)",
			ErrInvalidDate, r.pinnedYear, int(now.Month()), now.Day())
	}
	return t, nil
}

// PinnedYear returns the year used by the calendar policy.
func (r *Resolver) PinnedYear() int {
	return r.pinnedYear
}

// DefaultHour returns the hour applied when no time of day is found.
func (r *Resolver) DefaultHour() int {
	return r.defaultHour
}

// Location returns the location of every naive point in time.
func (r *Resolver) Location() *time.Location {
	return naive
}

// Zone returns the zone used to exchange times with zone-aware peers.
func (r *Resolver) Zone() *time.Location {
	return r.zone
}

// Now returns the clock's wall-clock reading as a naive point in time.
func (r *Resolver) Now() time.Time {
	return wall(r.now(), naive)
}

// Naive converts an absolute time to its wall-clock reading in Zone.
func (r *Resolver) Naive(t time.Time) time.Time {
	return wall(t.In(r.zone), naive)
}

// Absolute places a naive wall-clock reading in Zone.
func (r *Resolver) Absolute(t time.Time) time.Time {
	return wall(t, r.zone)
}

// wall keeps the calendar fields of t and attaches loc.
func wall(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// startOfDay returns naive midnight of the day t reads as.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, naive)
}

// StartOfDay is the exported form of startOfDay.
func (r *Resolver) StartOfDay(t time.Time) time.Time {
	return r.startOfDay(t)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (r *Resolver) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
