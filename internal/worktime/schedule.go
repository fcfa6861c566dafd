package worktime

import (
	"slices"
	"strings"
	"time"
)

// Canonical weekday names, as produced by formatDayName.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

var dayNames = []string{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// Schedule maps the seven weekdays to an optional day program. A weekday
// with no program is a non-working day.
type Schedule struct {
	days map[string]*Day
}

// NewSchedule constructs a schedule from day programs, each stored under its
// own weekday name. Nil entries are skipped; if two programs share a weekday
// the later one wins. A schedule with no working day at all is rejected.
func NewSchedule(days ...*Day) (*Schedule, error) {
	m := make(map[string]*Day, len(dayNames))
	for _, d := range days {
		if d == nil {
			continue
		}
		m[d.Name()] = d
	}
	if len(m) == 0 {
		return nil, ErrEmptySchedule
	}

	return &Schedule{days: m}, nil
}

// Day returns the program for the named weekday, or nil for a non-working
// day. The name is validated the same way NewDay validates it.
func (s *Schedule) Day(name string) (*Day, error) {
	if err := checkDayName(name); err != nil {
		return nil, err
	}
	return s.days[formatDayName(name)], nil
}

func formatDayName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func checkDayName(name string) error {
	if !slices.Contains(dayNames, formatDayName(name)) {
		return ErrInvalidWeekday
	}
	return nil
}

func weekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
