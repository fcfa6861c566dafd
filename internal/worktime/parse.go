package worktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timeRangeRegexp = regexp.MustCompile(`\A(\d{2}):(\d{2})-(\d{2}):(\d{2})\z`)

// ParseWindow parses a "HH:MM-HH:MM" work time range. An end before the
// start denotes an overnight window.
func ParseWindow(s string) (Window, error) {
	m := timeRangeRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Window{}, fmt.Errorf("invalid work time range %q", s)
	}

	parts := make([]int, 4)
	for i, v := range m[1:] {
		parts[i], _ = strconv.Atoi(v)
	}
	if parts[0] > 23 || parts[2] > 23 || parts[1] > 59 || parts[3] > 59 {
		return Window{}, fmt.Errorf("invalid work time range %q", s)
	}

	return NewWindow(New(parts[0], parts[1], 0), New(parts[2], parts[3], 0)), nil
}

// ParseSchedule builds a schedule from "weekday=HH:MM-HH:MM[,HH:MM-HH:MM...]"
// entries. The first range of an entry is the day's active window.
func ParseSchedule(entries []string) (*Schedule, error) {
	days := make([]*Day, 0, len(entries))
	for _, entry := range entries {
		name, ranges, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid schedule entry %q, want weekday=HH:MM-HH:MM", entry)
		}

		var windows []Window
		for _, r := range strings.Split(ranges, ",") {
			w, err := ParseWindow(r)
			if err != nil {
				return nil, fmt.Errorf("invalid schedule entry %q: %w", entry, err)
			}
			windows = append(windows, w)
		}

		day, err := NewDay(name, windows[0], windows[1:]...)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule entry %q: %w", entry, err)
		}
		days = append(days, day)
	}

	return NewSchedule(days...)
}
