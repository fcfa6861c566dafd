package worktime

import "timedist/internal/seq"

// Day binds a weekday name to one or more work windows. The first window is
// the active one; extra windows are kept for schedules that will eventually
// describe multiple shifts per day.
type Day struct {
	name    string
	windows *seq.Tuple[Window]
}

// NewDay constructs a day program. The weekday name is validated against the
// seven canonical English names, case-insensitively and ignoring surrounding
// whitespace.
func NewDay(name string, required Window, extra ...Window) (*Day, error) {
	if err := checkDayName(name); err != nil {
		return nil, err
	}

	return &Day{
		name:    formatDayName(name),
		windows: seq.NewTuple(required, extra...),
	}, nil
}

// Name returns the normalized weekday name.
func (d *Day) Name() string {
	return d.name
}

// Window returns the active work window.
func (d *Day) Window() Window {
	w, _ := d.windows.First()
	return w
}

// Windows returns the full window sequence.
func (d *Day) Windows() *seq.Tuple[Window] {
	return d.windows
}
