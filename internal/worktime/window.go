package worktime

import "time"

// Window is an immutable work shift bounded by two TimeOfDay values. A pair
// whose end precedes its start denotes an overnight shift; construction
// resolves the ambiguity by rolling the end to the next reference day.
// Equal endpoints denote a full 24-hour window.
type Window struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewWindow builds a window from two endpoints, rolling the end forward one
// day when it precedes the start. Passing endpoints that were already rolled
// and normalized is fine; the rollover is applied at most once.
func NewWindow(start, end TimeOfDay) Window {
	if start.After(end) {
		end = end.NextDay()
	}
	return Window{
		start: start.Normalized(),
		end:   end.Normalized(),
	}
}

// Start returns a copy of the window's start time.
func (w Window) Start() TimeOfDay {
	return w.start
}

// End returns a copy of the window's end time.
func (w Window) End() TimeOfDay {
	return w.end
}

// Duration returns the length of the window. Equal endpoints mean the
// window covers the whole day.
func (w Window) Duration() (time.Duration, error) {
	startTs, err := w.start.Timestamp()
	if err != nil {
		return 0, err
	}
	endTs, err := w.end.Timestamp()
	if err != nil {
		return 0, err
	}

	seconds := endTs - startTs
	if seconds == 0 {
		seconds = SecondsInDay
	}
	return time.Duration(seconds) * time.Second, nil
}

// Project classifies the time of day of t within the window's coordinate
// frame. A clock reading at or before the window's end-on-the-start-day is
// taken to belong to the tail of the previous day's shift and is rolled to
// the next reference day. The result is always normalized; t is never
// modified.
func (w Window) Project(t time.Time) (TimeOfDay, error) {
	if _, err := w.end.Timestamp(); err != nil {
		return TimeOfDay{}, err
	}

	work := New(t.Hour(), t.Minute(), t.Second())

	// An end stored before the start would mean the rollover bookkeeping
	// was skipped; leave the projection on its own reference day and let
	// the caller account for the crossed day boundary.
	if w.end.Before(w.start) {
		return work.Normalized(), nil
	}

	// The end expressed on the same reference day as the start, undoing the
	// overnight rollover. For a same-day window this is negative and the
	// roll below never fires.
	endBase := w.end.unix() - SecondsInDay
	if work.unix() <= endBase {
		work = work.NextDay()
	}

	return work.Normalized(), nil
}
