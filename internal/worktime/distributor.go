package worktime

import "time"

// Distributor allocates working time over a schedule. It is stateless apart
// from an optional night window that replaces the scheduled window whenever
// a calculation runs in night mode.
type Distributor struct {
	night *Window
}

// NewDistributor returns a distributor. A non-nil night window is copied and
// used as the override for night mode calculations; with a nil override,
// night mode degenerates to the day window of the schedule.
func NewDistributor(night *Window) *Distributor {
	d := &Distributor{}
	if night != nil {
		w := *night
		d.night = &w
	}
	return d
}

// CalculateEnd returns the instant at which the given amount of working time
// is exhausted, counting from begin and consuming only seconds that fall
// inside the schedule's active windows.
func (d *Distributor) CalculateEnd(begin time.Time, schedule *Schedule, amount time.Duration, night bool) (time.Time, error) {
	corrected, err := d.CorrectBegin(begin, schedule, night)
	if err != nil {
		return time.Time{}, err
	}
	return d.Distribute(corrected, schedule, amount, night)
}

// NearestWorkDay advances t by whole days until it lands on a weekday that
// has a day program. The non-empty schedule invariant bounds the walk to at
// most seven steps.
func (d *Distributor) NearestWorkDay(t time.Time, schedule *Schedule) (time.Time, error) {
	for {
		day, err := schedule.Day(weekdayName(t))
		if err != nil {
			return time.Time{}, err
		}
		if day != nil {
			return t, nil
		}
		t = t.AddDate(0, 0, 1)
	}
}

// IsWorkTime reports whether t's time of day falls inside the window,
// inclusive on both ends. A window with equal endpoints is always working.
func (d *Distributor) IsWorkTime(t time.Time, window Window) (bool, error) {
	start := window.Start()
	end := window.End()

	// 24 hours work
	if start.Equal(end) {
		return true, nil
	}

	work, err := window.Project(t)
	if err != nil {
		return false, err
	}

	return !work.Before(start) && !work.After(end), nil
}

// CorrectBegin moves begin to the first instant at which working time can be
// consumed: the start of the next window when begin falls outside one, or
// begin itself when it is already inside.
func (d *Distributor) CorrectBegin(begin time.Time, schedule *Schedule, night bool) (time.Time, error) {
	result, err := d.NearestWorkDay(begin, schedule)
	if err != nil {
		return time.Time{}, err
	}

	window, err := d.activeWindow(result, schedule, night)
	if err != nil {
		return time.Time{}, err
	}
	work, err := window.Project(result)
	if err != nil {
		return time.Time{}, err
	}
	start := window.Start()

	// begin fell on a non-working day; its time of day means nothing, so
	// snap to the start of the first working day's window.
	if result.After(begin) {
		return setClock(result, start.Hour(), start.Minute(), 0), nil
	}

	inside, err := d.IsWorkTime(result, window)
	if err != nil {
		return time.Time{}, err
	}
	if inside {
		return result, nil
	}

	// Outside the window there are two cases: past today's window, in which
	// case the next working day's window opens next, or before today's
	// window, in which case today's own start is still ahead.
	if work.After(start) {
		result, err = d.NearestWorkDay(result.AddDate(0, 0, 1), schedule)
		if err != nil {
			return time.Time{}, err
		}
		window, err = d.activeWindow(result, schedule, night)
		if err != nil {
			return time.Time{}, err
		}
		start = window.Start()
	}

	return setClock(result, start.Hour(), start.Minute(), 0), nil
}

// Distribute consumes the given amount of working time day by day starting
// at begin, which is assumed to be already corrected onto a working window.
func (d *Distributor) Distribute(begin time.Time, schedule *Schedule, amount time.Duration, night bool) (time.Time, error) {
	end := begin
	for {
		var err error
		end, err = d.NearestWorkDay(end, schedule)
		if err != nil {
			return time.Time{}, err
		}

		window, err := d.activeWindow(end, schedule, night)
		if err != nil {
			return time.Time{}, err
		}
		start := window.Start()

		work, err := window.Project(end)
		if err != nil {
			return time.Time{}, err
		}
		workTs, err := work.Timestamp()
		if err != nil {
			return time.Time{}, err
		}
		startTs, err := start.Timestamp()
		if err != nil {
			return time.Time{}, err
		}

		// Fold the part of the window already behind the cursor into the
		// budget, then rewind the cursor to the window start so every
		// advance below measures from there.
		amount += time.Duration(workTs-startTs) * time.Second
		end = setClock(end, start.Hour(), start.Minute(), start.Second())

		// An overnight window projects early morning clocks onto the next
		// reference day; resetting such a cursor to the start clock also
		// has to step the calendar back across midnight.
		if workTs > SecondsInDay {
			end = end.AddDate(0, 0, -1)
		}

		capacity, err := window.Duration()
		if err != nil {
			return time.Time{}, err
		}

		remaining := amount - capacity
		if remaining <= 0 {
			return end.Add(amount), nil
		}
		end = end.AddDate(0, 0, 1)
		amount = remaining
	}
}

// activeWindow resolves the window governing t. Night mode hands out a fresh
// copy so no caller ever shares the configured override.
func (d *Distributor) activeWindow(t time.Time, schedule *Schedule, night bool) (Window, error) {
	var window Window
	if night && d.night != nil {
		window = *d.night
	} else {
		day, err := schedule.Day(weekdayName(t))
		if err != nil {
			return Window{}, err
		}
		window = day.Window()
	}

	if night {
		return NewWindow(window.Start(), window.End()), nil
	}
	return window, nil
}

func setClock(t time.Time, hour, minute, second int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, second, 0, t.Location())
}
