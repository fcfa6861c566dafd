// Package worktime distributes a duration of working seconds over a weekly
// work hours schedule, skipping non-working hours and days and handling
// shifts that cross midnight.
package worktime

import "time"

const (
	SecondsInMinute = 60
	SecondsInHour   = 3600
	SecondsInDay    = 86400
)

// referenceDay anchors every TimeOfDay to the Unix epoch day so that
// duration and comparison arithmetic reduce to timestamp subtraction.
var referenceDay = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// TimeOfDay is an immutable time-of-day value anchored to a fixed reference
// day. A value starts out raw: its relation to the reference day is
// unresolved until one of the normalizing transitions (NextDay, Normalized)
// runs, or until construction resolves it for exact midnight. Derived reads
// fail with ErrNotNormalized on a raw value.
//
// The reference day is an implementation detail; the public identity of a
// value is its hour, minute, and second only.
type TimeOfDay struct {
	t          time.Time
	normalized bool
}

// New constructs a raw TimeOfDay from clock components. Components outside
// their natural ranges are normalized the way time.Date normalizes them.
//
// An exact midnight is indistinguishable from a full day cycle wrapping back
// to 00:00, so it is rolled to the end of the reference day and marked
// normalized immediately.
func New(hour, minute, second int) TimeOfDay {
	t := time.Date(1970, time.January, 1, hour, minute, second, 0, time.UTC)
	if t.Equal(referenceDay) {
		return TimeOfDay{t: t.AddDate(0, 0, 1), normalized: true}
	}
	return TimeOfDay{t: t}
}

// NextDay rolls the value to the next reference day and marks it normalized.
// It is a no-op on an already normalized value, so the roll can happen at
// most once in a value's lifetime.
func (t TimeOfDay) NextDay() TimeOfDay {
	if t.normalized {
		return t
	}
	return TimeOfDay{t: t.t.AddDate(0, 0, 1), normalized: true}
}

// Normalized marks the value's day relationship as resolved without rolling.
func (t TimeOfDay) Normalized() TimeOfDay {
	t.normalized = true
	return t
}

// Timestamp returns the value's offset from the reference day in seconds.
func (t TimeOfDay) Timestamp() (int64, error) {
	if !t.normalized {
		return 0, ErrNotNormalized
	}
	return t.t.Unix(), nil
}

// Format renders the value with the given time layout.
func (t TimeOfDay) Format(layout string) (string, error) {
	if !t.normalized {
		return "", ErrNotNormalized
	}
	return t.t.Format(layout), nil
}

// Diff returns the signed duration from t to other.
func (t TimeOfDay) Diff(other TimeOfDay) (time.Duration, error) {
	if !t.normalized {
		return 0, ErrNotNormalized
	}
	return other.t.Sub(t.t), nil
}

// OnDate places the time of day on the calendar date and in the location of
// d. A value rolled to the next reference day lands on d itself as 00:00
// plus whatever its clock reads; callers own day-level bookkeeping.
func (t TimeOfDay) OnDate(d time.Time) (time.Time, error) {
	if !t.normalized {
		return time.Time{}, ErrNotNormalized
	}
	hour, minute, second := t.t.Clock()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, second, 0, d.Location()), nil
}

func (t TimeOfDay) Hour() int {
	return t.t.Hour()
}

func (t TimeOfDay) Minute() int {
	return t.t.Minute()
}

func (t TimeOfDay) Second() int {
	return t.t.Second()
}

// Before reports whether t orders before other on the reference day.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.t.Before(other.t)
}

// After reports whether t orders after other on the reference day.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.t.After(other.t)
}

// Equal reports whether both values denote the same reference day instant.
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.t.Equal(other.t)
}

// Compare orders two values by their reference day instants.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	return t.t.Compare(other.t)
}

func (t TimeOfDay) String() string {
	return t.t.Format(time.TimeOnly)
}

// unix reads the raw reference day offset without the normalization gate.
// Classification code needs it before a value's day relationship is settled.
func (t TimeOfDay) unix() int64 {
	return t.t.Unix()
}
