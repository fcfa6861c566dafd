package worktime

import (
	"errors"

	"timedist/internal/seq"
)

var (
	// ErrInvalidWeekday is returned when a supplied or derived weekday name
	// is not one of the seven canonical English names.
	ErrInvalidWeekday = errors.New("unknown day of week")

	// ErrEmptySchedule is returned when a schedule is constructed with all
	// seven days absent.
	ErrEmptySchedule = errors.New("schedule has no week days")

	// ErrNotNormalized is returned by derived reads on a TimeOfDay whose
	// day relationship has not been resolved yet.
	ErrNotNormalized = errors.New("time of day is not normalized")

	// ErrImmutable is returned when a mutation is attempted on a frozen
	// value outside the sanctioned normalization transitions.
	ErrImmutable = seq.ErrImmutable

	// ErrUnsupported is returned when a deliberately disabled feature or
	// construction path is requested.
	ErrUnsupported = errors.New("operation not supported")
)
