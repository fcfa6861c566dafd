package worktime_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"timedist/internal/worktime"
)

type distributorSuite struct {
	suite.Suite

	tz      *time.Location
	service *worktime.Distributor
}

func TestDistributorSuite(t *testing.T) {
	suite.Run(t, new(distributorSuite))
}

func (s *distributorSuite) SetupSuite() {
	tz, err := time.LoadLocation("Europe/Moscow")
	s.Require().NoError(err)
	s.tz = tz
}

func (s *distributorSuite) SetupTest() {
	night := worktime.NewWindow(worktime.New(23, 0, 0), worktime.New(7, 0, 0))
	s.service = worktime.NewDistributor(&night)
}

func (s *distributorSuite) date(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, s.tz)
}

// newSchedule builds a schedule with the same window on every working day:
// Monday through Friday, plus the weekend when withWeekend is set.
func (s *distributorSuite) newSchedule(window worktime.Window, withWeekend bool) *worktime.Schedule {
	names := []string{
		worktime.Monday,
		worktime.Tuesday,
		worktime.Wednesday,
		worktime.Thursday,
		worktime.Friday,
	}
	if withWeekend {
		names = append(names, worktime.Saturday, worktime.Sunday)
	}

	days := make([]*worktime.Day, len(names))
	for i, name := range names {
		day, err := worktime.NewDay(name, window)
		s.Require().NoError(err)
		days[i] = day
	}

	schedule, err := worktime.NewSchedule(days...)
	s.Require().NoError(err)
	return schedule
}

func (s *distributorSuite) TestCalculateEnd() {
	allWeek10to22 := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), true)
	allWeek8to23 := s.newSchedule(worktime.NewWindow(worktime.New(8, 0, 0), worktime.New(23, 0, 0)), true)
	weekdays10to22 := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), false)
	weekdays10to19 := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(19, 0, 0)), false)

	tests := []struct {
		name     string
		begin    time.Time
		night    bool
		schedule *worktime.Schedule
		amount   time.Duration
		want     time.Time
	}{
		{
			name:     "spans three window days",
			begin:    s.date(2020, time.March, 26, 10, 0, 0),
			schedule: allWeek10to22,
			amount:   36 * time.Hour,
			want:     s.date(2020, time.March, 28, 22, 0, 0),
		},
		{
			name:     "fits into the current window",
			begin:    s.date(2020, time.March, 26, 11, 59, 59),
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.March, 26, 13, 29, 59),
		},
		{
			name:     "begin exactly at window end",
			begin:    s.date(2020, time.March, 26, 22, 0, 0),
			schedule: allWeek10to22,
			amount:   time.Hour,
			want:     s.date(2020, time.March, 27, 11, 0, 0),
		},
		{
			name:     "seconds survive inside the window",
			begin:    s.date(2020, time.April, 14, 10, 0, 59),
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.April, 14, 11, 30, 59),
		},
		{
			name:     "seconds are dropped when begin snaps to the next window",
			begin:    s.date(2020, time.April, 14, 22, 0, 59),
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.April, 15, 11, 30, 0),
		},
		{
			name:     "late evening inside the window",
			begin:    s.date(2020, time.April, 14, 20, 0, 59),
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.April, 14, 21, 30, 59),
		},
		{
			name:     "midday begin",
			begin:    s.date(2020, time.April, 13, 15, 37, 5),
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.April, 13, 17, 7, 5),
		},
		{
			name:     "long window spills into the next day",
			begin:    s.date(2020, time.April, 29, 17, 0, 59),
			schedule: allWeek8to23,
			amount:   8 * time.Hour,
			want:     s.date(2020, time.April, 30, 10, 0, 59),
		},
		{
			name:     "long window spills exactly on the hour",
			begin:    s.date(2020, time.April, 29, 18, 0, 0),
			schedule: allWeek8to23,
			amount:   6 * time.Hour,
			want:     s.date(2020, time.April, 30, 9, 0, 0),
		},
		{
			name:     "six full windows",
			begin:    s.date(2020, time.April, 20, 18, 50, 0),
			schedule: allWeek10to22,
			amount:   72 * time.Hour,
			want:     s.date(2020, time.April, 26, 18, 50, 0),
		},
		{
			name:     "night mode over several shifts",
			begin:    s.date(2020, time.March, 26, 10, 0, 0),
			night:    true,
			schedule: allWeek10to22,
			amount:   28 * time.Hour,
			want:     s.date(2020, time.March, 30, 3, 0, 0),
		},
		{
			name:     "night mode crosses midnight",
			begin:    s.date(2020, time.March, 26, 11, 59, 59),
			night:    true,
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.March, 27, 0, 30, 0),
		},
		{
			name:     "night mode in the shift tail after midnight",
			begin:    s.date(2020, time.April, 14, 0, 59, 59),
			night:    true,
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.April, 14, 2, 29, 59),
		},
		{
			name:     "night mode before the shift starts",
			begin:    s.date(2020, time.March, 26, 5, 59, 59),
			night:    true,
			schedule: allWeek10to22,
			amount:   time.Hour + 30*time.Minute,
			want:     s.date(2020, time.March, 26, 23, 29, 59),
		},
		{
			name:     "weekend days are skipped",
			begin:    s.date(2020, time.March, 26, 10, 0, 0),
			schedule: weekdays10to22,
			amount:   36 * time.Hour,
			want:     s.date(2020, time.March, 30, 22, 0, 0),
		},
		{
			name:     "short window fits",
			begin:    s.date(2020, time.April, 15, 11, 59, 59),
			schedule: weekdays10to19,
			amount:   4 * time.Hour,
			want:     s.date(2020, time.April, 15, 15, 59, 59),
		},
		{
			name:     "short window spills into the next day",
			begin:    s.date(2020, time.April, 14, 18, 0, 59),
			schedule: weekdays10to19,
			amount:   4 * time.Hour,
			want:     s.date(2020, time.April, 15, 13, 0, 59),
		},
		{
			name:     "begin on a weekend snaps to Monday",
			begin:    s.date(2020, time.April, 25, 16, 0, 0),
			schedule: weekdays10to19,
			amount:   time.Hour,
			want:     s.date(2020, time.April, 27, 11, 0, 0),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.CalculateEnd(tt.begin, tt.schedule, tt.amount, tt.night)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *distributorSuite) TestCalculateEnd_NightModeWithoutOverride() {
	schedule := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), true)
	service := worktime.NewDistributor(nil)

	// With no night window configured, night mode falls back to the day window.
	got, err := service.CalculateEnd(s.date(2020, time.March, 26, 10, 0, 0), schedule, time.Hour, true)
	s.Require().NoError(err)
	s.Equal(s.date(2020, time.March, 26, 11, 0, 0), got)
}

func (s *distributorSuite) TestCalculateEnd_IsDeterministic() {
	schedule := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), true)
	begin := s.date(2020, time.March, 26, 10, 0, 0)

	first, err := s.service.CalculateEnd(begin, schedule, 28*time.Hour, true)
	s.Require().NoError(err)
	second, err := s.service.CalculateEnd(begin, schedule, 28*time.Hour, true)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *distributorSuite) TestNearestWorkDay() {
	schedule := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(19, 0, 0)), false)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "working day stays",
			in:   s.date(2020, time.April, 15, 13, 0, 0),
			want: s.date(2020, time.April, 15, 13, 0, 0),
		},
		{
			name: "saturday advances to monday",
			in:   s.date(2020, time.April, 25, 13, 0, 0),
			want: s.date(2020, time.April, 27, 13, 0, 0),
		},
		{
			name: "sunday advances to monday",
			in:   s.date(2020, time.April, 26, 13, 0, 0),
			want: s.date(2020, time.April, 27, 13, 0, 0),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.NearestWorkDay(tt.in, schedule)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *distributorSuite) TestIsWorkTime() {
	day := worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0))
	night := worktime.NewWindow(worktime.New(23, 0, 0), worktime.New(7, 0, 0))
	always := worktime.NewWindow(worktime.New(9, 0, 0), worktime.New(9, 0, 0))

	tests := []struct {
		name   string
		window worktime.Window
		in     time.Time
		want   bool
	}{
		{
			name:   "inside a day window",
			window: day,
			in:     s.date(2020, time.March, 26, 21, 0, 0),
			want:   true,
		},
		{
			name:   "window bounds are inclusive",
			window: day,
			in:     s.date(2020, time.March, 26, 22, 0, 0),
			want:   true,
		},
		{
			name:   "outside a day window",
			window: day,
			in:     s.date(2020, time.March, 26, 23, 0, 0),
			want:   false,
		},
		{
			name:   "night shift head",
			window: night,
			in:     s.date(2020, time.March, 26, 23, 30, 0),
			want:   true,
		},
		{
			name:   "night shift tail after midnight",
			window: night,
			in:     s.date(2020, time.March, 27, 5, 0, 0),
			want:   true,
		},
		{
			name:   "daytime outside a night shift",
			window: night,
			in:     s.date(2020, time.March, 26, 12, 0, 0),
			want:   false,
		},
		{
			name:   "24 hour window always works",
			window: always,
			in:     s.date(2020, time.March, 26, 3, 33, 0),
			want:   true,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.IsWorkTime(tt.in, tt.window)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

func (s *distributorSuite) TestCorrectBegin() {
	schedule := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), false)

	tests := []struct {
		name  string
		begin time.Time
		want  time.Time
	}{
		{
			name:  "inside the window is untouched",
			begin: s.date(2020, time.April, 14, 15, 30, 45),
			want:  s.date(2020, time.April, 14, 15, 30, 45),
		},
		{
			name:  "before the window snaps to the same day's start",
			begin: s.date(2020, time.April, 14, 7, 12, 44),
			want:  s.date(2020, time.April, 14, 10, 0, 0),
		},
		{
			name:  "after the window snaps to the next day's start",
			begin: s.date(2020, time.April, 14, 22, 30, 0),
			want:  s.date(2020, time.April, 15, 10, 0, 0),
		},
		{
			name:  "after Friday's window lands on Monday",
			begin: s.date(2020, time.April, 24, 23, 0, 0),
			want:  s.date(2020, time.April, 27, 10, 0, 0),
		},
		{
			name:  "weekend begin discards its time of day",
			begin: s.date(2020, time.April, 25, 3, 0, 7),
			want:  s.date(2020, time.April, 27, 10, 0, 0),
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.CorrectBegin(tt.begin, schedule, false)
			s.Require().NoError(err)
			s.Equal(tt.want, got)
		})
	}
}

// TestDistributionConservation walks the result minute by minute and checks
// that the working minutes between the corrected begin and the end add up to
// exactly the requested amount.
func (s *distributorSuite) TestDistributionConservation() {
	schedule := s.newSchedule(worktime.NewWindow(worktime.New(10, 0, 0), worktime.New(22, 0, 0)), false)
	begin := s.date(2020, time.March, 27, 15, 0, 0) // Friday

	for _, amount := range []time.Duration{45 * time.Minute, 4 * time.Hour, 20 * time.Hour} {
		s.Run(amount.String(), func() {
			corrected, err := s.service.CorrectBegin(begin, schedule, false)
			s.Require().NoError(err)
			end, err := s.service.Distribute(corrected, schedule, amount, false)
			s.Require().NoError(err)

			s.NotEqual(time.Saturday, end.Weekday())
			s.NotEqual(time.Sunday, end.Weekday())
			s.Equal(amount, s.countWorkingTime(schedule, corrected, end))
		})
	}
}

func (s *distributorSuite) countWorkingTime(schedule *worktime.Schedule, from, to time.Time) time.Duration {
	var total time.Duration
	for cursor := from; cursor.Before(to); cursor = cursor.Add(time.Minute) {
		day, err := schedule.Day(strings.ToLower(cursor.Weekday().String()))
		s.Require().NoError(err)
		if day == nil {
			continue
		}
		// A minute counts only when it lies entirely inside the window.
		start, err := s.service.IsWorkTime(cursor, day.Window())
		s.Require().NoError(err)
		end, err := s.service.IsWorkTime(cursor.Add(time.Minute), day.Window())
		s.Require().NoError(err)
		if start && end {
			total += time.Minute
		}
	}
	return total
}
