package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"timedist/internal/worktime"
)

const dateTimeLayout = "Mon, 2006-01-02 15:04:05 -0700"

//go:generate go tool mockgen -destination ../testing/mock/clock.go -package mock timedist/cmd Clock

// Clock supplies the current time when no explicit begin instant is given.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate the end of a working time budget",
	Long: `This command consumes the given amount of working time starting from the begin
instant, skipping non-working hours and non-working weekdays defined by the
schedule, and prints the resulting end instant.`,
	GroupID: defaultCommandGroup.ID,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// Prevent showing usage after validation
		cmd.SilenceUsage = true

		v := vipers[cmd]

		// Calendar exceptions are out of scope: the schedule alone decides
		// which days are working days.
		if v.IsSet("holidays") {
			return fmt.Errorf("holidays are not configurable: %w", worktime.ErrUnsupported)
		}

		tz, err := time.LoadLocation(v.GetString("time-zone"))
		if err != nil {
			return err
		}

		logger := zap.NewNop()
		if v.GetBool("verbose") {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return err
			}
		}
		defer logger.Sync()

		return runCalc(
			os.Stdout,
			logger,
			systemClock{},
			tz,
			v.GetString("begin"),
			v.GetDuration("duration"),
			v.GetStringSlice("schedule"),
			v.GetString("night-window"),
			v.GetBool("night"),
		)
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().String("time-zone", "UTC", "Time zone used for begin and the printed instants")
	calcCmd.Flags().String("begin", "", "Begin instant in \"2006-01-02 15:04:05\" form (defaults to the current time)")
	calcCmd.Flags().Duration("duration", 0, "Amount of working time to distribute")
	calcCmd.MarkFlagRequired("duration")
	calcCmd.Flags().StringSlice("schedule", []string{}, "Schedule entries in weekday=HH:MM-HH:MM form")
	calcCmd.MarkFlagRequired("schedule")
	calcCmd.Flags().Bool("night", false, "Distribute over the night window instead of the day windows")
	calcCmd.Flags().String("night-window", "", "Night window in HH:MM-HH:MM form used by night")
	calcCmd.Flags().Bool("verbose", false, "Enable debug logging")
}

func runCalc(
	out io.Writer,
	logger *zap.Logger,
	clock Clock,
	tz *time.Location,
	begin string,
	amount time.Duration,
	scheduleEntries []string,
	nightRange string,
	night bool,
) error {
	schedule, err := worktime.ParseSchedule(scheduleEntries)
	if err != nil {
		return err
	}

	var nightWindow *worktime.Window
	if nightRange != "" {
		w, err := worktime.ParseWindow(nightRange)
		if err != nil {
			return err
		}
		nightWindow = &w
	}
	distributor := worktime.NewDistributor(nightWindow)

	var beginTime time.Time
	if begin == "" {
		beginTime = clock.Now().In(tz)
	} else {
		beginTime, err = time.ParseInLocation(time.DateTime, begin, tz)
		if err != nil {
			return fmt.Errorf("invalid begin value: %w", err)
		}
	}

	logger.Debug("distributing working time",
		zap.Time("begin", beginTime),
		zap.Duration("duration", amount),
		zap.Strings("schedule", scheduleEntries),
		zap.Bool("night", night),
	)

	corrected, err := distributor.CorrectBegin(beginTime, schedule, night)
	if err != nil {
		return err
	}
	end, err := distributor.Distribute(corrected, schedule, amount, night)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Begin:     %s\n", beginTime.Format(dateTimeLayout))
	fmt.Fprintf(out, "Corrected: %s\n", corrected.Format(dateTimeLayout))
	fmt.Fprintf(out, "End:       %s\n", end.Format(dateTimeLayout))
	fmt.Fprintf(out, "Duration:  %s of working time\n", amount)

	return nil
}
