package options

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/almanac-sh/almanac/pkg/timeutil"
)

const layoutClock = "15:04"

// WhenOptions combine into an event's time window: --at picks the start
// clock time and --for picks the length.
type WhenOptions struct {
	AtString  string
	ForString string
}

func AddWhenArgs(cmd *cobra.Command, o *WhenOptions) {
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Start time of the event, example: --at="09:30".`)
	cmd.Flags().StringVar(&o.ForString, "for", timeutil.DefaultDuration,
		`Length of the event, example: --for="45m" or --for="1h30m".`)
}

// GetStart combines the clock time with the given date (today when nil)
// in local time.
func (o *WhenOptions) GetStart(on *time.Time) (time.Time, error) {
	if o.AtString == "" {
		return time.Time{}, errors.New(`a start time is required, example: --at="09:30"`)
	}
	clock, err := time.Parse(layoutClock, o.AtString)
	if err != nil {
		return time.Time{}, err
	}

	day := time.Now()
	if on != nil {
		day = *on
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local), nil
}

func (o *WhenOptions) GetDuration() (string, error) {
	if _, _, err := timeutil.ParseDuration(o.ForString); err != nil {
		return "", err
	}
	return o.ForString, nil
}
