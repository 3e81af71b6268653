package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

var stopCmd = &cobra.Command{
	Use:     "stop [stop_time]",
	Aliases: []string{"stopped"},
	Short:   "Record that work stopped (now, or at the given time)",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runStop,
}

// runStop appends a STOP entry and shuts the reminder daemon down. When the
// log already ends on a STOP, a bare stop is a no-op and a stop with an
// explicit time amends that last entry instead of appending a second one.
func runStop(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	now := time.Now()
	if err := rotate.MaybeRotate(logPath, now); err != nil {
		return err
	}

	if last, ok := timelog.LastEntry(logPath); ok && last.Kind == timelog.Stop {
		if len(args) == 0 {
			return nil
		}
		epoch, ok := timelog.ParseTimeArg(args[0], now)
		if !ok {
			return fmt.Errorf("ts stop: could not parse stop time: %s", args[0])
		}
		if err := timelog.ReplaceLast(logPath, timelog.StopEntry(epoch)); err != nil {
			return fmt.Errorf("ts stop: %w", err)
		}
		stopDaemon()
		fmt.Printf("Stopped at %s\n", time.Unix(epoch, 0).Format(report.TimestampLayout))
		return nil
	}

	epoch := now.Unix()
	if len(args) > 0 {
		var ok bool
		epoch, ok = timelog.ParseTimeArg(args[0], now)
		if !ok {
			return fmt.Errorf("ts stop: could not parse stop time: %s", args[0])
		}
	}
	if err := timelog.Append(logPath, timelog.StopEntry(epoch)); err != nil {
		return fmt.Errorf("ts stop: %w", err)
	}
	stopDaemon()
	fmt.Printf("Stopped at %s\n", time.Unix(epoch, 0).Format(report.TimestampLayout))
	return nil
}
