package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

var startedCmd = &cobra.Command{
	Use:   "started <start_time> [activity...]",
	Short: "Record a start in the past (e.g. \"2026-02-16 09:00\" or \"9:00 AM\")",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runStarted,
}

// runStarted records a past start time. When the log's last entry is a START
// from today, the new start replaces it; when it is a STOP from today that
// postdates the new time, the start is inserted before it. Anything else is
// a plain append.
func runStarted(cmd *cobra.Command, args []string) error {
	cfg, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	now := time.Now()
	epoch, ok := timelog.ParseTimeArg(args[0], now)
	if !ok {
		return fmt.Errorf("ts started: could not parse start time: %s", args[0])
	}
	if err := rotate.MaybeRotate(logPath, now); err != nil {
		return err
	}

	activity := strings.Join(args[1:], " ")
	if activity == "" {
		activity = cfg.DefaultActivity
	}
	entry := timelog.StartEntry(epoch, activity)

	wrote := false
	if last, ok := timelog.LastEntry(logPath); ok {
		switch {
		case last.Kind == timelog.Start && sameLocalDay(last.Epoch, now):
			if err := timelog.ReplaceLast(logPath, entry); err != nil {
				return fmt.Errorf("ts started: %w", err)
			}
			wrote = true
		case last.Kind == timelog.Stop && epoch < last.Epoch && sameLocalDay(last.Epoch, now):
			if err := timelog.InsertBeforeLast(logPath, entry); err != nil {
				return fmt.Errorf("ts started: %w", err)
			}
			wrote = true
		}
	}
	if !wrote {
		if err := timelog.Append(logPath, entry); err != nil {
			return fmt.Errorf("ts started: %w", err)
		}
	}

	fmt.Printf("Started: %s at %s\n", activity, time.Unix(epoch, 0).Format(report.TimestampLayout))
	startDaemon()
	return nil
}

func sameLocalDay(epoch int64, now time.Time) bool {
	y1, m1, d1 := time.Unix(epoch, 0).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
