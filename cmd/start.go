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

var startCmd = &cobra.Command{
	Use:   "start [activity...]",
	Short: "Record that work starts now",
	Args:  cobra.ArbitraryArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	if err := rotate.MaybeRotate(logPath, time.Now()); err != nil {
		return err
	}

	activity := strings.Join(args, " ")
	if activity == "" {
		activity = cfg.DefaultActivity
	}

	now := time.Now()
	if err := timelog.Append(logPath, timelog.StartEntry(now.Unix(), activity)); err != nil {
		return fmt.Errorf("ts start: %w", err)
	}
	fmt.Printf("Started: %s at %s\n", activity, now.Format(report.TimestampLayout))
	startDaemon()
	return nil
}
