package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/reminder"
	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/timelog"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and today's total",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	now := time.Now()

	if last, ok := timelog.LastEntry(logPath); ok && last.Kind == timelog.Start {
		fmt.Println("Tracking:")
		fmt.Printf("  Activity: %s\n", last.Activity)
		fmt.Printf("  Since: %s\n", time.Unix(last.Epoch, 0).Format("15:04"))
		fmt.Printf("  Elapsed: %s\n", report.FormatSession(now.Unix()-last.Epoch))
	} else {
		fmt.Println("Not tracking.")
	}

	// Today's total across closed sessions plus the open one.
	n := now.Unix()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).Unix()
	var todaySecs int64
	for _, s := range report.Sessions(timelog.ReadAll(logPath), &n) {
		if s.Start >= dayStart && s.Stop > s.Start {
			todaySecs += s.Stop - s.Start
		}
	}
	fmt.Printf("Today: %s logged.\n", report.FormatSession(todaySecs))

	if ps := pidStore(); ps != nil && reminder.Running(ps) {
		fmt.Println("Reminder daemon: running.")
	}
	return nil
}
