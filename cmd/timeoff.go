package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

const targetHoursPerDay = 8.0

var timeoffCmd = &cobra.Command{
	Use:   "timeoff",
	Short: "Show when to stop for an 8 h/day average",
	Args:  cobra.NoArgs,
	RunE:  runTimeoff,
}

// runTimeoff projects the stop time that brings the average up to eight
// hours per tracked day. It only needs work in progress; if the log is empty
// or ends on a STOP, a start entry is recorded first.
func runTimeoff(cmd *cobra.Command, args []string) error {
	cfg, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	now := time.Now()
	if err := rotate.MaybeRotate(logPath, now); err != nil {
		return err
	}

	last, ok := timelog.LastEntry(logPath)
	if !ok || last.Kind == timelog.Stop {
		if err := timelog.Append(logPath, timelog.StartEntry(now.Unix(), cfg.DefaultActivity)); err != nil {
			return fmt.Errorf("ts timeoff: %w", err)
		}
	}

	totalSecs, days := report.Worked(timelog.ReadAll(logPath), now.Unix())
	if days == 0 {
		fmt.Println("No work recorded.")
		return nil
	}

	workedHrs := report.Trunc2(float64(totalSecs) / 3600)
	targetHrs := report.Trunc2(targetHoursPerDay * float64(days))
	needHrs := report.Trunc2(targetHrs - workedHrs)
	if needHrs <= 0 {
		fmt.Println("Average already at least 8 hours per day worked. You may stop now.")
		fmt.Println(now.Format(report.TimestampLayout))
		return nil
	}

	stopAt := time.Unix(now.Unix()+int64(needHrs*3600), 0)
	fmt.Printf("Stop at: %s\n", stopAt.Format(report.TimestampLayout))
	fmt.Printf("(%.2f hours remaining for 8h/day average over %d day(s))\n", needHrs, days)
	return nil
}
