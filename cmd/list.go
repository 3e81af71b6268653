package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

var listCmd = &cobra.Command{
	Use:   "list [timesheet]",
	Short: "Report tracked time (current week, or an archived timesheet)",
	Long: `Without an argument, reports on the current timesheet. An argument
selects an archived week instead: a path, an archive suffix like 260215,
a date like 2026-02-15, or a fragment of either.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	now := time.Now()
	target, err := rotate.Resolve(arg, logPath, now)
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(target); statErr != nil {
		fmt.Println("No timesheet data found.")
		return nil
	}

	lines := timelog.ReadAll(target)

	// Only the live timesheet gets a virtual stop for the open session;
	// archives are closed history. Tracking is open when the trailing
	// entry is a Start that no Stop has closed yet.
	isCurrent := arg == "" || arg == "log"
	var openStart *timelog.Entry
	if n := len(lines); n > 0 && lines[n-1].Entry.Kind == timelog.Start {
		e := lines[n-1].Entry
		openStart = &e
	}
	var virtualStop *int64
	if isCurrent && openStart != nil {
		n := now.Unix()
		virtualStop = &n
	}

	r := report.Summarize(lines, virtualStop)
	if len(r.Activities) == 0 {
		fmt.Println("No work recorded.")
		return nil
	}
	report.Render(os.Stdout, r)

	if isCurrent && openStart != nil {
		fmt.Printf("\nCurrent Task: %s, started %s, worked %s\n",
			openStart.Activity,
			time.Unix(openStart.Epoch, 0).Format(report.TimestampLayout),
			report.FormatSession(now.Unix()-openStart.Epoch))
	}
	return nil
}
