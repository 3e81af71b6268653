package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [timesheet]",
	Short: "Export sessions to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

// exportedSession is the JSON shape of one session.
type exportedSession struct {
	Activity        string `json:"activity"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationSeconds int64  `json:"duration_seconds"`
}

func runExport(cmd *cobra.Command, args []string) error {
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

	n := now.Unix()
	sessions := report.Sessions(timelog.ReadAll(target), &n)

	switch exportFormat {
	case "json":
		out := make([]exportedSession, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, exportedSession{
				Activity:        s.Activity,
				Start:           time.Unix(s.Start, 0).Format(time.RFC3339),
				End:             time.Unix(s.Stop, 0).Format(time.RFC3339),
				DurationSeconds: s.Stop - s.Start,
			})
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Println(string(data))
	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"date", "activity", "start", "end", "duration_minutes"}); err != nil {
			return err
		}
		for _, s := range sessions {
			start := time.Unix(s.Start, 0)
			rec := []string{
				start.Format("2006-01-02"),
				s.Activity,
				start.Format(time.RFC3339),
				time.Unix(s.Stop, 0).Format(time.RFC3339),
				strconv.FormatInt((s.Stop-s.Start)/60, 10),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	default:
		return fmt.Errorf("unknown format %q (want csv or json)", exportFormat)
	}
	return nil
}
