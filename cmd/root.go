package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/config"
	"github.com/tsheet/ts/internal/interval"
	"github.com/tsheet/ts/internal/reminder"
)

var rootCmd = &cobra.Command{
	Use:   "ts",
	Short: "ts - a flat-file timesheet tracker",
	Long: `ts tracks work sessions in a plain-text timesheet and reminds you to
keep it current. All data lives in ~/Documents/timesheet.log as
human-readable START/STOP lines.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(startedCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(timeoffCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(outlookCmd)
	rootCmd.AddCommand(watchCmd)
}

// timesheetPath loads the config and resolves the active log location.
func timesheetPath() (config.Config, string, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	path, err := cfg.TimesheetPath()
	if err != nil {
		return cfg, "", err
	}
	return cfg, path, nil
}

// pidStore returns the daemon pid record, or nil when the cache directory
// cannot be resolved (reminders are then silently unavailable).
func pidStore() reminder.PidStore {
	path, err := config.PidPath()
	if err != nil {
		return nil
	}
	return reminder.FilePidStore{Path: path}
}

func intervalStore() (interval.Store, error) {
	path, err := config.IntervalPath()
	if err != nil {
		return nil, err
	}
	return interval.FileStore{Path: path}, nil
}

func startDaemon() {
	if ps := pidStore(); ps != nil {
		reminder.StartDaemonIfNeeded(ps)
	}
}

func stopDaemon() {
	if ps := pidStore(); ps != nil {
		reminder.StopDaemon(ps)
	}
}
