package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/interval"
)

var intervalCmd = &cobra.Command{
	Use:     "interval [duration]",
	Aliases: []string{"restart", "reminder"},
	Short:   "Show or set the reminder interval (e.g. 45m, 1h30m, 100s)",
	Long: `Without an argument, prints the current reminder interval and restarts
the daemon. With a duration, persists it and restarts the daemon so the new
interval takes effect. A bare number counts as minutes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInterval,
}

func runInterval(cmd *cobra.Command, args []string) error {
	store, err := intervalStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(interval.Format(store.Get()))
		restartDaemon()
		return nil
	}

	secs, err := interval.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("ts interval: %w", err)
	}
	if err := store.Set(secs); err != nil {
		return fmt.Errorf("ts interval: %w", err)
	}
	restartDaemon()
	fmt.Printf("Reminder interval set to %s. Daemon restarted.\n", interval.Format(secs))
	return nil
}

func restartDaemon() {
	stopDaemon()
	time.Sleep(100 * time.Millisecond)
	startDaemon()
}
