package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/rotate"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Archive the current timesheet to a dated file",
	Args:  cobra.NoArgs,
	RunE:  runRotate,
}

func runRotate(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	dest, merged, err := rotate.Rotate(logPath, time.Now())
	if errors.Is(err, rotate.ErrNoData) {
		fmt.Println("No timesheet data found.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ts rotate: %w", err)
	}
	if merged {
		fmt.Printf("Merged into %s\n", dest)
	} else {
		fmt.Printf("Rotated to %s\n", dest)
	}
	return nil
}
