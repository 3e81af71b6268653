package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live dashboard of this week's report",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	return watch.Run(logPath)
}
