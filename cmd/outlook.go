package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/msgraph"
)

var (
	outlookSyncFrom   string
	outlookSyncTo     string
	outlookSyncDate   string
	outlookSyncDryRun bool
	outlookSyncTZ     string
)

var outlookCmd = &cobra.Command{
	Use:   "outlook",
	Short: "Outlook calendar integration",
}

var outlookSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import Outlook calendar events as tracked sessions",
	Args:  cobra.NoArgs,
	RunE:  runOutlookSync,
}

func init() {
	outlookSyncCmd.Flags().StringVar(&outlookSyncFrom, "from", "", "Start date (YYYY-MM-DD); required when --to is specified")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTo, "to", "", "End date (YYYY-MM-DD); defaults to today")
	outlookSyncCmd.Flags().StringVar(&outlookSyncDate, "date", "", "Sync a specific date (YYYY-MM-DD)")
	outlookSyncCmd.Flags().BoolVar(&outlookSyncDryRun, "dry-run", false, "Print planned operations without writing")
	outlookSyncCmd.Flags().StringVar(&outlookSyncTZ, "timezone", "", "IANA timezone for event times (e.g. Europe/Berlin)")
	outlookCmd.AddCommand(outlookSyncCmd)
}

func runOutlookSync(cmd *cobra.Command, args []string) error {
	cfg, logPath, err := timesheetPath()
	if err != nil {
		return err
	}

	now := time.Now()
	from, to, err := syncRange(now)
	if err != nil {
		return err
	}

	timezone := outlookSyncTZ
	if timezone == "" {
		timezone = cfg.Outlook.Timezone
	}

	dryTag := ""
	if outlookSyncDryRun {
		dryTag = " [dry-run]"
	}
	fmt.Printf("Syncing Outlook events (%s to %s)%s...\n",
		from.Format("2006-01-02"), to.Format("2006-01-02"), dryTag)
	fmt.Println()

	ctx := context.Background()
	tok, ocfg, err := msgraph.Authenticate(ctx, cfg.Outlook.TenantID, cfg.Outlook.ClientID)
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	client := msgraph.NewClient(ctx, tok, ocfg)
	events, err := client.GetCalendarView(ctx, from, to, timezone)
	if err != nil {
		return fmt.Errorf("fetching calendar: %w", err)
	}

	result, err := msgraph.SyncEvents(events, msgraph.SyncOptions{
		LogPath:  logPath,
		Activity: cfg.Outlook.DefaultActivity,
		Timezone: timezone,
		DryRun:   outlookSyncDryRun,
	})
	if err != nil {
		return fmt.Errorf("ts outlook sync: %w", err)
	}

	fmt.Println()
	fmt.Printf("Done: %d imported, %d skipped, %d errors.\n",
		result.Imported, result.Skipped, result.Errors)
	return nil
}

// syncRange resolves the --date/--from/--to flags into [from, to); the
// default is today.
func syncRange(now time.Time) (time.Time, time.Time, error) {
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	switch {
	case outlookSyncDate != "":
		d, err := time.ParseInLocation("2006-01-02", outlookSyncDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --date value %q: %w", outlookSyncDate, err)
		}
		return d, d.AddDate(0, 0, 1), nil
	case outlookSyncFrom != "" || outlookSyncTo != "":
		if outlookSyncFrom == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("--from is required when --to is specified")
		}
		from, err := time.ParseInLocation("2006-01-02", outlookSyncFrom, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from value %q: %w", outlookSyncFrom, err)
		}
		to := dayStart(now).AddDate(0, 0, 1)
		if outlookSyncTo != "" {
			t, err := time.ParseInLocation("2006-01-02", outlookSyncTo, now.Location())
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid --to value %q: %w", outlookSyncTo, err)
			}
			to = t.AddDate(0, 0, 1)
		}
		return from, to, nil
	default:
		return dayStart(now), dayStart(now).AddDate(0, 0, 1), nil
	}
}
