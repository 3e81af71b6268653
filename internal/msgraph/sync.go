package msgraph

import (
	"fmt"
	"sort"
	"time"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/timelog"
)

// SyncResult holds counters for a sync run.
type SyncResult struct {
	Imported int
	Skipped  int
	Errors   int
}

// SyncOptions configures a sync run.
type SyncOptions struct {
	LogPath  string
	Activity string
	Timezone string
	DryRun   bool
}

// parseGraphTime parses a Graph API dateTime string in the given timezone.
// Graph returns times like "2026-02-27T09:00:00.0000000" without a zone
// suffix when a Prefer: outlook.timezone header is set.
func parseGraphTime(dt, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}

// shouldSkip reports whether an event is not worth importing.
func shouldSkip(event CalendarEvent) bool {
	if event.IsCancelled || event.IsAllDay {
		return true
	}
	if event.Sensitivity == "private" {
		return true
	}
	if event.ShowAs == "free" {
		return true
	}
	return event.Start.DateTime == "" || event.End.DateTime == ""
}

func overlaps(sessions []report.Session, start, stop int64) bool {
	for _, s := range sessions {
		if start < s.Stop && s.Start < stop {
			return true
		}
	}
	return false
}

// eventActivity names the imported entry after the base activity plus the
// event subject when one exists.
func eventActivity(base string, event CalendarEvent) string {
	if event.Subject == "" {
		return base
	}
	return base + ": " + event.Subject
}

// SyncEvents appends each usable event to the timesheet as a start/stop
// pair. Events overlapping time already tracked are skipped so a re-run
// never duplicates sessions. Events are written in chronological order.
// A log ending on an open start refuses the import; the appended pairs
// would silently close the running session.
func SyncEvents(events []CalendarEvent, opts SyncOptions) (SyncResult, error) {
	var result SyncResult
	if e, ok := timelog.LastEntry(opts.LogPath); ok && e.Kind == timelog.Start {
		return result, fmt.Errorf("tracking is in progress; run stop before syncing")
	}
	existing := report.Sessions(timelog.ReadAll(opts.LogPath), nil)

	type candidate struct {
		start, stop int64
		subject     string
		activity    string
	}
	var toImport []candidate
	for _, event := range events {
		if shouldSkip(event) {
			continue
		}
		startTime, err := parseGraphTime(event.Start.DateTime, opts.Timezone)
		if err != nil {
			fmt.Printf("  ! Error on event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}
		endTime, err := parseGraphTime(event.End.DateTime, opts.Timezone)
		if err != nil {
			fmt.Printf("  ! Error on event %q: %v\n", event.Subject, err)
			result.Errors++
			continue
		}
		start, stop := startTime.Unix(), endTime.Unix()
		if stop <= start {
			continue
		}
		if overlaps(existing, start, stop) {
			fmt.Printf("  - Skipped:  %s (overlaps tracked time)\n", event.Subject)
			result.Skipped++
			continue
		}
		toImport = append(toImport, candidate{start, stop, event.Subject, eventActivity(opts.Activity, event)})
	}

	sort.Slice(toImport, func(i, j int) bool { return toImport[i].start < toImport[j].start })

	for _, c := range toImport {
		if !opts.DryRun {
			if err := timelog.Append(opts.LogPath, timelog.StartEntry(c.start, c.activity)); err != nil {
				return result, fmt.Errorf("appending imported start: %w", err)
			}
			if err := timelog.Append(opts.LogPath, timelog.StopEntry(c.stop)); err != nil {
				return result, fmt.Errorf("appending imported stop: %w", err)
			}
		}
		dur := time.Duration(c.stop-c.start) * time.Second
		fmt.Printf("  + Imported: %s (%s)\n", c.subject, dur)
		result.Imported++
	}

	return result, nil
}
