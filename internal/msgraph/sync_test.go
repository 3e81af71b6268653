package msgraph

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/tsheet/ts/internal/timelog"
)

func event(subject, start, end string) CalendarEvent {
	var e CalendarEvent
	e.Subject = subject
	e.ShowAs = "busy"
	e.Start.DateTime = start
	e.End.DateTime = end
	return e
}

func TestParseGraphTime(t *testing.T) {
	tests := []struct {
		in   string
		tz   string
		want time.Time
	}{
		{"2026-02-27T09:00:00Z", "", time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)},
		{"2026-02-27T09:00:00.0000000", "", time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)},
		{"2026-02-27T09:00:00", "", time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseGraphTime(tt.in, tt.tz)
		if err != nil {
			t.Errorf("parseGraphTime(%q): %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseGraphTime(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := parseGraphTime("yesterday at nine", ""); err == nil {
		t.Error("parseGraphTime accepted garbage")
	}
}

func TestParseGraphTimeHonorsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	got, err := parseGraphTime("2026-02-27T09:00:00.0000000", "Europe/Berlin")
	if err != nil {
		t.Fatalf("parseGraphTime: %v", err)
	}
	want := time.Date(2026, 2, 27, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("parseGraphTime = %v, want %v", got, want)
	}
}

func TestShouldSkip(t *testing.T) {
	ok := event("standup", "2026-02-27T09:00:00Z", "2026-02-27T09:15:00Z")
	if shouldSkip(ok) {
		t.Error("shouldSkip rejected a normal busy event")
	}

	cancelled := ok
	cancelled.IsCancelled = true
	allDay := ok
	allDay.IsAllDay = true
	private := ok
	private.Sensitivity = "private"
	free := ok
	free.ShowAs = "free"
	noTimes := ok
	noTimes.Start.DateTime = ""

	for name, e := range map[string]CalendarEvent{
		"cancelled": cancelled,
		"all day":   allDay,
		"private":   private,
		"free":      free,
		"no times":  noTimes,
	} {
		if !shouldSkip(e) {
			t.Errorf("shouldSkip accepted a %s event", name)
		}
	}
}

func TestSyncEventsImportsChronologically(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timesheet.log")
	events := []CalendarEvent{
		event("review", "2026-02-27T14:00:00Z", "2026-02-27T15:00:00Z"),
		event("standup", "2026-02-27T09:00:00Z", "2026-02-27T09:15:00Z"),
	}

	result, err := SyncEvents(events, SyncOptions{LogPath: logPath, Activity: "meetings"})
	if err != nil {
		t.Fatalf("SyncEvents: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 || result.Errors != 0 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}

	lines := timelog.ReadAll(logPath)
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4", len(lines))
	}
	if got := lines[0].Entry.Activity; got != "meetings: standup" {
		t.Errorf("first activity = %q, want meetings: standup", got)
	}
	if got := lines[2].Entry.Activity; got != "meetings: review" {
		t.Errorf("second activity = %q, want meetings: review", got)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].Entry.Epoch < lines[i-1].Entry.Epoch {
			t.Fatalf("entries out of order at line %d", i+1)
		}
	}
}

func TestSyncEventsSkipsOverlaps(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timesheet.log")
	start := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC).Unix()
	if err := timelog.Append(logPath, timelog.StartEntry(start, "coding")); err != nil {
		t.Fatal(err)
	}
	if err := timelog.Append(logPath, timelog.StopEntry(start+3600)); err != nil {
		t.Fatal(err)
	}

	events := []CalendarEvent{
		event("standup", "2026-02-27T09:30:00Z", "2026-02-27T09:45:00Z"),
		event("review", "2026-02-27T14:00:00Z", "2026-02-27T15:00:00Z"),
	}
	result, err := SyncEvents(events, SyncOptions{LogPath: logPath, Activity: "meetings"})
	if err != nil {
		t.Fatalf("SyncEvents: %v", err)
	}
	if result.Imported != 1 || result.Skipped != 1 {
		t.Errorf("result = %+v, want 1 imported, 1 skipped", result)
	}
}

func TestSyncEventsRefusesOpenStart(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timesheet.log")
	if err := timelog.Append(logPath, timelog.StartEntry(1000, "coding")); err != nil {
		t.Fatal(err)
	}

	events := []CalendarEvent{event("standup", "2026-02-27T09:00:00Z", "2026-02-27T09:15:00Z")}
	if _, err := SyncEvents(events, SyncOptions{LogPath: logPath, Activity: "meetings"}); err == nil {
		t.Fatal("SyncEvents succeeded on a log with an open start")
	}
	if lines := timelog.ReadAll(logPath); len(lines) != 1 {
		t.Errorf("len(lines) = %d, want 1 (nothing appended)", len(lines))
	}
}

func TestSyncEventsDryRunWritesNothing(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "timesheet.log")
	events := []CalendarEvent{event("standup", "2026-02-27T09:00:00Z", "2026-02-27T09:15:00Z")}

	result, err := SyncEvents(events, SyncOptions{LogPath: logPath, Activity: "meetings", DryRun: true})
	if err != nil {
		t.Fatalf("SyncEvents: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("result = %+v, want 1 imported", result)
	}
	if lines := timelog.ReadAll(logPath); len(lines) != 0 {
		t.Errorf("len(lines) = %d, want 0", len(lines))
	}
}

func TestEventActivity(t *testing.T) {
	e := event("standup", "", "")
	if got := eventActivity("meetings", e); got != "meetings: standup" {
		t.Errorf("eventActivity = %q, want meetings: standup", got)
	}
	e.Subject = ""
	if got := eventActivity("meetings", e); got != "meetings" {
		t.Errorf("eventActivity = %q, want meetings", got)
	}
}
