package rotate_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

func TestWeekStart(t *testing.T) {
	// 2026-02-18 is a Wednesday; its week starts Sunday 2026-02-15.
	wed := time.Date(2026, 2, 18, 13, 45, 0, 0, time.Local)
	got := rotate.WeekStart(wed)
	want := time.Date(2026, 2, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("WeekStart = %v, want %v", got, want)
	}
	// A Sunday is its own week start.
	if got := rotate.WeekStart(want.Add(5 * time.Hour)); !got.Equal(want) {
		t.Errorf("WeekStart on Sunday = %v, want %v", got, want)
	}
}

func TestStem(t *testing.T) {
	if got := rotate.Stem("/home/u/Documents/timesheet.log"); got != "timesheet" {
		t.Errorf("Stem = %q, want timesheet", got)
	}
	if got := rotate.Stem("noext"); got != "noext" {
		t.Errorf("Stem = %q, want noext", got)
	}
}

func TestRotateRenames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timesheet.log")
	max := time.Date(2026, 2, 13, 17, 0, 0, 0, time.Local)
	content := "START|" + epochStr(max.Add(-time.Hour)) + "|coding\nSTOP|" + epochStr(max) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	dest, merged, err := rotate.Rotate(path, time.Now())
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if merged {
		t.Error("merged = true, want rename")
	}
	if want := filepath.Join(dir, "timesheet.260213"); dest != want {
		t.Errorf("dest = %q, want %q", dest, want)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("source still exists after rotation")
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading archive: %v", err)
	}
	if string(data) != content {
		t.Errorf("archive content = %q, want %q", string(data), content)
	}
}

func TestRotateAppendsSyntheticStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timesheet.log")
	start := time.Date(2026, 2, 13, 9, 0, 0, 0, time.Local)
	if err := os.WriteFile(path, []byte("START|"+epochStr(start)+"|coding\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	now := start.Add(2 * time.Hour)
	dest, _, err := rotate.Rotate(path, now)
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	data, _ := os.ReadFile(dest)
	if !strings.Contains(string(data), "STOP|"+epochStr(now)) {
		t.Errorf("archive missing synthetic stop:\n%s", string(data))
	}
	// The stamp comes from the synthetic stop, the new maximum epoch.
	if !strings.HasSuffix(dest, ".260213") {
		t.Errorf("dest = %q, want .260213 suffix", dest)
	}
}

func TestRotateMergesIntoExistingArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timesheet.log")
	max := time.Date(2026, 2, 13, 17, 0, 0, 0, time.Local)
	archive := filepath.Join(dir, "timesheet.260213")

	if err := os.WriteFile(archive, []byte("START|100|old\nSTOP|200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	newContent := "START|" + epochStr(max.Add(-time.Hour)) + "|new\nSTOP|" + epochStr(max) + "\n"
	if err := os.WriteFile(path, []byte(newContent), 0o600); err != nil {
		t.Fatal(err)
	}

	dest, merged, err := rotate.Rotate(path, time.Now())
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	if !merged || dest != archive {
		t.Errorf("merged=%v dest=%q, want merge into %q", merged, dest, archive)
	}
	data, _ := os.ReadFile(archive)
	if !strings.HasPrefix(string(data), "START|100|old\n") || !strings.Contains(string(data), "|new\n") {
		t.Errorf("merged archive content:\n%s", string(data))
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("source still exists after merge")
	}
}

func TestRotateNoFile(t *testing.T) {
	_, _, err := rotate.Rotate(filepath.Join(t.TempDir(), "absent.log"), time.Now())
	if !errors.Is(err, rotate.ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestRotateNoValidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timesheet.log")
	if err := os.WriteFile(path, []byte("nonsense\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := rotate.Rotate(path, time.Now()); err == nil {
		t.Error("Rotate on log without valid entries succeeded")
	}
}

func TestMaybeRotateOnlyPastWeeks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timesheet.log")
	now := time.Date(2026, 2, 18, 12, 0, 0, 0, time.Local)

	// Entry inside the current week stays put.
	recent := time.Date(2026, 2, 16, 9, 0, 0, 0, time.Local)
	if err := timelog.Append(path, timelog.StartEntry(recent.Unix(), "a")); err != nil {
		t.Fatal(err)
	}
	if err := timelog.Append(path, timelog.StopEntry(recent.Add(time.Hour).Unix())); err != nil {
		t.Fatal(err)
	}
	if err := rotate.MaybeRotate(path, now); err != nil {
		t.Fatalf("MaybeRotate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("current-week log was rotated away")
	}

	// An entry from the previous week triggers rotation.
	old := filepath.Join(dir, "old.log")
	lastWeek := time.Date(2026, 2, 13, 17, 0, 0, 0, time.Local)
	if err := timelog.Append(old, timelog.StopEntry(lastWeek.Unix())); err != nil {
		t.Fatal(err)
	}
	if err := rotate.MaybeRotate(old, now); err != nil {
		t.Fatalf("MaybeRotate: %v", err)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("previous-week log was not rotated")
	}
}

func TestMaybeRotateMissingFile(t *testing.T) {
	if err := rotate.MaybeRotate(filepath.Join(t.TempDir(), "absent.log"), time.Now()); err != nil {
		t.Errorf("MaybeRotate on missing file: %v", err)
	}
}

func epochStr(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
