// Package rotate archives the active timesheet log to dated sibling files
// and lazily triggers that archival when a week boundary has passed.
package rotate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tsheet/ts/internal/timelog"
)

// ErrNoData is returned when there is no log file to rotate.
var ErrNoData = errors.New("no timesheet data found")

// WeekStart returns local midnight of the most recent Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	t = t.AddDate(0, 0, -int(t.Weekday()))
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Stem returns the log's filename without its extension suffix
// ("timesheet.log" -> "timesheet").
func Stem(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}

// Rotate archives the log to `<stem>.<YYMMDD>` beside it, stamping with the
// maximum epoch found in the content (local time). An open trailing Start is
// closed with a synthetic Stop at now first. When the dated file already
// exists the whole current log is appended to it and the source removed;
// otherwise the source is renamed. Returns the destination path and whether
// the contents were merged into an existing file.
func Rotate(path string, now time.Time) (dest string, merged bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		return "", false, ErrNoData
	}
	if last, ok := timelog.LastEntry(path); ok && last.Kind == timelog.Start {
		if err := timelog.Append(path, timelog.StopEntry(now.Unix())); err != nil {
			return "", false, err
		}
	}
	max, ok := timelog.MaxEpoch(path)
	if !ok {
		return "", false, errors.New("no valid entries in timesheet")
	}
	stamp := time.Unix(max, 0).In(now.Location()).Format("060102")
	dest = filepath.Join(filepath.Dir(path), Stem(path)+"."+stamp)

	if _, statErr := os.Stat(dest); statErr == nil {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return "", false, fmt.Errorf("reading log for rotation: %w", readErr)
		}
		f, openErr := os.OpenFile(dest, os.O_APPEND|os.O_WRONLY, 0o600)
		if openErr != nil {
			return "", false, fmt.Errorf("opening %s: %w", dest, openErr)
		}
		_, writeErr := f.Write(content)
		closeErr := f.Close()
		if writeErr != nil {
			return "", false, fmt.Errorf("appending to %s: %w", dest, writeErr)
		}
		if closeErr != nil {
			return "", false, fmt.Errorf("closing %s: %w", dest, closeErr)
		}
		if err := os.Remove(path); err != nil {
			return "", false, fmt.Errorf("removing rotated log: %w", err)
		}
		return dest, true, nil
	}
	if err := os.Rename(path, dest); err != nil {
		return "", false, fmt.Errorf("renaming log: %w", err)
	}
	return dest, false, nil
}

// MaybeRotate rotates the log when its last entry predates the current
// week's Sunday 00:00 local. Called at the top of every mutating command;
// crossing a week boundary archives the prior week on next use, so no
// background timer is needed. A missing or unparsable log is a no-op.
func MaybeRotate(path string, now time.Time) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	last, ok := timelog.LastEpoch(path)
	if !ok {
		return nil
	}
	if last < WeekStart(now).Unix() {
		_, _, err := Rotate(path, now)
		return err
	}
	return nil
}
