package timelog

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the two record forms in the timesheet log.
type Kind int

const (
	// Start marks the beginning of a work session.
	Start Kind = iota
	// Stop marks the end of the most recently started session.
	Stop
)

// Entry is a single parsed START or STOP record.
type Entry struct {
	Kind     Kind
	Epoch    int64
	Activity string // empty for Stop entries
}

// StartEntry builds a Start entry.
func StartEntry(epoch int64, activity string) Entry {
	return Entry{Kind: Start, Epoch: epoch, Activity: activity}
}

// StopEntry builds a Stop entry.
func StopEntry(epoch int64) Entry {
	return Entry{Kind: Stop, Epoch: epoch}
}

// String serializes the entry in log-line form (without trailing newline).
func (e Entry) String() string {
	if e.Kind == Start {
		return fmt.Sprintf("START|%d|%s", e.Epoch, e.Activity)
	}
	return fmt.Sprintf("STOP|%d", e.Epoch)
}

// ParseLine parses one log line. The line is trimmed first; the activity is
// everything after the second separator, verbatim (it may itself contain the
// separator). Returns ok=false for blank lines and anything that is not a
// START/STOP record; unrecognized content is filtered, not an error.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if rest, found := strings.CutPrefix(line, "START|"); found {
		epochField, activity, _ := strings.Cut(rest, "|")
		epoch, err := strconv.ParseInt(strings.TrimSpace(epochField), 10, 64)
		if err != nil {
			return Entry{}, false
		}
		return StartEntry(epoch, activity), true
	}
	if rest, found := strings.CutPrefix(line, "STOP|"); found {
		epoch, err := strconv.ParseInt(strings.TrimSpace(rest), 10, 64)
		if err != nil {
			return Entry{}, false
		}
		return StopEntry(epoch), true
	}
	return Entry{}, false
}
