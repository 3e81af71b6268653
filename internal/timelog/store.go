package timelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Line pairs a parsed entry with its 1-based line number in the file, so
// callers that rewrite specific lines (e.g. the alias tool) can target them.
type Line struct {
	Num   int
	Entry Entry
}

// Append serializes the entry with a trailing newline and appends it to the
// log, creating the file and any parent directories as needed. Unlike reads,
// append failures propagate to the caller.
func Append(path string, e Entry) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening log for append: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(e.String() + "\n"); err != nil {
		return fmt.Errorf("appending log entry: %w", err)
	}
	return nil
}

// ReadAll parses the whole log, skipping lines that are not START/STOP
// records while preserving original order and line numbers. Any read failure
// yields no data rather than an error.
func ReadAll(path string) []Line {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var lines []Line
	for i, raw := range strings.Split(string(data), "\n") {
		if e, ok := ParseLine(raw); ok {
			lines = append(lines, Line{Num: i + 1, Entry: e})
		}
	}
	return lines
}

// LastEntry returns the parsed last non-blank line of the log. It reports
// ok=false when the file is missing, empty, or its last non-blank line is
// not a valid record; it does not scan further back.
func LastEntry(path string) (Entry, bool) {
	raw, ok := lastRawLine(path)
	if !ok {
		return Entry{}, false
	}
	return ParseLine(raw)
}

// LastEpoch returns the epoch of the last entry, per LastEntry semantics.
func LastEpoch(path string) (int64, bool) {
	e, ok := LastEntry(path)
	if !ok {
		return 0, false
	}
	return e.Epoch, true
}

// MaxEpoch returns the maximum epoch across all valid entries.
func MaxEpoch(path string) (int64, bool) {
	var max int64
	for _, l := range ReadAll(path) {
		if l.Entry.Epoch > max {
			max = l.Entry.Epoch
		}
	}
	if max == 0 {
		return 0, false
	}
	return max, true
}

// EpochRange returns the minimum and maximum epoch across all valid entries.
func EpochRange(path string) (min, max int64, ok bool) {
	for _, l := range ReadAll(path) {
		e := l.Entry.Epoch
		if !ok || e < min {
			min = e
		}
		if !ok || e > max {
			max = e
		}
		ok = true
	}
	return min, max, ok
}

// ReplaceLast drops the last line of the log and writes the given entry in
// its place. This is a whole-file rewrite, used only by the amend operations
// (stop-amend, started-replace); it is not guarded against concurrent
// appends.
func ReplaceLast(path string, e Entry) error {
	return rewriteTail(path, e.String()+"\n")
}

// InsertBeforeLast writes the given entry immediately before the last line
// of the log, keeping the last line in place (whole-file rewrite).
func InsertBeforeLast(path string, e Entry) error {
	raw, ok := lastRawLine(path)
	if !ok {
		return Append(path, e)
	}
	return rewriteTail(path, e.String()+"\n"+raw+"\n")
}

// lastRawLine returns the last non-blank line of the file, verbatim.
func lastRawLine(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	lines := strings.Split(string(data), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return lines[i], true
		}
	}
	return "", false
}

// rewriteTail replaces the final line of the file with tail.
func rewriteTail(path, tail string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading log: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")
	lines := strings.Split(content, "\n")
	var head string
	if len(lines) > 1 {
		head = strings.Join(lines[:len(lines)-1], "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(head+tail), 0o600); err != nil {
		return fmt.Errorf("rewriting log: %w", err)
	}
	return nil
}
