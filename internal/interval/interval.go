// Package interval persists the reminder interval as a small side file and
// parses the human duration grammar used to set it.
package interval

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Default is the reminder interval in seconds when no valid value is stored.
const Default = 300

// Store reads and writes the reminder interval. The daemon re-reads it every
// cycle, so a change takes effect on the next sleep.
type Store interface {
	// Get returns the interval in seconds; any read or parse failure
	// yields the default.
	Get() int64
	// Set persists a positive interval in seconds.
	Set(secs int64) error
}

// FileStore keeps the interval as a decimal string in a single file.
type FileStore struct {
	Path string
}

func (s FileStore) Get() int64 {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Default
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || secs <= 0 {
		return Default
	}
	return secs
}

func (s FileStore) Set(secs int64) error {
	if secs <= 0 {
		return errors.New("interval must be positive")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("creating interval directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(strconv.FormatInt(secs, 10)), 0o600); err != nil {
		return fmt.Errorf("writing interval: %w", err)
	}
	return nil
}

// ParseDuration parses a duration string into seconds. Tokens are
// <number><unit> with unit h, m, or s (case-insensitive); a number without a
// unit counts as minutes; multiple tokens sum ("1h30m" -> 5400). An empty
// string or a zero total is an error.
func ParseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("interval cannot be empty")
	}
	var total int64
	for i := 0; i < len(s); {
		for i < len(s) && !isDigit(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		num, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number in interval: %s", s)
		}
		unit := byte('m')
		if i < len(s) {
			switch s[i] {
			case 'h', 'H', 'm', 'M', 's', 'S':
				unit = s[i]
				i++
			}
		}
		switch unit {
		case 'h', 'H':
			total += num * 3600
		case 's', 'S':
			total += num
		default:
			total += num * 60
		}
	}
	if total == 0 {
		return 0, errors.New("interval must be positive")
	}
	return total, nil
}

// Format renders seconds in the most compact whole unit ("2h", "90m", "45s").
func Format(secs int64) string {
	switch {
	case secs >= 3600 && secs%3600 == 0:
		return fmt.Sprintf("%dh", secs/3600)
	case secs >= 60 && secs%60 == 0:
		return fmt.Sprintf("%dm", secs/60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
