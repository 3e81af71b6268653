package reminder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// PidStore records which process currently owns the reminder loop. Absence
// means no daemon is running.
type PidStore interface {
	// Read returns the recorded pid, or ok=false when no record exists or
	// it cannot be parsed.
	Read() (pid int, ok bool)
	// Write records the given pid.
	Write(pid int) error
	// Remove deletes the record. Removing a missing record is not an error.
	Remove() error
}

// FilePidStore keeps the pid as a single decimal line in a file.
type FilePidStore struct {
	Path string
}

func (s FilePidStore) Read() (int, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func (s FilePidStore) Write(pid int) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("creating pid directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(strconv.Itoa(pid)+"\n"), 0o600); err != nil {
		return fmt.Errorf("writing pid file: %w", err)
	}
	return nil
}

func (s FilePidStore) Remove() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing pid file: %w", err)
	}
	return nil
}
