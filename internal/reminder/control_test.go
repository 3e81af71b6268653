package reminder_test

import (
	"os"
	"testing"

	"github.com/tsheet/ts/internal/reminder"
)

func TestStopDaemonSelfPidOnlyRemovesRecord(t *testing.T) {
	// A stale pid file naming our own process must not be signaled, but
	// the record still goes away.
	pids := &memPids{}
	if err := pids.Write(os.Getpid()); err != nil {
		t.Fatal(err)
	}
	reminder.StopDaemon(pids)
	if pids.has {
		t.Error("pid record not removed")
	}
}

func TestStopDaemonNoRecord(t *testing.T) {
	pids := &memPids{}
	reminder.StopDaemon(pids)
	if pids.has {
		t.Error("pid record appeared out of nowhere")
	}
}

func TestRunning(t *testing.T) {
	pids := &memPids{}
	if reminder.Running(pids) {
		t.Error("Running = true with no record")
	}
	if err := pids.Write(os.Getpid()); err != nil {
		t.Fatal(err)
	}
	if !reminder.Running(pids) {
		t.Error("Running = false for a live pid")
	}
}
