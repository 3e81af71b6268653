package reminder

import (
	"os"
	"os/exec"
	"time"
)

// DaemonFlag is the hidden argv marker that makes the binary run the
// reminder loop instead of the CLI.
const DaemonFlag = "--reminder-daemon"

// termGrace is how long a politely signaled daemon gets before escalation.
const termGrace = 150 * time.Millisecond

// StopDaemon terminates a running daemon recorded in the pid store. It sends
// a graceful signal, waits briefly, and escalates to a forceful one, then
// removes the pid record regardless of whether a process was found. A pid
// matching the caller's own is never signaled; this guards a daemon invoking
// its own stop path against pid reuse behind a stale file.
func StopDaemon(ps PidStore) {
	pid, ok := ps.Read()
	if ok && pid != os.Getpid() {
		if err := signalTerm(pid); err == nil {
			time.Sleep(termGrace)
			if pidRunning(pid) {
				_ = signalKill(pid)
			}
		}
	}
	_ = ps.Remove()
}

// Running reports whether the pid store names a live daemon process.
func Running(ps PidStore) bool {
	pid, ok := ps.Read()
	return ok && pidRunning(pid)
}

// StartDaemonIfNeeded spawns a detached daemon process unless one is already
// live. Spawn failures are swallowed; the reminder is a convenience and must
// never block the calling command.
func StartDaemonIfNeeded(ps PidStore) {
	if Running(ps) {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	cmd := exec.Command(exe, DaemonFlag)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	configureDaemonProc(cmd)
	if err := cmd.Start(); err != nil {
		return
	}
	// Let the child outlive us; its pid file is its own to manage.
	_ = cmd.Process.Release()
}
