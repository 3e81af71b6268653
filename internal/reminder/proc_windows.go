//go:build windows

package reminder

import (
	"os"
	"os/exec"
)

func configureDaemonProc(cmd *exec.Cmd) {
	// Windows has no Setsid; the default detachment is sufficient here.
}

func pidRunning(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// FindProcess succeeds for any pid on Unix but opens a handle on
	// Windows, so success means the process exists.
	p.Release()
	return true
}

func signalTerm(pid int) error {
	return signalKill(pid)
}

func signalKill(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	defer p.Release()
	return p.Kill()
}
