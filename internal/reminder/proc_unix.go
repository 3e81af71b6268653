//go:build !windows

package reminder

import (
	"os/exec"
	"syscall"
)

func configureDaemonProc(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}

// pidRunning reports whether a process with the given pid exists. Signal 0
// performs the permission and existence checks without delivering anything.
func pidRunning(pid int) bool {
	return syscall.Kill(pid, 0) == nil
}

func signalTerm(pid int) error {
	return syscall.Kill(pid, syscall.SIGTERM)
}

func signalKill(pid int) error {
	return syscall.Kill(pid, syscall.SIGKILL)
}
