package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/tsheet/ts/cmd"
	"github.com/tsheet/ts/internal/config"
	"github.com/tsheet/ts/internal/dialog"
	"github.com/tsheet/ts/internal/interval"
	"github.com/tsheet/ts/internal/reminder"
)

func main() {
	// The daemon and its dialogs are the same binary re-invoked with
	// hidden markers, dispatched before cobra sees the arguments.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case reminder.DaemonFlag:
			runDaemon()
			return
		case reminder.DialogFlag:
			os.Exit(runDialog(os.Args[2:]))
		}
	}
	cmd.Execute()
}

// runDaemon wires the reminder loop to its on-disk stores. Failures exit
// silently; a missing reminder must never surface as a broken command.
func runDaemon() {
	cfg, _ := config.Load()
	logPath, err := cfg.TimesheetPath()
	if err != nil {
		return
	}
	pidPath, err := config.PidPath()
	if err != nil {
		return
	}
	ivlPath, err := config.IntervalPath()
	if err != nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	d := &reminder.Daemon{
		LogPath:       logPath,
		Pids:          reminder.FilePidStore{Path: pidPath},
		Interval:      interval.FileStore{Path: ivlPath},
		Prompter:      reminder.ExecPrompter{Exe: exe},
		PromptTimeout: time.Duration(cfg.PromptTimeoutSecs) * time.Second,
	}
	_ = d.Run(context.Background())
}

// runDialog renders one prompt and prints the answer on stdout.
func runDialog(args []string) int {
	var answer string
	var err error
	switch {
	case len(args) >= 2 && args[0] == reminder.InputFlag:
		answer, err = dialog.Input(args[1])
	case len(args) >= 2:
		answer, err = dialog.Choose(args[0], args[1:])
	default:
		return 1
	}
	if err != nil {
		return 1
	}
	fmt.Println(answer)
	return 0
}
