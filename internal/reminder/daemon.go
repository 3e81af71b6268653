// Package reminder runs the background prompt loop that nags the user to
// keep the timesheet current, and controls its lifecycle from the CLI side.
package reminder

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsheet/ts/internal/interval"
	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

// PromptTitle is shown on every reminder dialog.
const PromptTitle = "What are you working on?"

// Daemon is the reminder loop. All collaborators are injected so the loop
// can be driven synchronously in tests.
type Daemon struct {
	LogPath       string
	Pids          PidStore
	Interval      interval.Store
	Prompter      Prompter
	PromptTimeout time.Duration

	// Sleep blocks for d or until ctx is done, reporting whether the full
	// duration elapsed. Nil uses a real timer.
	Sleep func(ctx context.Context, d time.Duration) bool
	// Now is the clock; nil uses time.Now.
	Now func() time.Time
}

// Run executes the reminder loop until the user stops it, a prompt times
// out, or the context is cancelled. A live daemon recorded in the pid store
// makes Run a no-op; "already running" is a normal outcome, not an error.
// The pid record is removed on every exit path, including termination
// signals.
func (d *Daemon) Run(ctx context.Context) error {
	if Running(d.Pids) {
		return nil
	}
	if err := d.Pids.Write(os.Getpid()); err != nil {
		return fmt.Errorf("recording daemon pid: %w", err)
	}
	defer func() {
		_ = d.Pids.Remove()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	skipSleep := false
	for {
		if !skipSleep {
			ivl := time.Duration(d.Interval.Get()) * time.Second
			d.debugf("sleeping %s", ivl)
			if !d.sleep(ctx, ivl) {
				return nil
			}
		}
		skipSleep = false

		choices := append([]string{StopChoice}, d.activitiesThisWeek()...)
		choices = append(choices, NewChoice)
		d.debugf("prompting with %d choices", len(choices))

		pctx, cancel := context.WithTimeout(ctx, d.PromptTimeout)
		answer, res := d.Prompter.Choose(pctx, PromptTitle, choices)
		cancel()

		switch res {
		case PromptTimedOut:
			d.debugf("prompt timed out, stopping tracking")
			d.recordStop()
			return nil
		case PromptCancelled:
			continue
		}

		switch answer {
		case StopChoice:
			d.debugf("user dismissed reminders")
			return nil
		case NewChoice:
			tctx, cancel := context.WithTimeout(ctx, d.PromptTimeout)
			text, tres := d.Prompter.ReadText(tctx, "Enter activity:")
			cancel()
			if tres == PromptAnswered && text != "" {
				d.recordStart(text)
				continue
			}
			// Cancelled text entry reopens the choice list right away
			// instead of waiting out another interval.
			skipSleep = true
		default:
			d.recordStart(answer)
		}
	}
}

func (d *Daemon) recordStart(activity string) {
	d.maybeRotate()
	if err := timelog.Append(d.LogPath, timelog.StartEntry(d.now().Unix(), activity)); err != nil {
		d.debugf("appending start entry: %v", err)
	}
}

// recordStop closes the open session at the current time, mirroring the stop
// command's behavior of leaving an already-stopped log untouched.
func (d *Daemon) recordStop() {
	d.maybeRotate()
	if e, ok := timelog.LastEntry(d.LogPath); ok && e.Kind == timelog.Stop {
		return
	}
	if err := timelog.Append(d.LogPath, timelog.StopEntry(d.now().Unix())); err != nil {
		d.debugf("appending stop entry: %v", err)
	}
}

// maybeRotate archives a prior week before the daemon mutates the log, the
// same lazy check every CLI mutation runs. A daemon spanning a Sunday
// boundary must not write the new week into last week's file.
func (d *Daemon) maybeRotate() {
	if err := rotate.MaybeRotate(d.LogPath, d.now()); err != nil {
		d.debugf("rotating timesheet: %v", err)
	}
}

// activitiesThisWeek returns the distinct activities started since the
// current week began, most recent first.
func (d *Daemon) activitiesThisWeek() []string {
	weekStart := rotate.WeekStart(d.now()).Unix()
	weekEnd := weekStart + 7*86400 - 1
	lines := timelog.ReadAll(d.LogPath)
	seen := make(map[string]bool)
	var out []string
	for i := len(lines) - 1; i >= 0; i-- {
		e := lines[i].Entry
		if e.Kind != timelog.Start || e.Epoch < weekStart || e.Epoch > weekEnd {
			continue
		}
		if !seen[e.Activity] {
			seen[e.Activity] = true
			out = append(out, e.Activity)
		}
	}
	return out
}

func (d *Daemon) sleep(ctx context.Context, dur time.Duration) bool {
	if d.Sleep != nil {
		return d.Sleep(ctx, dur)
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (d *Daemon) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Daemon) debugf(format string, args ...any) {
	if os.Getenv("TS_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "ts reminder: "+format+"\n", args...)
	}
}
