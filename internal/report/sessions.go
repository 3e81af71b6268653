package report

import (
	"sort"

	"github.com/tsheet/ts/internal/timelog"
)

// Session is one closed (start, stop) pair derived from the log.
type Session struct {
	Start    int64
	Stop     int64
	Activity string
}

// Sessions pairs Start/Stop entries the same way Summarize does and returns
// the closed sessions ordered by start time. virtualStop, when non-nil,
// closes a trailing open Start. Degenerate sessions (stop <= start) are
// kept; callers filter as needed.
func Sessions(lines []timelog.Line, virtualStop *int64) []Session {
	type open struct {
		epoch    int64
		activity string
	}
	var stack []open
	var out []Session

	closeAt := func(o open, end int64) {
		out = append(out, Session{Start: o.epoch, Stop: end, Activity: o.activity})
	}
	pop := func() (open, bool) {
		if len(stack) == 0 {
			return open{}, false
		}
		o := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return o, true
	}

	for _, l := range lines {
		switch l.Entry.Kind {
		case timelog.Start:
			if o, ok := pop(); ok {
				closeAt(o, l.Entry.Epoch)
			}
			stack = append(stack, open{epoch: l.Entry.Epoch, activity: l.Entry.Activity})
		case timelog.Stop:
			if o, ok := pop(); ok {
				closeAt(o, l.Entry.Epoch)
			}
		}
	}
	if virtualStop != nil {
		if o, ok := pop(); ok {
			closeAt(o, *virtualStop)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
