// Package report aggregates parsed timesheet entries into per-activity and
// per-weekday totals.
package report

import (
	"sort"

	"github.com/tsheet/ts/internal/timelog"
)

// DayNames are the weekday labels for the report, Sunday first.
var DayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ActivityShare is one activity's slice of the grand total.
type ActivityShare struct {
	Activity string
	Percent  float64
	Hours    float64
}

// Report is the aggregate of a log: activity shares sorted by descending
// percentage, hours per weekday (Sunday..Saturday), and whether a Start was
// left unclosed after pairing. A virtual stop closes the trailing session,
// so InProgress is false in that case; callers that need "is the log
// tracking right now" should look at the last log entry instead.
type Report struct {
	Activities []ActivityShare
	WeekdayHrs [7]float64
	InProgress bool
	TotalSecs  int64
}

// Trunc2 truncates (not rounds) to two decimal places.
func Trunc2(h float64) float64 {
	return float64(int64(h*100)) / 100
}

// weekdayIndex maps a session-start epoch to a Sunday=0..Saturday=6 bucket.
// Day zero of the Unix epoch is a Thursday, hence the +4 alignment.
func weekdayIndex(epoch int64) int {
	days := epoch / 86400
	return int(((days+4)%7 + 7) % 7)
}

// Summarize pairs Start/Stop entries in LIFO order and accumulates session
// durations. A Start while another session is open closes the open session
// at the new Start's time, so a missing Stop cannot swallow the rest of the
// week. virtualStop, when non-nil, closes a trailing open session for
// reporting purposes only.
// Sessions with non-positive duration contribute nothing.
func Summarize(lines []timelog.Line, virtualStop *int64) Report {
	type open struct {
		epoch    int64
		activity string
	}
	var stack []open
	actSecs := make(map[string]int64)
	var r Report

	closeAt := func(o open, end int64) {
		dur := end - o.epoch
		if dur <= 0 {
			return
		}
		actSecs[o.activity] += dur
		r.WeekdayHrs[weekdayIndex(o.epoch)] += float64(dur) / 3600
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
	r.InProgress = len(stack) > 0

	for _, s := range actSecs {
		r.TotalSecs += s
	}
	for a, s := range actSecs {
		r.Activities = append(r.Activities, ActivityShare{
			Activity: a,
			Percent:  100 * float64(s) / float64(r.TotalSecs),
			Hours:    float64(s) / 3600,
		})
	}
	sort.SliceStable(r.Activities, func(i, j int) bool {
		return r.Activities[i].Percent > r.Activities[j].Percent
	})
	return r
}
