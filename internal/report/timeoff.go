package report

import "github.com/tsheet/ts/internal/timelog"

// Worked totals sessions across the whole log for the 8 h/day average shown
// by the timeoff command. A trailing open Start is closed virtually at now.
// Days are counted whenever a session closes, even at zero duration, so a
// freshly started day still counts toward the average.
func Worked(lines []timelog.Line, now int64) (totalSecs int64, days int) {
	effective := lines
	if n := len(lines); n > 0 && lines[n-1].Entry.Kind == timelog.Start {
		effective = append(append([]timelog.Line(nil), lines...),
			timelog.Line{Num: lines[n-1].Num + 1, Entry: timelog.StopEntry(now)})
	}

	var stack []int64
	seen := make(map[int64]struct{})
	for _, l := range effective {
		switch l.Entry.Kind {
		case timelog.Start:
			if n := len(stack); n > 0 {
				start := stack[n-1]
				stack = stack[:n-1]
				if d := l.Entry.Epoch - start; d > 0 {
					totalSecs += d
				}
				seen[start/86400] = struct{}{}
			}
			stack = append(stack, l.Entry.Epoch)
		case timelog.Stop:
			if n := len(stack); n > 0 {
				start := stack[n-1]
				stack = stack[:n-1]
				if d := l.Entry.Epoch - start; d > 0 {
					totalSecs += d
				}
				seen[start/86400] = struct{}{}
			}
		}
	}
	return totalSecs, len(seen)
}
