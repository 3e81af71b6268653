package report

import (
	"fmt"
	"io"
)

// TimestampLayout is the human-readable timestamp used in command output.
const TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

// Render writes the plaintext report: one line per activity (descending
// percentage), seven weekday lines, and a total. Hour values are truncated,
// not rounded, and the total is the truncated sum of the truncated per-day
// values rather than the truncation of the exact sum.
func Render(w io.Writer, r Report) {
	for _, a := range r.Activities {
		fmt.Fprintf(w, "%.1f%%  %.2fh  %s\n", a.Percent, Trunc2(a.Hours), a.Activity)
	}
	var total float64
	for i, name := range DayNames {
		day := Trunc2(r.WeekdayHrs[i])
		total += day
		fmt.Fprintf(w, "%s  %.2f\n", name, day)
	}
	fmt.Fprintf(w, "Total  %.2f\n", Trunc2(total))
}

// FormatSession renders an elapsed session duration as "3h 21m", or "21m"
// when under an hour.
func FormatSession(seconds int64) string {
	mins := seconds / 60
	if h := mins / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}
