package timelog

import "time"

// Layout groups for explicit start/stop time arguments: fully dated forms,
// month/day forms that borrow the current year, and bare clock times placed
// on today's calendar day.
var (
	datedLayouts = []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"01/02/2006 15:04",
	}
	monthDayLayouts = []string{
		"01/02 15:04",
	}
	clockLayouts = []string{
		"15:04",
		"15:04:05",
		"3:04 PM",
		"3:04PM",
	}
)

// ParseTimeArg parses a user-supplied time string into a Unix epoch, trying
// several formats. A bare YYYY-MM-DD date means midnight. Reports ok=false
// when no format matches.
func ParseTimeArg(s string, now time.Time) (int64, bool) {
	loc := now.Location()
	for _, layout := range datedLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.Unix(), true
		}
	}
	for _, layout := range monthDayLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			t = time.Date(now.Year(), t.Month(), t.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, loc)
			return t.Unix(), true
		}
	}
	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			t = time.Date(now.Year(), now.Month(), now.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, loc)
			return t.Unix(), true
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t.Unix(), true
	}
	return 0, false
}
