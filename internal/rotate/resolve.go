package rotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tsheet/ts/internal/timelog"
)

// Resolve maps the optional list argument to a single timesheet file.
//
//   - empty or "log"  -> the active log
//   - an existing path -> that path
//   - otherwise        -> match archived siblings by extension; date-like
//     arguments (YYMMDD, YYYYMMDD, M/D) additionally fall back to the
//     archive whose entry range contains the requested day, then to the
//     archive stamped on or after it.
//
// Zero or multiple matches are user errors; no default is guessed.
func Resolve(arg, logPath string, now time.Time) (string, error) {
	if arg == "" || arg == "log" {
		return logPath, nil
	}
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	candidates := archiveCandidates(logPath)
	norm := normalizeDateArg(arg, now)

	var matches []string
	for _, p := range candidates {
		suffix := extension(p)
		if arg == suffix || strings.Contains(suffix, arg) || strings.Contains(arg, suffix) ||
			(norm != "" && norm == suffix) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("multiple timesheets match %q: %s",
			arg, strings.Join(matches, ", "))
	}

	if want, ok := stampToDate(norm); ok {
		if p, ok := resolveByContent(candidates, want); ok {
			return p, nil
		}
		if p, ok := resolveByStamp(candidates, want); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("no timesheet matches %q", arg)
}

// archiveCandidates lists the active log plus its dated siblings.
func archiveCandidates(logPath string) []string {
	var out []string
	if _, err := os.Stat(logPath); err == nil {
		out = append(out, logPath)
	}
	dir := filepath.Dir(logPath)
	prefix := Stem(logPath) + "."
	base := filepath.Base(logPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return out
	}
	for _, e := range entries {
		name := e.Name()
		if name == base || !strings.HasPrefix(name, prefix) {
			continue
		}
		if rest := name[len(prefix):]; rest == "" || rest[0] < '0' || rest[0] > '9' {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out
}

func extension(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return "log"
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}

// normalizeDateArg reduces a date-like argument to YYMMDD form, or "".
func normalizeDateArg(arg string, now time.Time) string {
	switch {
	case len(arg) == 8 && allDigits(arg):
		return arg[2:]
	case len(arg) == 6 && allDigits(arg):
		return arg
	case strings.Contains(arg, "/"):
		mStr, dStr, _ := strings.Cut(arg, "/")
		m, errM := strconv.Atoi(mStr)
		d, errD := strconv.Atoi(dStr)
		if errM != nil || errD != nil {
			return ""
		}
		return fmt.Sprintf("%s%02d%02d", now.Format("06"), m, d)
	}
	return ""
}

// stampToDate converts a YYMMDD stamp to a date (years 2000..2099).
func stampToDate(stamp string) (time.Time, bool) {
	if len(stamp) != 6 || !allDigits(stamp) {
		return time.Time{}, false
	}
	yy, _ := strconv.Atoi(stamp[0:2])
	mm, _ := strconv.Atoi(stamp[2:4])
	dd, _ := strconv.Atoi(stamp[4:6])
	if mm < 1 || mm > 12 || dd < 1 || dd > 31 {
		return time.Time{}, false
	}
	return time.Date(2000+yy, time.Month(mm), dd, 0, 0, 0, 0, time.Local), true
}

func localDay(epoch int64) time.Time {
	t := time.Unix(epoch, 0).Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// resolveByContent finds the archive whose entry date range contains the
// requested day; a later log may still hold entries for it. The requested
// month/day is also tried in the adjacent years; the file with the smallest
// maximum date wins (the log that was current as of that day).
func resolveByContent(candidates []string, want time.Time) (string, bool) {
	tries := []time.Time{
		want,
		want.AddDate(-1, 0, 0),
		want.AddDate(1, 0, 0),
	}
	type hit struct {
		path     string
		maxDay   time.Time
		priority int
	}
	var hits []hit
	for _, p := range candidates {
		minE, maxE, ok := timelog.EpochRange(p)
		if !ok {
			continue
		}
		minDay, maxDay := localDay(minE), localDay(maxE)
		for prio, d := range tries {
			if !d.Before(minDay) && !d.After(maxDay) {
				hits = append(hits, hit{path: p, maxDay: maxDay, priority: prio})
				break
			}
		}
	}
	if len(hits) == 0 {
		return "", false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h.priority < best.priority ||
			(h.priority == best.priority && h.maxDay.Before(best.maxDay)) {
			best = h
		}
	}
	return best.path, true
}

// resolveByStamp falls back to the archive whose extension stamp is the
// earliest on or after the requested day (the log that was current then).
func resolveByStamp(candidates []string, want time.Time) (string, bool) {
	var bestPath string
	var bestDate time.Time
	for _, p := range candidates {
		d, ok := stampToDate(extension(p))
		if !ok || d.Before(want) {
			continue
		}
		if bestPath == "" || d.Before(bestDate) {
			bestPath, bestDate = p, d
		}
	}
	return bestPath, bestPath != ""
}
