package report_test

import (
	"testing"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/timelog"
)

func TestWorkedTotalsAndDays(t *testing.T) {
	day := int64(86400)
	total, days := report.Worked(lines(
		timelog.StartEntry(10*day, "a"),
		timelog.StopEntry(10*day+4*3600),
		timelog.StartEntry(11*day, "b"),
		timelog.StopEntry(11*day+2*3600),
	), 12*day)
	if total != 6*3600 {
		t.Errorf("total = %d, want %d", total, 6*3600)
	}
	if days != 2 {
		t.Errorf("days = %d, want 2", days)
	}
}

func TestWorkedCountsFreshDayAtZeroDuration(t *testing.T) {
	// A just-started session closes virtually at now with zero duration;
	// the day still counts toward the average.
	now := int64(10 * 86400)
	total, days := report.Worked(lines(timelog.StartEntry(now, "a")), now)
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if days != 1 {
		t.Errorf("days = %d, want 1", days)
	}
}

func TestWorkedOpenSessionClosedAtNow(t *testing.T) {
	start := int64(10 * 86400)
	total, days := report.Worked(lines(timelog.StartEntry(start, "a")), start+3*3600)
	if total != 3*3600 {
		t.Errorf("total = %d, want %d", total, 3*3600)
	}
	if days != 1 {
		t.Errorf("days = %d, want 1", days)
	}
}

func TestWorkedEmptyLog(t *testing.T) {
	total, days := report.Worked(nil, 1000)
	if total != 0 || days != 0 {
		t.Errorf("Worked(nil) = %d, %d, want 0, 0", total, days)
	}
}
