package timelog_test

import (
	"testing"

	"github.com/tsheet/ts/internal/timelog"
)

func TestParseLineStart(t *testing.T) {
	e, ok := timelog.ParseLine("START|1700000000|coding")
	if !ok {
		t.Fatal("ParseLine rejected a valid START line")
	}
	if e.Kind != timelog.Start || e.Epoch != 1700000000 || e.Activity != "coding" {
		t.Errorf("ParseLine = %+v, want Start 1700000000 coding", e)
	}
}

func TestParseLineActivityKeepsSeparators(t *testing.T) {
	e, ok := timelog.ParseLine("START|1700000000|ops|oncall|p1")
	if !ok {
		t.Fatal("ParseLine rejected START with separators in activity")
	}
	if e.Activity != "ops|oncall|p1" {
		t.Errorf("activity = %q, want %q", e.Activity, "ops|oncall|p1")
	}
}

func TestParseLineStop(t *testing.T) {
	e, ok := timelog.ParseLine("STOP|1700003600")
	if !ok {
		t.Fatal("ParseLine rejected a valid STOP line")
	}
	if e.Kind != timelog.Stop || e.Epoch != 1700003600 {
		t.Errorf("ParseLine = %+v, want Stop 1700003600", e)
	}
}

func TestParseLineTrimsWhitespace(t *testing.T) {
	if _, ok := timelog.ParseLine("  STOP|42  "); !ok {
		t.Error("ParseLine should accept surrounding whitespace")
	}
}

func TestParseLineRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"PAUSE|1700000000",
		"START|notanumber|x",
		"STOP|",
		"just some note",
	} {
		if _, ok := timelog.ParseLine(line); ok {
			t.Errorf("ParseLine(%q) accepted, want rejected", line)
		}
	}
}

func TestEntryString(t *testing.T) {
	if got := timelog.StartEntry(1000, "a|b").String(); got != "START|1000|a|b" {
		t.Errorf("StartEntry.String() = %q", got)
	}
	if got := timelog.StopEntry(2000).String(); got != "STOP|2000" {
		t.Errorf("StopEntry.String() = %q", got)
	}
}
