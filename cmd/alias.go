package cmd

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsheet/ts/internal/rotate"
	"github.com/tsheet/ts/internal/timelog"
)

var aliasCmd = &cobra.Command{
	Use:     "alias <pattern> <replacement>",
	Aliases: []string{"rename"},
	Short:   "Interactively rename matching activities in this week's entries",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runAlias,
}

// runAlias rewrites this week's START entries whose activity matches the
// pattern, asking per match. The whole file is rewritten once at the end so
// a declined match leaves its line untouched.
func runAlias(cmd *cobra.Command, args []string) error {
	_, logPath, err := timesheetPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(logPath); err != nil {
		return fmt.Errorf("ts alias: no timesheet data found")
	}

	pattern, replacement := args[0], args[1]
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	now := time.Now()
	weekStart := rotate.WeekStart(now).Unix()
	weekEnd := weekStart + 7*86400 - 1

	inWeek := func(e timelog.Entry) bool {
		return e.Kind == timelog.Start && e.Epoch >= weekStart && e.Epoch <= weekEnd
	}

	var matches []timelog.Line
	for _, l := range timelog.ReadAll(logPath) {
		if inWeek(l.Entry) && re.MatchString(l.Entry.Activity) {
			matches = append(matches, l)
		}
	}
	if len(matches) == 0 {
		return fmt.Errorf("ts alias: no activities matching %q found for this week", pattern)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("ts alias: %w", err)
	}
	raw := strings.Split(strings.TrimRight(string(content), "\n"), "\n")

	accepted := make(map[int]bool)
	in := bufio.NewScanner(os.Stdin)
	for _, m := range matches {
		replaced := timelog.StartEntry(m.Entry.Epoch, re.ReplaceAllString(m.Entry.Activity, replacement))
		fmt.Printf("Original: %s\n", raw[m.Num-1])
		fmt.Printf("Replaced: %s\n", replaced)
		fmt.Print("Replace (y/n) ")
		if in.Scan() && strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
			accepted[m.Num] = true
		}
	}
	if len(accepted) == 0 {
		return nil
	}

	var out strings.Builder
	for i, line := range raw {
		if accepted[i+1] {
			if e, ok := timelog.ParseLine(line); ok && inWeek(e) && re.MatchString(e.Activity) {
				fmt.Fprintln(&out, timelog.StartEntry(e.Epoch, re.ReplaceAllString(e.Activity, replacement)))
				continue
			}
		}
		fmt.Fprintln(&out, line)
	}
	if err := os.WriteFile(logPath, []byte(out.String()), 0o600); err != nil {
		return fmt.Errorf("ts alias: %w", err)
	}
	return nil
}
