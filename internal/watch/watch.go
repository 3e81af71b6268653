// Package watch renders a live dashboard of the current week's report,
// refreshing whenever the timesheet changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/tsheet/ts/internal/report"
	"github.com/tsheet/ts/internal/timelog"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	activityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

type fileChangedMsg struct{}

type tickMsg time.Time

// Model is the dashboard state.
type Model struct {
	logPath string
	watcher *fsnotify.Watcher
	rep     report.Report
	current *timelog.Entry
	err     error
}

// New builds a dashboard for the given timesheet. The fsnotify watcher
// observes the containing directory because editors and rotation replace
// the file by rename.
func New(logPath string) (Model, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return Model{}, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(logPath)); err != nil {
		w.Close()
		return Model{}, fmt.Errorf("watching %s: %w", filepath.Dir(logPath), err)
	}
	m := Model{logPath: logPath, watcher: w}
	m.refresh()
	return m, nil
}

// Run displays the dashboard until the user quits.
func Run(logPath string) error {
	m, err := New(logPath)
	if err != nil {
		return err
	}
	defer m.watcher.Close()
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) refresh() {
	now := time.Now().Unix()
	lines := timelog.ReadAll(m.logPath)
	m.rep = report.Summarize(lines, &now)
	m.current = nil
	if e, ok := timelog.LastEntry(m.logPath); ok && e.Kind == timelog.Start {
		m.current = &e
	}
}

func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-m.watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) == filepath.Clean(m.logPath) {
					return fileChangedMsg{}
				}
			case err, ok := <-m.watcher.Errors:
				if !ok {
					return nil
				}
				return errMsg{err}
			}
		}
	}
}

type errMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			m.refresh()
		}
	case fileChangedMsg:
		m.refresh()
		return m, m.waitForChange()
	case tickMsg:
		m.refresh()
		return m, tick()
	case errMsg:
		m.err = msg.err
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("ts · this week") + "\n\n")

	if m.err != nil {
		b.WriteString(errStyle.Render("watch error: "+m.err.Error()) + "\n\n")
	}

	if len(m.rep.Activities) == 0 {
		b.WriteString(dayStyle.Render("no tracked time yet") + "\n")
	}
	for _, a := range m.rep.Activities {
		line := fmt.Sprintf("%5.1f%%  %6.2fh  %s", a.Percent, report.Trunc2(a.Hours), a.Activity)
		b.WriteString(activityStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	var total float64
	for i, name := range report.DayNames {
		hrs := report.Trunc2(m.rep.WeekdayHrs[i])
		total += hrs
		b.WriteString(dayStyle.Render(fmt.Sprintf("%-10s %6.2f", name, hrs)) + "\n")
	}
	b.WriteString(totalStyle.Render(fmt.Sprintf("%-10s %6.2f", "Total", report.Trunc2(total))) + "\n")

	if m.current != nil {
		b.WriteString("\n" + currentStyle.Render(fmt.Sprintf("▶ %s, started %s",
			m.current.Activity, time.Unix(m.current.Epoch, 0).Format(report.TimestampLayout))) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("r refresh · q quit") + "\n")
	return b.String()
}
