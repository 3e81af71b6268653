// Package dialog renders the reminder prompts as small terminal dialogs.
// The binary re-invokes itself in dialog mode; the selection is printed on
// stdout while the UI itself draws on the controlling terminal.
package dialog

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user dismisses a dialog without
// answering.
var ErrCancelled = errors.New("dialog cancelled")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(lipgloss.Color("#F9FAFB")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Choose shows a selection list and returns the chosen entry.
func Choose(title string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", ErrCancelled
	}
	m, err := run(choiceModel{title: title, choices: choices})
	if err != nil {
		return "", err
	}
	cm := m.(choiceModel)
	if cm.cancelled {
		return "", ErrCancelled
	}
	return cm.choices[cm.cursor], nil
}

// Input shows a single free-text field and returns the entered text.
func Input(title string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = "activity"
	ti.Focus()
	ti.CharLimit = 200
	m, err := run(inputModel{title: title, input: ti})
	if err != nil {
		return "", err
	}
	im := m.(inputModel)
	text := im.input.Value()
	if im.cancelled || text == "" {
		return "", ErrCancelled
	}
	return text, nil
}

// run executes a model against the controlling terminal. Input comes from
// /dev/tty because stdin is closed in dialog mode, and output goes to stderr
// so stdout stays clean for the answer.
func run(model tea.Model) (tea.Model, error) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	defer tty.Close()
	p := tea.NewProgram(model, tea.WithInput(tty), tea.WithOutput(os.Stderr))
	return p.Run()
}

type choiceModel struct {
	title     string
	choices   []string
	cursor    int
	cancelled bool
}

func (m choiceModel) Init() tea.Cmd { return nil }

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	s := titleStyle.Render(m.title) + "\n\n"
	for i, c := range m.choices {
		if i == m.cursor {
			s += selectedStyle.Render("> "+c) + "\n"
		} else {
			s += itemStyle.Render("  "+c) + "\n"
		}
	}
	s += "\n" + helpStyle.Render("enter select · esc cancel") + "\n"
	return s
}

type inputModel struct {
	title     string
	input     textinput.Model
	cancelled bool
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return titleStyle.Render(m.title) + "\n\n" + m.input.View() + "\n\n" +
		helpStyle.Render("enter confirm · esc cancel") + "\n"
}
