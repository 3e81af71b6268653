package reminder

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// DialogFlag is the hidden argv marker that makes the binary render a
// reminder dialog instead of the CLI.
const DialogFlag = "--reminder-dialog"

// InputFlag switches the dialog from a choice list to a free-text field.
const InputFlag = "--input"

// Sentinel choices surrounding the activity list in the reminder prompt.
const (
	StopChoice = "stop reminding me"
	NewChoice  = "enter a new activity"
)

// PromptResult classifies how a prompt ended.
type PromptResult int

const (
	// PromptAnswered means the user picked a choice or entered text.
	PromptAnswered PromptResult = iota
	// PromptCancelled means the user dismissed the prompt.
	PromptCancelled
	// PromptTimedOut means no response arrived before the deadline.
	PromptTimedOut
)

// Prompter asks the user something through the UI layer. Implementations
// must honor context cancellation by resolving as PromptTimedOut.
type Prompter interface {
	// Choose shows a selection list and returns the chosen entry.
	Choose(ctx context.Context, title string, choices []string) (string, PromptResult)
	// ReadText shows a single free-text field and returns its content.
	ReadText(ctx context.Context, title string) (string, PromptResult)
}

// ExecPrompter renders prompts by re-invoking the ts binary in dialog mode
// as a child process. The child prints the selection on stdout; a nonzero
// exit or empty output counts as cancelled, and the context deadline kills
// the child and counts as a timeout.
type ExecPrompter struct {
	Exe string
}

func (p ExecPrompter) Choose(ctx context.Context, title string, choices []string) (string, PromptResult) {
	args := append([]string{DialogFlag, title}, choices...)
	return p.run(ctx, args)
}

func (p ExecPrompter) ReadText(ctx context.Context, title string) (string, PromptResult) {
	return p.run(ctx, []string{DialogFlag, InputFlag, title})
}

func (p ExecPrompter) run(ctx context.Context, args []string) (string, PromptResult) {
	cmd := exec.CommandContext(ctx, p.Exe, args...)
	out, err := cmd.Output()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", PromptTimedOut
	}
	answer := strings.TrimSpace(string(out))
	if err != nil || answer == "" {
		return "", PromptCancelled
	}
	return answer, PromptAnswered
}
