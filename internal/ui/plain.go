package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/lazycommit/lazycommit/internal/models"
)

// Plain is the line-based presenter for terminals where the full-screen
// UI is unwanted, and for use from lazygit's command output. It prints
// the message and reads a single-letter choice.
type Plain struct {
	in  *bufio.Reader
	out io.Writer

	// copyFunc is swapped out in tests.
	copyFunc func(string) error
}

// NewPlain returns a presenter reading choices from in and writing to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{
		in:       bufio.NewReader(in),
		out:      out,
		copyFunc: clipboard.WriteAll,
	}
}

// Present prints the message and prompts until a valid choice arrives.
// EOF counts as quitting.
func (p *Plain) Present(snap models.Snapshot, message string) (Decision, error) {
	fmt.Fprintf(p.out, "Branch: %s\n", snap.Branch)
	fmt.Fprintln(p.out, "Staged files:")
	for _, f := range snap.Files {
		fmt.Fprintf(p.out, "  %-8s %s (+%d/-%d)\n", f.Status, f.Path, f.Added, f.Removed)
	}
	fmt.Fprintf(p.out, "\nCommit message:\n  %s\n\n", message)

	for {
		fmt.Fprint(p.out, "[a]ccept, [e]dit, [c]opy, [q]uit: ")
		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return Decision{Action: ActionQuit, Message: message}, nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a", "":
			return Decision{Action: ActionCommit, Message: message}, nil
		case "e":
			edited, err := p.readEdit(message)
			if err != nil {
				return Decision{}, err
			}
			message = edited
			fmt.Fprintf(p.out, "\nCommit message:\n  %s\n\n", message)
		case "c":
			if err := p.copyFunc(message); err != nil {
				fmt.Fprintf(p.out, "clipboard failed: %v\n", err)
				continue
			}
			return Decision{Action: ActionCopy, Message: message}, nil
		case "q":
			return Decision{Action: ActionQuit, Message: message}, nil
		default:
			fmt.Fprintln(p.out, "unknown choice")
		}
	}
}

func (p *Plain) readEdit(current string) (string, error) {
	fmt.Fprintf(p.out, "New message [%s]: ", current)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return current, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current, nil
	}
	return line, nil
}
