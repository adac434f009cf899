package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lazycommit/lazycommit/internal/models"
)

// TUI is the full-screen presenter built on tview. It shows the message,
// the branch and the staged files, and reacts to single-key actions:
// a accepts, e edits inline, c copies, q quits.
type TUI struct {
	app     *tview.Application
	message *tview.TextArea
	status  *tview.TextView

	editing  bool
	decision Decision
}

// NewTUI returns a ready-to-run terminal presenter.
func NewTUI() *TUI {
	return &TUI{app: tview.NewApplication()}
}

const actionHelp = "[yellow]a[white] commit  [yellow]e[white] edit  [yellow]c[white] copy  [yellow]q[white] quit"
const editHelp = "[yellow]Esc[white] finish editing"

// Present runs the UI until the user picks an action.
func (t *TUI) Present(snap models.Snapshot, message string) (Decision, error) {
	t.decision = Decision{Action: ActionQuit, Message: message}

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetText("lazycommit").
		SetTextColor(tcell.ColorYellow)

	t.message = tview.NewTextArea().SetText(message, false)
	t.message.SetBorder(true)
	t.message.SetTitle("Commit Message")
	t.message.SetTitleColor(tcell.ColorGreen)

	info := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetText(describeSnapshot(snap))
	info.SetBorder(true)
	info.SetTitle("Staged Changes")
	info.SetTitleColor(tcell.ColorBlue)

	t.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText(actionHelp)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 1, false).
		AddItem(t.message, 5, 1, true).
		AddItem(info, 0, 1, false).
		AddItem(t.status, 1, 1, false)

	t.app.SetInputCapture(t.handleKey)

	if err := t.app.SetRoot(flex, true).SetFocus(t.message).Run(); err != nil {
		return Decision{}, fmt.Errorf("failed to run terminal ui: %v", err)
	}
	return t.decision, nil
}

func (t *TUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if t.editing {
		if event.Key() == tcell.KeyEscape {
			t.editing = false
			t.status.SetText(actionHelp)
			return nil
		}
		// Everything else goes to the text area.
		return event
	}
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.stop(ActionQuit)
		return nil
	}
	switch event.Rune() {
	case 'a':
		t.stop(ActionCommit)
	case 'e':
		t.editing = true
		t.status.SetText(editHelp)
	case 'c':
		if err := clipboard.WriteAll(t.message.GetText()); err != nil {
			t.status.SetText(fmt.Sprintf("[red]clipboard failed: %v[white]", err))
			return nil
		}
		t.stop(ActionCopy)
	case 'q':
		t.stop(ActionQuit)
	}
	return nil
}

func (t *TUI) stop(action Action) {
	t.decision = Decision{Action: action, Message: t.message.GetText()}
	t.app.Stop()
}

func describeSnapshot(snap models.Snapshot) string {
	out := fmt.Sprintf("[yellow]Branch:[white] %s\n\n", snap.Branch)
	for _, f := range snap.Files {
		out += fmt.Sprintf("  [green]%-8s[white] %s (+%d/-%d)\n", f.Status, f.Path, f.Added, f.Removed)
	}
	return out
}
