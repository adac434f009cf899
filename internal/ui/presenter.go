// Package ui contains the interactive presenters that show a generated
// commit message and collect the user's decision.
package ui

import "github.com/lazycommit/lazycommit/internal/models"

// Action is what the user chose to do with the message.
type Action string

const (
	// ActionCommit accepts the message (possibly edited) and commits.
	ActionCommit Action = "commit"
	// ActionCopy puts the message on the clipboard without committing.
	ActionCopy Action = "copy"
	// ActionQuit abandons the message.
	ActionQuit Action = "quit"
)

// Decision is the outcome of a presentation: the chosen action and the
// final message text, which may differ from the generated one after an
// edit.
type Decision struct {
	Action  Action
	Message string
}

// Presenter shows a message for a snapshot and blocks until the user
// decides.
type Presenter interface {
	Present(snap models.Snapshot, message string) (Decision, error)
}
