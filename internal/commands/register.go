// internal/commands/register.go
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/mutation"
)

// RegisterAll wires the built-in document command set and its mutation onto
// the bus. A duplicate id panics here at setup, never during dispatch.
func RegisterAll(s *command.Service, events *event.Manager) {
	s.MustRegister(mutation.NewRichTextEditMutation(events))

	s.MustRegister(NewDeleteLeftCommand())
	s.MustRegister(NewDeleteRightCommand())
	s.MustRegister(NewMergeTwoParagraphsCommand())
	s.MustRegister(NewDeleteCustomBlockCommand())
	s.MustRegister(NewCutContentCommand())
	s.MustRegister(NewInsertTextCommand())
	s.MustRegister(NewInsertDrawingCommand())
	s.MustRegister(NewUndoCommand())
	s.MustRegister(NewRedoCommand())
}
