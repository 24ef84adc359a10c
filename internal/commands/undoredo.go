// internal/commands/undoredo.go
package commands

import "github.com/bethropolis/scribe/internal/command"

const (
	UndoCommandID = "doc.command.undo"
	RedoCommandID = "doc.command.redo"
)

// NewUndoCommand replays the focused unit's most recent transaction inverse.
func NewUndoCommand() command.Command {
	return command.Command{
		ID:   UndoCommandID,
		Type: command.TypeCommand,
		Handler: func(s *command.Service, _ interface{}) bool {
			m := s.Units().CurrentDoc()
			if m == nil {
				return false
			}
			return s.UndoRedo().Undo(m.GetUnitID())
		},
	}
}

// NewRedoCommand re-applies the most recently undone transaction.
func NewRedoCommand() command.Command {
	return command.Command{
		ID:   RedoCommandID,
		Type: command.TypeCommand,
		Handler: func(s *command.Service, _ interface{}) bool {
			m := s.Units().CurrentDoc()
			if m == nil {
				return false
			}
			return s.UndoRedo().Redo(m.GetUnitID())
		},
	}
}
