// Package commands implements the document commands: one registration per
// user intent (delete-left, merge paragraphs, cut, insert...). Every command
// follows the same shape — read the selection and skeleton, compose one
// operation list, capture the pre-image, dispatch the rich-text mutation, and
// push exactly one undo/redo transaction. A command that returns false has
// touched nothing.
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/mutation"
	"github.com/bethropolis/scribe/internal/selection"
	"github.com/bethropolis/scribe/internal/undoredo"
)

// applyRichTextTransaction runs one composed operation list against a unit as
// an atomic transaction: inverse built from the pre-image, forward mutation
// dispatched through the bus, transaction pushed, caret rewritten. Nothing is
// pushed (and the caret stays) when the mutation fails.
func applyRichTextTransaction(s *command.Service, unitID string, ops []jsonx.Op, caret selection.Range) bool {
	m, ok := s.Units().Doc(unitID)
	if !ok {
		return false
	}
	preImage := m.GetBody().Clone()
	undoOps := jsonx.Invert(ops, preImage)

	doParams := mutation.RichTextEditParams{UnitID: unitID, Actions: ops}
	if !s.SyncExecuteCommand(mutation.RichTextEditMutationID, doParams) {
		return false
	}

	s.UndoRedo().PushUndoRedo(undoredo.Entry{
		UnitID: unitID,
		UndoMutations: []undoredo.Mutation{{
			ID:     mutation.RichTextEditMutationID,
			Params: mutation.RichTextEditParams{UnitID: unitID, Actions: undoOps},
		}},
		RedoMutations: []undoredo.Mutation{{
			ID:     mutation.RichTextEditMutationID,
			Params: doParams,
		}},
	})

	s.Selection().SetActiveRange(unitID, caret)
	return true
}
