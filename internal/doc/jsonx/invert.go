// internal/doc/jsonx/invert.go
package jsonx

import (
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/textx"
)

// Invert builds the operation list that reverses ops, given the body as it
// was before ops ran. Structural inverses come straight from the asserted
// values; text edit inverses read deleted content back out of the pre-image.
// The result is ordered so that replaying it undoes ops back-to-front.
func Invert(ops []Op, base *doc.Body) []Op {
	// Text edits later in the list see the body as transformed by earlier
	// ones, so track the intermediate pre-image per edit op.
	preImages := make([]*doc.Body, len(ops))
	working := base.Clone()
	for i, op := range ops {
		if op.Type == OpEdit {
			preImages[i] = working.Clone()
			// Ignore errors here; Apply validates the real list before any
			// inverse is ever replayed.
			_ = textx.Apply(working, op.Actions)
		}
	}

	out := make([]Op, 0, len(ops))
	for i := len(ops) - 1; i >= 0; i-- {
		op := ops[i]
		switch op.Type {
		case OpInsert:
			out = append(out, RemoveOp(op.Path, op.Value))
		case OpRemove:
			out = append(out, InsertOp(op.Path, op.OldValue))
		case OpReplace:
			out = append(out, ReplaceOp(op.Path, op.Value, op.OldValue))
		case OpEdit:
			out = append(out, EditOp(textx.Invert(op.Actions, preImages[i])...))
		}
	}
	return out
}
