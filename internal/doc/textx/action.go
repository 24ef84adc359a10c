// Package textx defines the primitive edit actions over a document body: an
// ordered action list walks the data stream, retaining, inserting or deleting
// content as it goes. Action lists are the payload of the rich-text edit
// operation and compose into atomic, invertible deltas.
package textx

import (
	"errors"

	"github.com/bethropolis/scribe/internal/doc"
)

var ErrOutOfBounds = errors.New("textx: action list walks past end of body")

// ActionType tags the three primitive edits.
type ActionType int

const (
	ActionRetain ActionType = iota
	ActionInsert
	ActionDelete
)

func (t ActionType) String() string {
	switch t {
	case ActionRetain:
		return "retain"
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Action is one step of a delta walk. Len is a rune count; for inserts it
// always equals Body.Len(). SegmentID addresses a named sub-region (header,
// footer) and is empty for the main body.
type Action struct {
	Type      ActionType
	Len       int
	Body      *doc.Body // Insert payload; nil otherwise
	SegmentID string
}

// Retain builds a retain action.
func Retain(n int) Action { return Action{Type: ActionRetain, Len: n} }

// Insert builds an insert action around a sub-body.
func Insert(body *doc.Body) Action {
	return Action{Type: ActionInsert, Len: body.Len(), Body: body}
}

// InsertText builds an insert action for plain text, optionally styled.
func InsertText(text string, style *doc.TextStyle) Action {
	return Insert(doc.PlainBody(text, style))
}

// Delete builds a delete action.
func Delete(n int) Action { return Action{Type: ActionDelete, Len: n} }

// BaseLen returns how many runes of an existing body the list consumes
// (retains plus deletes).
func BaseLen(actions []Action) int {
	n := 0
	for _, a := range actions {
		if a.Type == ActionRetain || a.Type == ActionDelete {
			n += a.Len
		}
	}
	return n
}

// TargetLen returns the length of the walked region after application
// (retains plus inserts).
func TargetLen(actions []Action) int {
	n := 0
	for _, a := range actions {
		if a.Type == ActionRetain || a.Type == ActionInsert {
			n += a.Len
		}
	}
	return n
}

// Apply walks the action list over the body, mutating it in place. The walk
// fails without touching anything past the failure point if it would step
// beyond the end of the stream, so callers validate against a clone first
// (see the jsonx applier).
func Apply(body *doc.Body, actions []Action) error {
	cursor := 0
	for _, a := range actions {
		switch a.Type {
		case ActionRetain:
			if cursor+a.Len > body.Len() {
				return ErrOutOfBounds
			}
			cursor += a.Len
		case ActionInsert:
			if err := body.Insert(cursor, a.Body); err != nil {
				return err
			}
			cursor += a.Len
		case ActionDelete:
			if _, err := body.Delete(cursor, a.Len); err != nil {
				return err
			}
		}
	}
	return nil
}

// Invert derives the action list that reverses `actions` when applied to the
// result, reading deleted content back out of the pre-image body.
func Invert(actions []Action, base *doc.Body) []Action {
	inv := NewBuilder()
	cursor := 0
	for _, a := range actions {
		switch a.Type {
		case ActionRetain:
			inv.Retain(a.Len)
			cursor += a.Len
		case ActionInsert:
			inv.Delete(a.Len)
		case ActionDelete:
			inv.Insert(base.Slice(cursor, cursor+a.Len))
			cursor += a.Len
		}
	}
	return inv.Serialize()
}
