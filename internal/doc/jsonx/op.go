// Package jsonx is the structural operation algebra over a document unit's
// tree (body text, drawings map, z-order list, paragraph table). Operations
// are path-addressed and carry the asserted old value where one is needed to
// build an exact inverse; a text delta rides along as an edit operation
// wrapping a textx action list.
package jsonx

import (
	"errors"

	"github.com/bethropolis/scribe/internal/doc/textx"
)

// ErrConflict reports that an operation's asserted old value does not match
// the actual target state. The whole operation list is rejected; nothing is
// applied.
var ErrConflict = errors.New("jsonx: operation precondition does not match target state")

// ErrBadPath reports a path the applier does not understand.
var ErrBadPath = errors.New("jsonx: unsupported operation path")

// Path addresses a node in the unit's structural tree, e.g.
// {"drawings", "d1"} or {"drawingsOrder", 0} or {"body", "paragraphs", 2}.
type Path []interface{}

// OpType tags the four structural operations.
type OpType int

const (
	OpInsert OpType = iota
	OpRemove
	OpReplace
	OpEdit
)

func (t OpType) String() string {
	switch t {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpReplace:
		return "replace"
	case OpEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Op is one structural operation. Exactly one of the value fields is
// meaningful per type: Value for inserts, OldValue for removes, both for
// replaces, Actions for edits.
type Op struct {
	Type     OpType
	Path     Path
	Value    interface{}
	OldValue interface{}
	Actions  []textx.Action
}

// InsertOp asserts the target position is unoccupied and inserts value there.
func InsertOp(path Path, value interface{}) Op {
	return Op{Type: OpInsert, Path: path, Value: value}
}

// RemoveOp asserts the current value at path equals oldValue and removes it.
func RemoveOp(path Path, oldValue interface{}) Op {
	return Op{Type: OpRemove, Path: path, OldValue: oldValue}
}

// ReplaceOp asserts oldValue and sets newValue at path.
func ReplaceOp(path Path, oldValue, newValue interface{}) Op {
	return Op{Type: OpReplace, Path: path, OldValue: oldValue, Value: newValue}
}

// EditOp wraps a textx action list as an operation against the implicit
// body-text path.
func EditOp(actions ...textx.Action) Op {
	return Op{Type: OpEdit, Actions: actions}
}

// segmentOf returns the segment a text edit addresses (empty = main body).
func segmentOf(op Op) string {
	for _, a := range op.Actions {
		if a.SegmentID != "" {
			return a.SegmentID
		}
	}
	return ""
}
