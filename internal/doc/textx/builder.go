// internal/doc/textx/builder.go
package textx

import "github.com/bethropolis/scribe/internal/doc"

// Builder accumulates an action list in order, coalescing adjacent retains
// and deletes that share a segment so serialized deltas stay compact. The
// builder never validates lengths against a document; sizing operations
// against the current body is the caller's job.
type Builder struct {
	actions []Action
}

// NewBuilder creates an empty action builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Push appends one action, merging it into the previous one when possible.
func (b *Builder) Push(a Action) {
	if a.Len <= 0 {
		return
	}
	if n := len(b.actions); n > 0 {
		last := &b.actions[n-1]
		if last.Type == a.Type && last.SegmentID == a.SegmentID {
			switch a.Type {
			case ActionRetain, ActionDelete:
				last.Len += a.Len
				return
			case ActionInsert:
				merged := last.Body.Clone()
				if err := merged.Insert(merged.Len(), a.Body); err == nil {
					last.Body = merged
					last.Len += a.Len
					return
				}
			}
		}
	}
	b.actions = append(b.actions, a)
}

// Retain appends a retain of n runes.
func (b *Builder) Retain(n int) {
	b.Push(Retain(n))
}

// Insert appends an insert of the given sub-body.
func (b *Builder) Insert(body *doc.Body) {
	b.Push(Insert(body))
}

// Delete appends a delete of n runes.
func (b *Builder) Delete(n int) {
	b.Push(Delete(n))
}

// Serialize returns the finalized, order-preserving action list.
func (b *Builder) Serialize() []Action {
	return b.actions
}
