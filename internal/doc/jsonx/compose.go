// internal/doc/jsonx/compose.go
package jsonx

import "github.com/bethropolis/scribe/internal/doc/textx"

// Compose merges two operation lists into one with the same net effect as
// applying a then b. Structural operations keep their relative order (writes
// to the same path are never reordered); consecutive text edits on the same
// segment collapse through textx composition. Composing with an empty list
// yields the other list unchanged, and composition over a transaction chain
// is associative.
func Compose(a, b []Op) []Op {
	out := make([]Op, 0, len(a)+len(b))
	out = append(out, a...)
	for _, op := range b {
		if op.Type == OpEdit && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Type == OpEdit && segmentOf(*last) == segmentOf(op) {
				last.Actions = textx.Compose(last.Actions, op.Actions)
				continue
			}
		}
		out = append(out, op)
	}
	return out
}
