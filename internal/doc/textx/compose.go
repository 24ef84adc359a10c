// internal/doc/textx/compose.go
//
// Compose merges two consecutive deltas into one with the same net effect:
// for any body S, apply(apply(S, a), b) == apply(S, compose(a, b)). The
// pairwise walk follows the classic operational-transform composition, with
// an implicit retain-to-end on whichever side runs out first so independent
// tails pass through untouched. Composition over a chain of deltas is
// associative, which is what lets a multi-step transaction collapse into a
// single operation list.
package textx

import "math"

// actionIter walks an action list allowing partial consumption by length.
type actionIter struct {
	actions []Action
	idx     int
	used    int // Runes of actions[idx] already consumed
}

func (it *actionIter) hasNext() bool {
	return it.idx < len(it.actions)
}

// peekType reports the type of the next fragment; retain when exhausted.
func (it *actionIter) peekType() ActionType {
	if !it.hasNext() {
		return ActionRetain
	}
	return it.actions[it.idx].Type
}

// peekLen reports the remaining length of the next fragment; unbounded when
// exhausted (the implicit trailing retain).
func (it *actionIter) peekLen() int {
	if !it.hasNext() {
		return math.MaxInt
	}
	return it.actions[it.idx].Len - it.used
}

// next consumes up to limit runes of the current action (limit < 0 takes the
// rest) and returns them as a standalone action.
func (it *actionIter) next(limit int) Action {
	if !it.hasNext() {
		if limit < 0 {
			limit = 0
		}
		return Retain(limit)
	}
	cur := it.actions[it.idx]
	remaining := cur.Len - it.used
	if limit < 0 || limit >= remaining {
		it.idx++
		taken := it.used
		it.used = 0
		if cur.Type == ActionInsert && taken > 0 {
			return Action{Type: ActionInsert, Len: remaining, Body: cur.Body.Slice(taken, cur.Len), SegmentID: cur.SegmentID}
		}
		if taken > 0 {
			return Action{Type: cur.Type, Len: remaining, SegmentID: cur.SegmentID}
		}
		return cur
	}

	start := it.used
	it.used += limit
	if cur.Type == ActionInsert {
		return Action{Type: ActionInsert, Len: limit, Body: cur.Body.Slice(start, start+limit), SegmentID: cur.SegmentID}
	}
	return Action{Type: cur.Type, Len: limit, SegmentID: cur.SegmentID}
}

// Compose returns a single action list equivalent to applying a then b.
func Compose(a, b []Action) []Action {
	ia := &actionIter{actions: a}
	ib := &actionIter{actions: b}
	out := NewBuilder()

	for ia.hasNext() || ib.hasNext() {
		// Inserts from b land after everything a produced so far.
		if ib.peekType() == ActionInsert {
			out.Push(ib.next(-1))
			continue
		}
		// Deletes from a act on content b never sees.
		if ia.peekType() == ActionDelete {
			out.Push(ia.next(-1))
			continue
		}

		n := ia.peekLen()
		if bl := ib.peekLen(); bl < n {
			n = bl
		}
		aOp := ia.next(n)
		bOp := ib.next(n)

		switch bOp.Type {
		case ActionRetain:
			// b keeps whatever a produced: a's retain or a's insert survives.
			out.Push(aOp)
		case ActionDelete:
			if aOp.Type == ActionRetain {
				out.Push(bOp)
			}
			// b deleting what a just inserted cancels both fragments.
		}
	}

	return out.Serialize()
}
