// internal/commands/cut.go
package commands

import (
	"sort"
	"strings"

	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/selection"
)

const CutContentCommandID = "doc.command.cut-content"

// CutContentParams carries the ranges to remove. An empty list falls back to
// the unit's current selection.
type CutContentParams struct {
	Ranges []selection.Range
}

// NewCutContentCommand deletes the union of the selected ranges in one
// transaction. Inline drawings caught in the span are removed from the
// drawing structures as part of the same operation list; the removed text
// lands on the clipboard.
func NewCutContentCommand() command.Command {
	return command.Command{
		ID:      CutContentCommandID,
		Type:    command.TypeCommand,
		Handler: cutContent,
	}
}

func cutContent(s *command.Service, params interface{}) bool {
	p, _ := params.(CutContentParams)
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()

	ranges := p.Ranges
	if len(ranges) == 0 {
		ranges = s.Selection().Ranges(unitID)
	}
	start, end, ok := unionSpan(ranges)
	if !ok {
		return false
	}
	body := m.GetBody()
	if end > body.Len() {
		return false
	}

	// Clipboard gets the plain-text view of what is being removed.
	removed := body.Slice(start, end)
	if cb := s.Clipboard(); cb != nil {
		if err := cb.Write(plainText(removed.DataStream)); err != nil {
			logger.Warnf("cut-content: clipboard write failed: %v", err)
		}
	}

	tx := textx.NewBuilder()
	tx.Retain(start)
	tx.Delete(end - start)
	ops := []jsonx.Op{jsonx.EditOp(tx.Serialize()...)}

	// Inline drawings whose sentinel falls in the span go with it. Their
	// order entries are removed highest-index-first so earlier removals
	// don't shift later ones.
	var orderIndexes []int
	drawingsByIndex := make(map[int]string)
	for _, cb := range body.CustomBlocks {
		if cb.StartIndex < start || cb.StartIndex >= end {
			continue
		}
		d, found := m.GetDrawing(cb.BlockID)
		if !found || d.LayoutType != doc.LayoutInline {
			continue
		}
		idx := m.DrawingOrderIndex(cb.BlockID)
		if idx < 0 {
			continue
		}
		orderIndexes = append(orderIndexes, idx)
		drawingsByIndex[idx] = cb.BlockID
	}
	sort.Sort(sort.Reverse(sort.IntSlice(orderIndexes)))
	for _, idx := range orderIndexes {
		id := drawingsByIndex[idx]
		d, _ := m.GetDrawing(id)
		ops = append(ops,
			jsonx.RemoveOp(jsonx.Path{"drawings", id}, d.Clone()),
			jsonx.RemoveOp(jsonx.Path{"drawingsOrder", idx}, id),
		)
	}

	return applyRichTextTransaction(s, unitID, ops, selection.Caret(start))
}

// unionSpan returns the covering span of all non-collapsed ranges.
func unionSpan(ranges []selection.Range) (int, int, bool) {
	start, end := -1, -1
	for _, r := range ranges {
		if r.Collapsed() {
			continue
		}
		lo, hi := r.StartOffset, r.EndOffset
		if hi < lo {
			lo, hi = hi, lo
		}
		if start < 0 || lo < start {
			start = lo
		}
		if hi > end {
			end = hi
		}
	}
	if start < 0 || start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// plainText converts a data stream slice to clipboard text: paragraph breaks
// become newlines, object sentinels disappear.
func plainText(stream string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case doc.ParagraphBreak:
			return '\n'
		case doc.ObjectSentinel:
			return -1
		default:
			return r
		}
	}, stream)
}
