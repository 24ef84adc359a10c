// internal/commands/insert.go
package commands

import (
	"strings"

	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/selection"
)

const InsertTextCommandID = "doc.command.insert-text"

// InsertTextParams carries the text to type at the caret. '\r' runes split
// paragraphs; the object sentinel is rejected (drawings go through
// insert-drawing).
type InsertTextParams struct {
	Text string
}

// NewInsertTextCommand types text at the caret, replacing the selection if
// one is open. The replacement is one delta — retain, delete, insert — so a
// single undo restores both the removed selection and the caret.
func NewInsertTextCommand() command.Command {
	return command.Command{
		ID:      InsertTextCommandID,
		Type:    command.TypeCommand,
		Handler: insertText,
	}
}

func insertText(s *command.Service, params interface{}) bool {
	p, ok := params.(InsertTextParams)
	if !ok || p.Text == "" {
		return false
	}
	if strings.ContainsRune(p.Text, doc.ObjectSentinel) {
		return false
	}
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()
	ar, ok := s.Selection().ActiveRange(unitID)
	if !ok {
		return false
	}
	if ar.EndOffset > m.GetBody().Len() {
		return false
	}

	sub := doc.PlainBody(p.Text, ar.Style)

	tx := textx.NewBuilder()
	tx.Retain(ar.StartOffset)
	if !ar.Collapsed() {
		tx.Delete(ar.EndOffset - ar.StartOffset)
	}
	tx.Insert(sub)

	caret := selection.Range{
		StartOffset: ar.StartOffset + sub.Len(),
		EndOffset:   ar.StartOffset + sub.Len(),
		SegmentID:   ar.SegmentID,
		Style:       ar.Style,
	}
	ops := []jsonx.Op{jsonx.EditOp(tx.Serialize()...)}
	return applyRichTextTransaction(s, unitID, ops, caret)
}
