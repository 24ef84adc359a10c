// internal/commands/drawing.go
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/selection"
)

const InsertDrawingCommandID = "doc.command.insert-drawing"

// InsertDrawingParams carries the drawing descriptor to embed at the caret.
type InsertDrawingParams struct {
	Drawing doc.Drawing
}

// NewInsertDrawingCommand registers a drawing and splices its sentinel into
// the stream as one transaction: the constructive mirror of
// delete-custom-block. The drawing lands at the top of the z-order.
func NewInsertDrawingCommand() command.Command {
	return command.Command{
		ID:      InsertDrawingCommandID,
		Type:    command.TypeCommand,
		Handler: insertDrawing,
	}
}

func insertDrawing(s *command.Service, params interface{}) bool {
	p, ok := params.(InsertDrawingParams)
	if !ok || p.Drawing.DrawingID == "" {
		return false
	}
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()
	if _, exists := m.GetDrawing(p.Drawing.DrawingID); exists {
		return false
	}
	ar, ok := s.Selection().ActiveRange(unitID)
	if !ok {
		return false
	}
	off := ar.StartOffset
	if off > m.GetBody().Len() {
		return false
	}

	sentinel := &doc.Body{
		DataStream:   string(doc.ObjectSentinel),
		CustomBlocks: []doc.CustomBlock{{StartIndex: 0, BlockID: p.Drawing.DrawingID}},
	}
	tx := textx.NewBuilder()
	tx.Retain(off)
	tx.Insert(sentinel)

	d := p.Drawing
	ops := []jsonx.Op{
		jsonx.InsertOp(jsonx.Path{"drawings", d.DrawingID}, d.Clone()),
		jsonx.InsertOp(jsonx.Path{"drawingsOrder", len(m.GetDrawingsOrder())}, d.DrawingID),
		jsonx.EditOp(tx.Serialize()...),
	}
	return applyRichTextTransaction(s, unitID, ops, selection.Caret(off+1))
}
