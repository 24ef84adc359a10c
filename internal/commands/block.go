// internal/commands/block.go
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/selection"
)

const DeleteCustomBlockCommandID = "doc.command.delete-custom-block"

// DeleteCustomBlockParams names the inline drawing to remove and the rune
// offset of its sentinel.
type DeleteCustomBlockParams struct {
	DrawingID string
	Offset    int
}

// NewDeleteCustomBlockCommand removes an inline embedded object completely:
// one composed transaction deletes the '\b' sentinel (and with it the custom
// block entry) and removes the drawing from both the mapping and the z-order
// list, so the two structures never disagree.
func NewDeleteCustomBlockCommand() command.Command {
	return command.Command{
		ID:      DeleteCustomBlockCommandID,
		Type:    command.TypeCommand,
		Handler: deleteCustomBlock,
	}
}

func deleteCustomBlock(s *command.Service, params interface{}) bool {
	p, ok := params.(DeleteCustomBlockParams)
	if !ok {
		return false
	}
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()

	drawing, found := m.GetDrawing(p.DrawingID)
	if !found {
		return false
	}
	orderIndex := m.DrawingOrderIndex(p.DrawingID)
	if orderIndex < 0 {
		return false
	}
	block, found := m.GetBody().CustomBlockAt(p.Offset)
	if !found || block.BlockID != p.DrawingID {
		return false
	}

	tx := textx.NewBuilder()
	tx.Retain(p.Offset)
	tx.Delete(1)

	ops := []jsonx.Op{
		jsonx.EditOp(tx.Serialize()...),
		jsonx.RemoveOp(jsonx.Path{"drawings", p.DrawingID}, drawing.Clone()),
		jsonx.RemoveOp(jsonx.Path{"drawingsOrder", orderIndex}, p.DrawingID),
	}
	return applyRichTextTransaction(s, unitID, ops, selection.Caret(p.Offset))
}
