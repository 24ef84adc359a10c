// internal/commands/delete.go
//
// The delete keystroke commands. Each invocation classifies the glyph beside
// the caret and picks one branch: range selections delegate to cut, a
// paragraph break triggers a merge, an inline object's sentinel removes the
// whole custom block, a floating object loses only its sentinel, a decorated
// paragraph start sheds its bullet or indent, and plain text is a one-glyph
// delete. Exactly one transaction per keystroke, or none at all.
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/selection"
	"github.com/bethropolis/scribe/internal/skeleton"
)

const (
	DeleteLeftCommandID  = "doc.command.delete-left"
	DeleteRightCommandID = "doc.command.delete-right"
)

// NewDeleteLeftCommand handles BACKSPACE.
func NewDeleteLeftCommand() command.Command {
	return command.Command{
		ID:      DeleteLeftCommandID,
		Type:    command.TypeCommand,
		Handler: deleteLeft,
	}
}

// NewDeleteRightCommand handles DELETE, the forward mirror.
func NewDeleteRightCommand() command.Command {
	return command.Command{
		ID:      DeleteRightCommandID,
		Type:    command.TypeCommand,
		Handler: deleteRight,
	}
}

func deleteLeft(s *command.Service, _ interface{}) bool {
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()
	ar, ok := s.Selection().ActiveRange(unitID)
	if !ok {
		return false
	}

	if !ar.Collapsed() {
		return s.SyncExecuteCommand(CutContentCommandID, CutContentParams{Ranges: s.Selection().Ranges(unitID)})
	}

	body := m.GetBody()
	off := ar.StartOffset

	// At a decorated paragraph start, backspace ungroups instead of deleting.
	if pi := body.ParagraphIndexAt(off); pi >= 0 && off == body.ParagraphStart(pi) {
		if para := body.Paragraphs[pi]; paragraphDecorated(para) {
			return stripParagraphDecoration(s, unitID, pi, para, ar)
		}
	}

	if off == 0 {
		return false
	}
	glyph, ok := s.Skeleton().FindGlyphByCharIndex(unitID, off-1)
	if !ok {
		return false
	}

	switch glyph.StreamType {
	case skeleton.StreamParagraphBreak:
		return s.SyncExecuteCommand(MergeTwoParagraphsCommandID, MergeTwoParagraphsParams{
			Direction: MergeBackward,
			Range:     ar,
		})
	case skeleton.StreamObject:
		if d, found := m.GetDrawing(glyph.DrawingID); found && d.LayoutType == doc.LayoutInline {
			return s.SyncExecuteCommand(DeleteCustomBlockCommandID, DeleteCustomBlockParams{
				DrawingID: glyph.DrawingID,
				Offset:    off - 1,
			})
		}
		// Floating object: the sentinel goes, the drawing mapping stays.
	}

	return deleteGlyph(s, unitID, glyph)
}

func deleteRight(s *command.Service, _ interface{}) bool {
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()
	ar, ok := s.Selection().ActiveRange(unitID)
	if !ok {
		return false
	}

	if !ar.Collapsed() {
		return s.SyncExecuteCommand(CutContentCommandID, CutContentParams{Ranges: s.Selection().Ranges(unitID)})
	}

	body := m.GetBody()
	off := ar.StartOffset
	if off >= body.Len() {
		return false
	}
	glyph, ok := s.Skeleton().FindGlyphByCharIndex(unitID, off)
	if !ok {
		return false
	}

	switch glyph.StreamType {
	case skeleton.StreamParagraphBreak:
		return s.SyncExecuteCommand(MergeTwoParagraphsCommandID, MergeTwoParagraphsParams{
			Direction: MergeForward,
			Range:     ar,
		})
	case skeleton.StreamObject:
		if d, found := m.GetDrawing(glyph.DrawingID); found && d.LayoutType == doc.LayoutInline {
			return s.SyncExecuteCommand(DeleteCustomBlockCommandID, DeleteCustomBlockParams{
				DrawingID: glyph.DrawingID,
				Offset:    off,
			})
		}
	}

	return deleteGlyph(s, unitID, glyph)
}

// deleteGlyph removes one glyph's positions as a plain text delete.
func deleteGlyph(s *command.Service, unitID string, glyph skeleton.Glyph) bool {
	tx := textx.NewBuilder()
	tx.Retain(glyph.StartIndex)
	tx.Delete(glyph.Count)
	ops := []jsonx.Op{jsonx.EditOp(tx.Serialize()...)}
	return applyRichTextTransaction(s, unitID, ops, selection.Caret(glyph.StartIndex))
}

func paragraphDecorated(p doc.Paragraph) bool {
	if p.Bullet != nil {
		return true
	}
	if p.ParagraphStyle != nil && (p.ParagraphStyle.IndentFirstLine > 0 || p.ParagraphStyle.HangingIndent > 0) {
		return true
	}
	return false
}

// stripParagraphDecoration replaces the paragraph's entry with one shorn of
// its bullet (first) or its indents, leaving the stream and caret untouched.
func stripParagraphDecoration(s *command.Service, unitID string, index int, para doc.Paragraph, caret selection.Range) bool {
	stripped := para.Clone()
	if stripped.Bullet != nil {
		stripped.Bullet = nil
	} else if stripped.ParagraphStyle != nil {
		stripped.ParagraphStyle.IndentFirstLine = 0
		stripped.ParagraphStyle.HangingIndent = 0
	}

	ops := []jsonx.Op{jsonx.ReplaceOp(
		jsonx.Path{"body", "paragraphs", index},
		para.Clone(),
		stripped,
	)}
	return applyRichTextTransaction(s, unitID, ops, caret)
}
