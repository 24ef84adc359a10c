// internal/commands/merge.go
package commands

import (
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/doc/textx"
	"github.com/bethropolis/scribe/internal/selection"
)

const MergeTwoParagraphsCommandID = "doc.command.merge-two-paragraphs"

// MergeDirection says which neighbour absorbs which.
type MergeDirection int

const (
	// MergeBackward splices the caret's paragraph into the previous one
	// (backspace at a paragraph start).
	MergeBackward MergeDirection = iota
	// MergeForward splices the next paragraph into the caret's one (delete
	// at a paragraph end).
	MergeForward
)

// MergeTwoParagraphsParams carries the direction and the collapsed range the
// keystroke happened at.
type MergeTwoParagraphsParams struct {
	Direction MergeDirection
	Range     selection.Range
}

// NewMergeTwoParagraphsCommand joins two adjacent paragraphs as one atomic
// text delta: retain up to the join point, insert the absorbed paragraph's
// content, retain the surviving break, delete the absorbed span including its
// break. Formatting runs ride along inside the extracted sub-body.
func NewMergeTwoParagraphsCommand() command.Command {
	return command.Command{
		ID:      MergeTwoParagraphsCommandID,
		Type:    command.TypeCommand,
		Handler: mergeTwoParagraphs,
	}
}

func mergeTwoParagraphs(s *command.Service, params interface{}) bool {
	p, ok := params.(MergeTwoParagraphsParams)
	if !ok || !p.Range.Collapsed() {
		return false
	}
	m := s.Units().CurrentDoc()
	if m == nil {
		return false
	}
	unitID := m.GetUnitID()
	body := m.GetBody()
	off := p.Range.StartOffset

	tx := textx.NewBuilder()
	var caret int

	switch p.Direction {
	case MergeBackward:
		// The caret sits at a paragraph start; the break to join across is
		// the one immediately before it.
		pi := body.ParagraphIndexAt(off)
		if pi <= 0 || body.ParagraphStart(pi) != off {
			return false
		}
		joinPoint := off - 1
		end := body.Paragraphs[pi].StartIndex
		sub := body.Slice(off, end)

		tx.Retain(joinPoint)
		tx.Insert(sub)
		tx.Retain(1)
		tx.Delete(end - off + 1)
		caret = joinPoint

	case MergeForward:
		// The caret sits on a break; the next paragraph folds into this one.
		pi := body.ParagraphIndexAt(off)
		if pi < 0 || body.Paragraphs[pi].StartIndex != off {
			return false
		}
		if pi+1 >= len(body.Paragraphs) {
			return false
		}
		end := body.Paragraphs[pi+1].StartIndex
		sub := body.Slice(off+1, end)

		tx.Retain(off)
		tx.Insert(sub)
		tx.Retain(1)
		tx.Delete(end - off)
		caret = off

	default:
		return false
	}

	ops := []jsonx.Op{jsonx.EditOp(tx.Serialize()...)}
	return applyRichTextTransaction(s, unitID, ops, selection.Caret(caret))
}
