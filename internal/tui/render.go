// internal/tui/render.go
//
// The document renderer. One paragraph per screen row (no wrapping yet),
// formatting runs mapped onto tcell styles, bullets and indents drawn as a
// row prefix, object sentinels as a placeholder glyph. The renderer scrolls
// vertically so the caret's paragraph stays visible.
package tui

import (
	"strings"

	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/selection"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// objectPlaceholder stands in for an embedded drawing's sentinel on screen.
const objectPlaceholder = '■'

// Renderer draws a document unit into the text area above the status bar.
type Renderer struct {
	tui       *TUI
	scrollOff int
	topPara   int // First visible paragraph index
}

// NewRenderer creates a renderer over the given screen.
func NewRenderer(t *TUI, scrollOff int) *Renderer {
	if scrollOff < 0 {
		scrollOff = 0
	}
	return &Renderer{tui: t, scrollOff: scrollOff}
}

// Draw renders the unit and positions the terminal cursor at the caret.
// statusBarHeight rows at the bottom are left for the status bar.
func (r *Renderer) Draw(m *doc.DocumentModel, sel selection.Range, statusBarHeight int) {
	width, height := r.tui.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}
	screen := r.tui.Screen()
	body := m.GetBody()

	caretPara := body.ParagraphIndexAt(sel.StartOffset)
	if caretPara < 0 {
		caretPara = len(body.Paragraphs) - 1
	}
	r.scrollTo(caretPara, len(body.Paragraphs), viewHeight)

	selStart, selEnd := sel.StartOffset, sel.EndOffset
	if selEnd < selStart {
		selStart, selEnd = selEnd, selStart
	}

	runes := []rune(body.DataStream)
	cursorX, cursorY := -1, -1
	for row := 0; row < viewHeight; row++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, row, ' ', nil, tcell.StyleDefault)
		}

		pi := r.topPara + row
		if pi >= len(body.Paragraphs) {
			continue
		}
		start := body.ParagraphStart(pi)
		end := body.Paragraphs[pi].StartIndex

		x := drawParagraphPrefix(screen, row, body.Paragraphs[pi])

		offset := start
		for offset < end && x < width {
			style := styleAt(body, offset)
			if !sel.Collapsed() && offset >= selStart && offset < selEnd {
				style = style.Reverse(true)
			}
			if offset == sel.StartOffset && sel.Collapsed() {
				cursorX, cursorY = x, row
			}

			if runes[offset] == doc.ObjectSentinel {
				screen.SetContent(x, row, objectPlaceholder, nil, style)
				x++
				offset++
				continue
			}

			// Draw one grapheme cluster at a time so combining marks stay
			// attached to their base rune.
			cluster, count := clusterAt(runes, offset, end)
			main := []rune(cluster)[0]
			combining := []rune(cluster)[1:]
			screen.SetContent(x, row, main, combining, style)
			w := runewidth.StringWidth(cluster)
			for fill := 1; fill < w && x+fill < width; fill++ {
				screen.SetContent(x+fill, row, ' ', nil, style)
			}
			x += w
			offset += count
		}
		// A caret sitting on the paragraph break lands just past the text.
		if sel.Collapsed() && sel.StartOffset >= offset && sel.StartOffset <= end && r.topPara+row == caretPara {
			cursorX, cursorY = x, row
		}
	}

	if cursorX >= 0 && cursorX < width {
		screen.ShowCursor(cursorX, cursorY)
	} else {
		screen.HideCursor()
	}
}

// scrollTo adjusts the top paragraph so the caret stays in view with the
// configured context margin.
func (r *Renderer) scrollTo(caretPara, paraCount, viewHeight int) {
	if caretPara < r.topPara+r.scrollOff {
		r.topPara = caretPara - r.scrollOff
	}
	if caretPara >= r.topPara+viewHeight-r.scrollOff {
		r.topPara = caretPara - viewHeight + r.scrollOff + 1
	}
	if max := paraCount - viewHeight; r.topPara > max {
		r.topPara = max
	}
	if r.topPara < 0 {
		r.topPara = 0
	}
}

// drawParagraphPrefix renders the bullet and indentation before the text and
// returns the column the text starts at.
func drawParagraphPrefix(screen tcell.Screen, row int, p doc.Paragraph) int {
	x := 0
	if p.ParagraphStyle != nil {
		x += p.ParagraphStyle.IndentFirstLine + p.ParagraphStyle.HangingIndent
	}
	if p.Bullet != nil {
		x += p.Bullet.NestingLevel * 2
		marker := "• "
		if p.Bullet.ListType == "ordered" {
			marker = "- "
		}
		for i, rn := range marker {
			screen.SetContent(x+i, row, rn, nil, tcell.StyleDefault)
		}
		x += len([]rune(marker))
	}
	return x
}

// CaretColumn reports the visual column the caret occupies in its paragraph,
// for the status bar.
func CaretColumn(body *doc.Body, offset int) int {
	pi := body.ParagraphIndexAt(offset)
	if pi < 0 {
		return 0
	}
	start := body.ParagraphStart(pi)
	if offset <= start {
		return 0
	}
	runes := []rune(body.DataStream)
	if offset > len(runes) {
		offset = len(runes)
	}
	text := strings.Map(func(rn rune) rune {
		if rn == doc.ObjectSentinel {
			return objectPlaceholder
		}
		return rn
	}, string(runes[start:offset]))
	return uniseg.StringWidth(text)
}

// clusterAt returns the grapheme cluster starting at offset and how many
// runes it covers, clipped to end.
func clusterAt(runes []rune, offset, end int) (string, int) {
	rest := string(runes[offset:end])
	cluster, _, _, _ := uniseg.StepString(rest, -1)
	count := len([]rune(cluster))
	if count == 0 {
		return string(runes[offset]), 1
	}
	return cluster, count
}

// styleAt maps the formatting run covering offset to a tcell style.
func styleAt(body *doc.Body, offset int) tcell.Style {
	style := tcell.StyleDefault
	for _, run := range body.TextRuns {
		if offset < run.Start || offset >= run.End || run.Style == nil {
			continue
		}
		ts := run.Style
		if ts.Bold {
			style = style.Bold(true)
		}
		if ts.Italic {
			style = style.Italic(true)
		}
		if ts.Underline {
			style = style.Underline(true)
		}
		if ts.Color != "" {
			style = style.Foreground(tcell.GetColor(ts.Color))
		}
		break
	}
	return style
}
