// Package skeleton classifies positions in a document body the way a layout
// engine would, without doing any layout: given a rune offset it reports the
// glyph there (text cluster, paragraph break, or embedded object) so the
// command layer can branch without knowing rendering details. Text glyphs are
// grapheme clusters, so a combining sequence deletes as one unit.
package skeleton

import (
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// StreamType classifies what occupies a stream position.
type StreamType int

const (
	StreamText StreamType = iota
	StreamParagraphBreak
	StreamObject
)

// Glyph describes the laid-out unit covering one or more stream positions.
type Glyph struct {
	Content    string     // The runes forming the glyph
	StreamType StreamType //
	DrawingID  string     // Set for StreamObject glyphs
	StartIndex int        // Rune offset of the glyph's first position
	Count      int        // Stream positions the glyph covers
	Width      int        // Display cells, for layout consumers
}

// UnitSource is what the provider needs from the unit registry.
type UnitSource interface {
	Doc(unitID string) (*doc.DocumentModel, bool)
}

// Provider resolves glyphs against live document units.
type Provider struct {
	units UnitSource
}

// NewProvider creates a glyph provider over the given units.
func NewProvider(units UnitSource) *Provider {
	return &Provider{units: units}
}

// FindGlyphByCharIndex returns the glyph covering the given rune offset of
// the unit's main body. Sentinel characters are their own single-position
// glyphs; everything else resolves to the grapheme cluster containing the
// offset.
func (p *Provider) FindGlyphByCharIndex(unitID string, offset int) (Glyph, bool) {
	m, ok := p.units.Doc(unitID)
	if !ok {
		return Glyph{}, false
	}
	return FindGlyph(m.GetBody(), offset)
}

// FindGlyph classifies the glyph at offset within a body.
func FindGlyph(body *doc.Body, offset int) (Glyph, bool) {
	runes := []rune(body.DataStream)
	if offset < 0 || offset >= len(runes) {
		return Glyph{}, false
	}

	switch runes[offset] {
	case doc.ParagraphBreak:
		return Glyph{
			Content:    string(doc.ParagraphBreak),
			StreamType: StreamParagraphBreak,
			StartIndex: offset,
			Count:      1,
		}, true
	case doc.ObjectSentinel:
		g := Glyph{
			Content:    string(doc.ObjectSentinel),
			StreamType: StreamObject,
			StartIndex: offset,
			Count:      1,
			Width:      1,
		}
		if cb, ok := body.CustomBlockAt(offset); ok {
			g.DrawingID = cb.BlockID
		}
		return g, true
	}

	// Walk grapheme clusters from the start of the run of plain text so a
	// combining sequence reports as one glyph.
	start := offset
	for start > 0 && runes[start-1] != doc.ParagraphBreak && runes[start-1] != doc.ObjectSentinel {
		start--
	}
	end := offset
	for end < len(runes) && runes[end] != doc.ParagraphBreak && runes[end] != doc.ObjectSentinel {
		end++
	}

	rest := string(runes[start:end])
	state := -1
	pos := start
	for len(rest) > 0 {
		cluster, tail, _, nextState := uniseg.StepString(rest, state)
		count := len([]rune(cluster))
		if offset < pos+count {
			return Glyph{
				Content:    cluster,
				StreamType: StreamText,
				StartIndex: pos,
				Count:      count,
				Width:      runewidth.StringWidth(cluster),
			}, true
		}
		pos += count
		rest = tail
		state = nextState
	}

	return Glyph{}, false
}
