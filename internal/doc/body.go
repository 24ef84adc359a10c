// Package doc holds the document body model: a flat data stream with side
// tables for formatting runs, paragraphs, custom ranges and embedded blocks,
// plus the drawing map owned by each document unit.
package doc

import (
	"errors"
	"sort"
	"unicode/utf8"
)

// Sentinel code points in the data stream.
const (
	ParagraphBreak = '\r' // Ends a paragraph; every paragraph entry points at one
	ObjectSentinel = '\b' // Placeholder for an embedded non-text object
)

var ErrOutOfBounds = errors.New("doc: offset out of bounds")

// TextStyle describes character formatting attached to a run.
type TextStyle struct {
	Bold       bool
	Italic     bool
	Underline  bool
	FontFamily string
	FontSize   int
	Color      string // Hex string like "#rrggbb"; empty means theme default
}

// TextRun applies a style to the half-open rune range [Start, End).
type TextRun struct {
	Start int
	End   int
	Style *TextStyle
}

// ParagraphStyle holds block-level formatting for one paragraph.
type ParagraphStyle struct {
	IndentFirstLine int
	HangingIndent   int
	Align           string
}

// Bullet attaches list formatting to a paragraph.
type Bullet struct {
	ListType     string
	NestingLevel int
}

// Paragraph marks a paragraph boundary. StartIndex is the rune index of the
// paragraph's terminating '\r' in the data stream.
type Paragraph struct {
	StartIndex     int
	ParagraphStyle *ParagraphStyle
	Bullet         *Bullet
}

// CustomRange is an out-of-band annotation (comment, hyperlink) over the
// half-open rune range [Start, End).
type CustomRange struct {
	Start     int
	End       int
	RangeID   string
	RangeType string
}

// CustomBlock anchors an embedded object. StartIndex is the rune index of the
// '\b' sentinel; BlockID matches the drawing id for drawing blocks.
type CustomBlock struct {
	StartIndex int
	BlockID    string
}

// Body is the authoritative content of one document segment.
type Body struct {
	DataStream   string
	TextRuns     []TextRun
	Paragraphs   []Paragraph
	CustomRanges []CustomRange
	CustomBlocks []CustomBlock
}

// NewBody creates an empty body terminated by a single paragraph break.
func NewBody() *Body {
	return &Body{
		DataStream: string(ParagraphBreak),
		Paragraphs: []Paragraph{{StartIndex: 0}},
	}
}

// PlainBody builds a body from raw text, registering a paragraph entry for
// every '\r' it contains. A non-nil style covers the whole text with one run.
func PlainBody(text string, style *TextStyle) *Body {
	b := &Body{DataStream: text}
	for i, r := range []rune(text) {
		if r == ParagraphBreak {
			b.Paragraphs = append(b.Paragraphs, Paragraph{StartIndex: i})
		}
	}
	if style != nil && len(text) > 0 {
		b.TextRuns = []TextRun{{Start: 0, End: utf8.RuneCountInString(text), Style: style}}
	}
	return b
}

// Len returns the length of the data stream in runes. All offsets in the side
// tables are rune offsets.
func (b *Body) Len() int {
	return utf8.RuneCountInString(b.DataStream)
}

// ParagraphIndexAt returns the index of the paragraph containing offset, i.e.
// the first entry whose break sits at or after offset. Returns -1 if the
// offset lies beyond the last break.
func (b *Body) ParagraphIndexAt(offset int) int {
	for i, p := range b.Paragraphs {
		if p.StartIndex >= offset {
			return i
		}
	}
	return -1
}

// ParagraphStart returns the rune offset of the first character of the
// paragraph at index idx (one past the previous paragraph's break).
func (b *Body) ParagraphStart(idx int) int {
	if idx <= 0 {
		return 0
	}
	return b.Paragraphs[idx-1].StartIndex + 1
}

// CustomBlockAt returns the block anchored exactly at offset, if any.
func (b *Body) CustomBlockAt(offset int) (CustomBlock, bool) {
	for _, cb := range b.CustomBlocks {
		if cb.StartIndex == offset {
			return cb, true
		}
	}
	return CustomBlock{}, false
}

// Validate checks the structural invariants: every referenced offset lies in
// [0, Len()], runs are ordered and non-overlapping, paragraphs point at '\r'.
func (b *Body) Validate() error {
	length := b.Len()
	runes := []rune(b.DataStream)
	prevEnd := 0
	for _, run := range b.TextRuns {
		if run.Start < 0 || run.End > length || run.Start >= run.End {
			return ErrOutOfBounds
		}
		if run.Start < prevEnd {
			return errors.New("doc: overlapping text runs")
		}
		prevEnd = run.End
	}
	prevBreak := -1
	for _, p := range b.Paragraphs {
		if p.StartIndex < 0 || p.StartIndex >= length {
			return ErrOutOfBounds
		}
		if runes[p.StartIndex] != ParagraphBreak {
			return errors.New("doc: paragraph entry does not point at a break")
		}
		if p.StartIndex <= prevBreak {
			return errors.New("doc: paragraph entries out of order")
		}
		prevBreak = p.StartIndex
	}
	for _, cr := range b.CustomRanges {
		if cr.Start < 0 || cr.End > length || cr.Start >= cr.End {
			return ErrOutOfBounds
		}
	}
	for _, cb := range b.CustomBlocks {
		if cb.StartIndex < 0 || cb.StartIndex >= length {
			return ErrOutOfBounds
		}
		if runes[cb.StartIndex] != ObjectSentinel {
			return errors.New("doc: custom block does not point at an object sentinel")
		}
	}
	return nil
}

// styleEqual compares two styles by value, treating nil as distinct from the
// zero style.
func styleEqual(a, b *TextStyle) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// sortRuns orders runs by start offset (stable so equal starts keep order).
func sortRuns(runs []TextRun) {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Start < runs[j].Start })
}
