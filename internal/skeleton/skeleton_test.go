package skeleton

import (
	"testing"

	"github.com/bethropolis/scribe/internal/doc"
)

func TestFindGlyphClassifiesSentinels(t *testing.T) {
	body := doc.PlainBody("a\r\bb\r", nil)
	body.CustomBlocks = []doc.CustomBlock{{StartIndex: 2, BlockID: "d1"}}

	g, ok := FindGlyph(body, 1)
	if !ok || g.StreamType != StreamParagraphBreak || g.Count != 1 {
		t.Fatalf("offset 1 should be a paragraph break, got %+v", g)
	}

	g, ok = FindGlyph(body, 2)
	if !ok || g.StreamType != StreamObject {
		t.Fatalf("offset 2 should be an object, got %+v", g)
	}
	if g.DrawingID != "d1" {
		t.Fatalf("object glyph should resolve its drawing id, got %q", g.DrawingID)
	}
}

func TestFindGlyphPlainText(t *testing.T) {
	body := doc.PlainBody("hi\r", nil)
	g, ok := FindGlyph(body, 0)
	if !ok || g.StreamType != StreamText || g.Content != "h" {
		t.Fatalf("unexpected glyph: %+v", g)
	}
	if g.StartIndex != 0 || g.Count != 1 || g.Width != 1 {
		t.Fatalf("unexpected glyph metrics: %+v", g)
	}
}

func TestFindGlyphCoversCombiningSequence(t *testing.T) {
	// "e" followed by a combining acute accent forms one grapheme cluster.
	body := doc.PlainBody("aéb\r", nil)

	for _, offset := range []int{1, 2} {
		g, ok := FindGlyph(body, offset)
		if !ok {
			t.Fatalf("no glyph at offset %d", offset)
		}
		if g.StartIndex != 1 || g.Count != 2 || g.Content != "é" {
			t.Fatalf("offset %d should resolve to the full cluster, got %+v", offset, g)
		}
	}

	g, _ := FindGlyph(body, 3)
	if g.Content != "b" || g.StartIndex != 3 {
		t.Fatalf("offset 3 should be the following letter, got %+v", g)
	}
}

func TestFindGlyphWideRune(t *testing.T) {
	body := doc.PlainBody("界\r", nil)
	g, ok := FindGlyph(body, 0)
	if !ok || g.Width != 2 {
		t.Fatalf("CJK glyph should be two cells wide, got %+v", g)
	}
}

func TestFindGlyphOutOfBounds(t *testing.T) {
	body := doc.PlainBody("a\r", nil)
	if _, ok := FindGlyph(body, 2); ok {
		t.Fatal("offset past the end must not resolve")
	}
	if _, ok := FindGlyph(body, -1); ok {
		t.Fatal("negative offset must not resolve")
	}
}

type fakeUnits map[string]*doc.DocumentModel

func (f fakeUnits) Doc(unitID string) (*doc.DocumentModel, bool) {
	m, ok := f[unitID]
	return m, ok
}

func TestProviderResolvesThroughUnits(t *testing.T) {
	m := doc.NewDocumentModel("u1", doc.PlainBody("x\r", nil))
	p := NewProvider(fakeUnits{"u1": m})

	g, ok := p.FindGlyphByCharIndex("u1", 0)
	if !ok || g.Content != "x" {
		t.Fatalf("unexpected glyph: %+v", g)
	}
	if _, ok := p.FindGlyphByCharIndex("missing", 0); ok {
		t.Fatal("unknown unit must not resolve")
	}
}
