package doc

import (
	"reflect"
	"testing"
)

func boldStyle() *TextStyle  { return &TextStyle{Bold: true} }
func plainStyle() *TextStyle { return &TextStyle{} }

func TestPlainBodyRegistersParagraphs(t *testing.T) {
	b := PlainBody("Hello\rWorld\r", nil)
	if b.Len() != 12 {
		t.Fatalf("expected length 12, got %d", b.Len())
	}
	want := []Paragraph{{StartIndex: 5}, {StartIndex: 11}}
	if !reflect.DeepEqual(b.Paragraphs, want) {
		t.Fatalf("unexpected paragraphs: %+v", b.Paragraphs)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("valid body rejected: %v", err)
	}
}

func TestInsertShiftsOffsets(t *testing.T) {
	b := PlainBody("Hello\rWorld\r", nil)
	b.TextRuns = []TextRun{{Start: 6, End: 11, Style: boldStyle()}}

	if err := b.Insert(5, PlainBody("!!", nil)); err != nil {
		t.Fatal(err)
	}
	if b.DataStream != "Hello!!\rWorld\r" {
		t.Fatalf("unexpected stream: %q", b.DataStream)
	}
	if got := b.Paragraphs[0].StartIndex; got != 7 {
		t.Fatalf("first break should move to 7, got %d", got)
	}
	if got := b.TextRuns[0]; got.Start != 8 || got.End != 13 {
		t.Fatalf("run should shift to [8,13), got [%d,%d)", got.Start, got.End)
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("invariants violated after insert: %v", err)
	}
}

func TestInsertSplitsStraddledRun(t *testing.T) {
	b := PlainBody("abcdef\r", nil)
	b.TextRuns = []TextRun{{Start: 0, End: 6, Style: plainStyle()}}

	if err := b.Insert(3, PlainBody("XY", boldStyle())); err != nil {
		t.Fatal(err)
	}
	want := []TextRun{
		{Start: 0, End: 3, Style: plainStyle()},
		{Start: 3, End: 5, Style: boldStyle()},
		{Start: 5, End: 8, Style: plainStyle()},
	}
	if !reflect.DeepEqual(b.TextRuns, want) {
		t.Fatalf("unexpected runs: %+v", b.TextRuns)
	}
}

func TestDeleteReturnsInvertibleSlice(t *testing.T) {
	b := PlainBody("Hello\rWorld\r", nil)
	b.TextRuns = []TextRun{{Start: 0, End: 12, Style: boldStyle()}}
	before := b.Clone()

	removed, err := b.Delete(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b.DataStream != "Hellrld\r" {
		t.Fatalf("unexpected stream after delete: %q", b.DataStream)
	}
	if removed.DataStream != "o\rWo" {
		t.Fatalf("unexpected removed stream: %q", removed.DataStream)
	}
	if len(removed.Paragraphs) != 1 || removed.Paragraphs[0].StartIndex != 1 {
		t.Fatalf("removed slice should carry the break: %+v", removed.Paragraphs)
	}

	// Re-inserting the removed slice must restore the original body exactly.
	if err := b.Insert(4, removed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b, before) {
		t.Fatalf("delete+insert did not round trip:\n got  %+v\n want %+v", b, before)
	}
}

func TestDeleteRemovesCustomBlockInRange(t *testing.T) {
	b := PlainBody("ab\bcd\r", nil)
	b.CustomBlocks = []CustomBlock{{StartIndex: 2, BlockID: "d1"}}

	removed, err := b.Delete(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.CustomBlocks) != 0 {
		t.Fatalf("block should be gone, got %+v", b.CustomBlocks)
	}
	if len(removed.CustomBlocks) != 1 || removed.CustomBlocks[0].StartIndex != 1 {
		t.Fatalf("removed slice should carry the block: %+v", removed.CustomBlocks)
	}
}

func TestDeleteClipsCustomRange(t *testing.T) {
	b := PlainBody("abcdefgh\r", nil)
	b.CustomRanges = []CustomRange{{Start: 2, End: 8, RangeID: "c1", RangeType: "comment"}}
	before := b.Clone()

	removed, err := b.Delete(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []CustomRange{{Start: 2, End: 6, RangeID: "c1", RangeType: "comment"}}
	if !reflect.DeepEqual(b.CustomRanges, want) {
		t.Fatalf("unexpected clipped range: %+v", b.CustomRanges)
	}

	if err := b.Insert(4, removed); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(b, before) {
		t.Fatalf("custom range did not round trip: %+v", b.CustomRanges)
	}
}

func TestSliceRebasesSideTables(t *testing.T) {
	b := PlainBody("Hello\rWorld\r", nil)
	b.TextRuns = []TextRun{{Start: 6, End: 11, Style: boldStyle()}}

	sub := b.Slice(6, 11)
	if sub.DataStream != "World" {
		t.Fatalf("unexpected slice stream: %q", sub.DataStream)
	}
	want := []TextRun{{Start: 0, End: 5, Style: boldStyle()}}
	if !reflect.DeepEqual(sub.TextRuns, want) {
		t.Fatalf("unexpected slice runs: %+v", sub.TextRuns)
	}
	if len(sub.Paragraphs) != 0 {
		t.Fatalf("slice should not carry breaks outside the window: %+v", sub.Paragraphs)
	}
}

func TestNormalizeRunsMergesEqualNeighbours(t *testing.T) {
	b := &Body{
		DataStream: "abcdef\r",
		TextRuns: []TextRun{
			{Start: 3, End: 6, Style: boldStyle()},
			{Start: 0, End: 3, Style: boldStyle()},
		},
	}
	// Any edit canonicalizes the run table on the way out.
	if _, err := b.Delete(6, 1); err != nil {
		t.Fatal(err)
	}
	if len(b.TextRuns) != 1 || b.TextRuns[0].Start != 0 || b.TextRuns[0].End != 6 {
		t.Fatalf("runs should merge to [0,6): %+v", b.TextRuns)
	}
}

func TestDrawingStructuresStayConsistent(t *testing.T) {
	m := NewDocumentModel("u1", PlainBody("\b\r", nil))
	d := &Drawing{DrawingID: "d1", LayoutType: LayoutInline}

	if err := m.InsertDrawing(d); err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err == nil {
		t.Fatal("expected validation failure while the z-order entry is missing")
	}
	if err := m.InsertDrawingOrder(0, "d1"); err != nil {
		t.Fatal(err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("consistent model rejected: %v", err)
	}

	if err := m.InsertDrawing(&Drawing{DrawingID: "d1"}); err == nil {
		t.Fatal("duplicate drawing id must be rejected")
	}

	if err := m.DeleteDrawing("d1"); err != nil {
		t.Fatal(err)
	}
	if err := m.RemoveDrawingOrder(0); err != nil {
		t.Fatal(err)
	}
	if len(m.GetDrawings()) != 0 || len(m.GetDrawingsOrder()) != 0 {
		t.Fatalf("structures should be empty: %v %v", m.GetDrawings(), m.GetDrawingsOrder())
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	m := NewDocumentModel("u1", PlainBody("Hi\r", nil))
	snap := m.GetSnapshot()
	if err := m.GetBody().Insert(0, PlainBody("X", nil)); err != nil {
		t.Fatal(err)
	}
	if snap.Body.DataStream != "Hi\r" {
		t.Fatalf("snapshot aliased the live body: %q", snap.Body.DataStream)
	}
}
