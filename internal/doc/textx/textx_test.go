package textx

import (
	"reflect"
	"testing"

	"github.com/bethropolis/scribe/internal/doc"
)

func TestBuilderCoalescesAdjacentActions(t *testing.T) {
	b := NewBuilder()
	b.Retain(3)
	b.Retain(2)
	b.Insert(doc.PlainBody("ab", nil))
	b.Insert(doc.PlainBody("cd", nil))
	b.Delete(1)
	b.Delete(4)
	b.Retain(0) // no-op, must not emit

	got := b.Serialize()
	if len(got) != 3 {
		t.Fatalf("expected 3 coalesced actions, got %d: %+v", len(got), got)
	}
	if got[0].Type != ActionRetain || got[0].Len != 5 {
		t.Fatalf("unexpected retain: %+v", got[0])
	}
	if got[1].Type != ActionInsert || got[1].Body.DataStream != "abcd" {
		t.Fatalf("unexpected insert: %+v", got[1])
	}
	if got[2].Type != ActionDelete || got[2].Len != 5 {
		t.Fatalf("unexpected delete: %+v", got[2])
	}
}

func TestApplyWalksTheStream(t *testing.T) {
	body := doc.PlainBody("Hello\r", nil)
	actions := []Action{
		Retain(5),
		InsertText(" there", nil),
	}
	if err := Apply(body, actions); err != nil {
		t.Fatal(err)
	}
	if body.DataStream != "Hello there\r" {
		t.Fatalf("unexpected stream: %q", body.DataStream)
	}
}

func TestApplyRejectsWalkPastEnd(t *testing.T) {
	body := doc.PlainBody("ab\r", nil)
	if err := Apply(body, []Action{Retain(4)}); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := Apply(body, []Action{Retain(2), Delete(2)}); err == nil {
		t.Fatal("expected delete past end to fail")
	}
}

func TestComposeIsEquivalentToSequentialApply(t *testing.T) {
	a := []Action{Retain(2), InsertText("XY", nil), Delete(1)}
	b := []Action{Retain(1), Delete(2), InsertText("z", nil)}

	seq := doc.PlainBody("abcd\r", nil)
	if err := Apply(seq, a); err != nil {
		t.Fatal(err)
	}
	if err := Apply(seq, b); err != nil {
		t.Fatal(err)
	}

	composed := doc.PlainBody("abcd\r", nil)
	if err := Apply(composed, Compose(a, b)); err != nil {
		t.Fatal(err)
	}
	if composed.DataStream != seq.DataStream {
		t.Fatalf("compose diverged: sequential %q, composed %q", seq.DataStream, composed.DataStream)
	}
}

func TestComposeCancelsInsertAgainstDelete(t *testing.T) {
	a := []Action{Retain(5), InsertText("X", nil)}
	b := []Action{Retain(5), Delete(1)}

	got := Compose(a, b)
	want := []Action{Retain(5)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected the insert to cancel, got %+v", got)
	}
}

func TestComposePassesIndependentTailsThrough(t *testing.T) {
	a := []Action{Retain(1), InsertText("A", nil)}
	b := []Action{Retain(5), Delete(1)}

	body := doc.PlainBody("12345\r", nil)
	if err := Apply(body, Compose(a, b)); err != nil {
		t.Fatal(err)
	}
	if body.DataStream != "1A234\r" {
		t.Fatalf("unexpected stream: %q", body.DataStream)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	base := doc.PlainBody("Hello\rWorld\r", nil)
	base.TextRuns = []doc.TextRun{{Start: 6, End: 11, Style: &doc.TextStyle{Italic: true}}}
	before := base.Clone()

	actions := []Action{
		Retain(3),
		Delete(4),
		InsertText("??", nil),
	}
	inv := Invert(actions, base)

	if err := Apply(base, actions); err != nil {
		t.Fatal(err)
	}
	if base.DataStream != "Hel??orld\r" {
		t.Fatalf("unexpected applied stream: %q", base.DataStream)
	}
	if err := Apply(base, inv); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(base, before) {
		t.Fatalf("invert did not restore the body:\n got  %+v\n want %+v", base, before)
	}
}

func TestBaseAndTargetLen(t *testing.T) {
	actions := []Action{Retain(3), InsertText("ab", nil), Delete(2)}
	if got := BaseLen(actions); got != 5 {
		t.Fatalf("base length should be 5, got %d", got)
	}
	if got := TargetLen(actions); got != 5 {
		t.Fatalf("target length should be 5, got %d", got)
	}
}
