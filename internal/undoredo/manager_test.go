package undoredo

import (
	"testing"
)

// recordingExecutor logs every replayed mutation id and can be told to fail.
type recordingExecutor struct {
	calls []string
	fail  map[string]bool
}

func (e *recordingExecutor) SyncExecuteCommand(id string, params interface{}) bool {
	e.calls = append(e.calls, id)
	return !e.fail[id]
}

func entryFor(unit, tag string) Entry {
	return Entry{
		UnitID:        unit,
		UndoMutations: []Mutation{{ID: "undo-" + tag}},
		RedoMutations: []Mutation{{ID: "redo-" + tag}},
	}
}

func TestUndoRedoReplayOrder(t *testing.T) {
	ex := &recordingExecutor{}
	m := NewManager(ex, 0)

	m.PushUndoRedo(Entry{
		UnitID: "u1",
		UndoMutations: []Mutation{
			{ID: "undo-first"},
			{ID: "undo-second"},
		},
		RedoMutations: []Mutation{{ID: "redo"}},
	})

	if !m.Undo("u1") {
		t.Fatal("undo should succeed")
	}
	// Mutations replay in the exact order the transaction stored them.
	if len(ex.calls) != 2 || ex.calls[0] != "undo-first" || ex.calls[1] != "undo-second" {
		t.Fatalf("unexpected replay order: %v", ex.calls)
	}

	ex.calls = nil
	if !m.Redo("u1") {
		t.Fatal("redo should succeed")
	}
	if len(ex.calls) != 1 || ex.calls[0] != "redo" {
		t.Fatalf("unexpected redo replay: %v", ex.calls)
	}
	if !m.CanUndo("u1") || m.CanRedo("u1") {
		t.Fatal("entry should be back on the undo stack")
	}
}

func TestFreshEditClearsRedo(t *testing.T) {
	ex := &recordingExecutor{}
	m := NewManager(ex, 0)

	m.PushUndoRedo(entryFor("u1", "a"))
	if !m.Undo("u1") {
		t.Fatal("undo should succeed")
	}
	if !m.CanRedo("u1") {
		t.Fatal("redo should be available after undo")
	}

	m.PushUndoRedo(entryFor("u1", "b"))
	if m.CanRedo("u1") {
		t.Fatal("a fresh transaction must clear the redo stack")
	}
}

func TestStackEviction(t *testing.T) {
	ex := &recordingExecutor{}
	m := NewManager(ex, 2)

	m.PushUndoRedo(entryFor("u1", "a"))
	m.PushUndoRedo(entryFor("u1", "b"))
	m.PushUndoRedo(entryFor("u1", "c"))

	if !m.Undo("u1") || !m.Undo("u1") {
		t.Fatal("two undos should succeed")
	}
	if m.Undo("u1") {
		t.Fatal("oldest transaction should have been evicted")
	}
	// The surviving entries are the two most recent, newest first.
	if ex.calls[0] != "undo-c" || ex.calls[1] != "undo-b" {
		t.Fatalf("unexpected replay order: %v", ex.calls)
	}
}

func TestFailedReplayKeepsEntry(t *testing.T) {
	ex := &recordingExecutor{fail: map[string]bool{"undo-a": true}}
	m := NewManager(ex, 0)

	m.PushUndoRedo(entryFor("u1", "a"))
	if m.Undo("u1") {
		t.Fatal("undo should report the replay failure")
	}
	// The entry stays undoable; nothing moved to the redo stack.
	if !m.CanUndo("u1") || m.CanRedo("u1") {
		t.Fatal("failed undo must leave the stacks as they were")
	}
}

func TestStacksArePerUnit(t *testing.T) {
	ex := &recordingExecutor{}
	m := NewManager(ex, 0)

	m.PushUndoRedo(entryFor("u1", "a"))
	if m.CanUndo("u2") {
		t.Fatal("unit u2 has no history")
	}
	if m.Undo("u2") {
		t.Fatal("undo on an empty unit must be a no-op")
	}

	m.Clear("u1")
	if m.CanUndo("u1") {
		t.Fatal("clear should drop the unit's history")
	}
}
