// Package undoredo keeps the per-unit transaction log: every successfully
// executed command pushes one entry pairing the mutations that redo it with
// the mutations that undo it, and replay happens by dispatching those
// mutations back through the command bus.
package undoredo

import (
	"sync"

	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

const DefaultMaxStack = 100

// Mutation is one (mutationId, params) pair to replay.
type Mutation struct {
	ID     string
	Params interface{}
}

// Entry is one atomic transaction on a unit's stacks. UndoMutations and
// RedoMutations are replayed in the exact order they are stored.
type Entry struct {
	UnitID        string
	UndoMutations []Mutation
	RedoMutations []Mutation
}

// Executor dispatches a mutation back into the command service.
type Executor interface {
	SyncExecuteCommand(id string, params interface{}) bool
}

// Manager owns the undo and redo stacks for every unit. The stacks are the
// single point of serialization between commands on a unit.
type Manager struct {
	mu       sync.Mutex
	executor Executor
	events   *event.Manager
	maxStack int
	undo     map[string][]Entry
	redo     map[string][]Entry
}

// NewManager creates a manager replaying through the given executor.
func NewManager(executor Executor, maxStack int) *Manager {
	if maxStack <= 0 {
		maxStack = DefaultMaxStack
	}
	return &Manager{
		executor: executor,
		maxStack: maxStack,
		undo:     make(map[string][]Entry),
		redo:     make(map[string][]Entry),
	}
}

// SetEventManager wires the bus used to announce stack changes.
func (m *Manager) SetEventManager(em *event.Manager) {
	m.events = em
}

// SetExecutor wires the command service replay goes through. The manager and
// the service reference each other, so one of them is attached after both
// exist.
func (m *Manager) SetExecutor(executor Executor) {
	m.executor = executor
}

// PushUndoRedo records a completed transaction, clearing the unit's redo
// history the way any fresh edit does.
func (m *Manager) PushUndoRedo(e Entry) {
	m.mu.Lock()
	stack := append(m.undo[e.UnitID], e)
	if len(stack) > m.maxStack {
		// Drop the oldest transaction (simple FIFO eviction).
		stack = stack[len(stack)-m.maxStack:]
	}
	m.undo[e.UnitID] = stack
	delete(m.redo, e.UnitID)
	m.mu.Unlock()

	logger.Debugf("UndoRedo: pushed transaction for unit %s (depth %d)", e.UnitID, len(stack))
	m.notify(e.UnitID)
}

// Undo replays the most recent transaction's undo mutations and moves the
// entry to the redo stack. Returns false when there is nothing to undo or a
// mutation fails.
func (m *Manager) Undo(unitID string) bool {
	m.mu.Lock()
	stack := m.undo[unitID]
	if len(stack) == 0 {
		m.mu.Unlock()
		logger.Debugf("UndoRedo: nothing to undo for unit %s", unitID)
		return false
	}
	entry := stack[len(stack)-1]
	m.undo[unitID] = stack[:len(stack)-1]
	m.mu.Unlock()

	if !m.replay(entry.UndoMutations) {
		logger.Errorf("UndoRedo: undo replay failed for unit %s", unitID)
		// Put the entry back so state and stack stay consistent.
		m.mu.Lock()
		m.undo[unitID] = append(m.undo[unitID], entry)
		m.mu.Unlock()
		return false
	}

	m.mu.Lock()
	m.redo[unitID] = append(m.redo[unitID], entry)
	m.mu.Unlock()
	m.notify(unitID)
	return true
}

// Redo replays the most recently undone transaction's redo mutations and
// moves the entry back to the undo stack.
func (m *Manager) Redo(unitID string) bool {
	m.mu.Lock()
	stack := m.redo[unitID]
	if len(stack) == 0 {
		m.mu.Unlock()
		logger.Debugf("UndoRedo: nothing to redo for unit %s", unitID)
		return false
	}
	entry := stack[len(stack)-1]
	m.redo[unitID] = stack[:len(stack)-1]
	m.mu.Unlock()

	if !m.replay(entry.RedoMutations) {
		logger.Errorf("UndoRedo: redo replay failed for unit %s", unitID)
		m.mu.Lock()
		m.redo[unitID] = append(m.redo[unitID], entry)
		m.mu.Unlock()
		return false
	}

	m.mu.Lock()
	m.undo[unitID] = append(m.undo[unitID], entry)
	m.mu.Unlock()
	m.notify(unitID)
	return true
}

// replay dispatches mutations in stored order, stopping at the first failure.
func (m *Manager) replay(mutations []Mutation) bool {
	if m.executor == nil {
		return false
	}
	for _, mut := range mutations {
		if !m.executor.SyncExecuteCommand(mut.ID, mut.Params) {
			return false
		}
	}
	return true
}

// CanUndo reports whether the unit has transactions to undo.
func (m *Manager) CanUndo(unitID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo[unitID]) > 0
}

// CanRedo reports whether the unit has undone transactions to redo.
func (m *Manager) CanRedo(unitID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo[unitID]) > 0
}

// Clear resets both stacks for a unit. Call this on unit load.
func (m *Manager) Clear(unitID string) {
	m.mu.Lock()
	delete(m.undo, unitID)
	delete(m.redo, unitID)
	m.mu.Unlock()
	m.notify(unitID)
}

func (m *Manager) notify(unitID string) {
	if m.events == nil {
		return
	}
	m.events.Dispatch(event.TypeUndoStateChanged, event.UndoStateChangedData{
		UnitID:  unitID,
		CanUndo: m.CanUndo(unitID),
		CanRedo: m.CanRedo(unitID),
	})
}
