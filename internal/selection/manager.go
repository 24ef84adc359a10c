// Package selection tracks the text cursor and selection ranges per document
// unit. Commands read the active range to decide what to do and write a new
// collapsed range back when they finish; nothing else moves the caret.
package selection

import (
	"sync"

	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

// Range is a half-open span [StartOffset, EndOffset) of rune offsets into a
// segment's data stream. A collapsed range is the caret.
type Range struct {
	StartOffset int
	EndOffset   int
	SegmentID   string         // Empty means the main body
	Style       *doc.TextStyle // Typing style carried by the caret, if any
}

// Collapsed reports whether the range is a bare caret.
func (r Range) Collapsed() bool {
	return r.StartOffset == r.EndOffset
}

// Collapse returns the caret at the range's start.
func (r Range) Collapse() Range {
	return Range{StartOffset: r.StartOffset, EndOffset: r.StartOffset, SegmentID: r.SegmentID, Style: r.Style}
}

// Caret builds a collapsed range at offset.
func Caret(offset int) Range {
	return Range{StartOffset: offset, EndOffset: offset}
}

// Manager holds the ranges for every unit. The first range in a unit's list
// is the active one.
type Manager struct {
	mu     sync.RWMutex
	ranges map[string][]Range
	events *event.Manager
}

// NewManager creates an empty selection manager.
func NewManager() *Manager {
	return &Manager{ranges: make(map[string][]Range)}
}

// SetEventManager wires the bus used to announce selection movement.
func (m *Manager) SetEventManager(em *event.Manager) {
	m.events = em
}

// ActiveRange returns the unit's active range, if it has one.
func (m *Manager) ActiveRange(unitID string) (Range, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rs := m.ranges[unitID]
	if len(rs) == 0 {
		return Range{}, false
	}
	return rs[0], true
}

// Ranges returns a copy of all current ranges for the unit.
func (m *Manager) Ranges(unitID string) []Range {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Range(nil), m.ranges[unitID]...)
}

// SetActiveRange replaces the unit's ranges with the single given one.
func (m *Manager) SetActiveRange(unitID string, r Range) {
	if r.EndOffset < r.StartOffset {
		r.StartOffset, r.EndOffset = r.EndOffset, r.StartOffset
	}
	m.mu.Lock()
	m.ranges[unitID] = []Range{r}
	m.mu.Unlock()

	logger.Debugf("Selection: unit %s active range [%d, %d)", unitID, r.StartOffset, r.EndOffset)
	if m.events != nil {
		m.events.Dispatch(event.TypeSelectionMoved, event.SelectionMovedData{
			UnitID:      unitID,
			StartOffset: r.StartOffset,
			EndOffset:   r.EndOffset,
		})
	}
}

// AddRange appends a secondary range (multi-cursor input paths).
func (m *Manager) AddRange(unitID string, r Range) {
	m.mu.Lock()
	m.ranges[unitID] = append(m.ranges[unitID], r)
	m.mu.Unlock()
}

// Clear drops every range for the unit.
func (m *Manager) Clear(unitID string) {
	m.mu.Lock()
	delete(m.ranges, unitID)
	m.mu.Unlock()
}
