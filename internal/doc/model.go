// internal/doc/model.go
package doc

import (
	"errors"
	"fmt"
)

var ErrDrawingExists = errors.New("doc: drawing id already registered")
var ErrDrawingNotFound = errors.New("doc: drawing id not registered")

// DocumentModel is one document unit. It exclusively owns its body and its
// drawing structures; commands and mutations reach them only through the
// unit's accessors and never hold references across transactions.
type DocumentModel struct {
	unitID        string
	body          *Body
	drawings      map[string]*Drawing
	drawingsOrder []string
}

// Snapshot is a deep copy of a unit's observable state, used for undo
// round-trip comparison and debugging.
type Snapshot struct {
	UnitID        string
	Body          *Body
	Drawings      map[string]*Drawing
	DrawingsOrder []string
}

// NewDocumentModel creates a unit around an existing body. A nil body gets an
// empty single-paragraph one.
func NewDocumentModel(unitID string, body *Body) *DocumentModel {
	if body == nil {
		body = NewBody()
	}
	return &DocumentModel{
		unitID:   unitID,
		body:     body,
		drawings: make(map[string]*Drawing),
	}
}

// GetUnitID returns the unit's identifier.
func (m *DocumentModel) GetUnitID() string { return m.unitID }

// GetBody returns the live body. Callers mutate it only through composed
// actions applied by a mutation handler.
func (m *DocumentModel) GetBody() *Body { return m.body }

// GetDrawings returns the live drawing map.
func (m *DocumentModel) GetDrawings() map[string]*Drawing { return m.drawings }

// GetDrawingsOrder returns the live z-order list.
func (m *DocumentModel) GetDrawingsOrder() []string { return m.drawingsOrder }

// GetDrawing looks up one drawing by id.
func (m *DocumentModel) GetDrawing(id string) (*Drawing, bool) {
	d, ok := m.drawings[id]
	return d, ok
}

// DrawingOrderIndex returns the position of id in the z-order list, or -1.
func (m *DocumentModel) DrawingOrderIndex(id string) int {
	for i, v := range m.drawingsOrder {
		if v == id {
			return i
		}
	}
	return -1
}

// GetSnapshot deep-copies the unit's observable state.
func (m *DocumentModel) GetSnapshot() Snapshot {
	s := Snapshot{
		UnitID:   m.unitID,
		Body:     m.body.Clone(),
		Drawings: make(map[string]*Drawing, len(m.drawings)),
	}
	for id, d := range m.drawings {
		s.Drawings[id] = d.Clone()
	}
	if len(m.drawingsOrder) > 0 {
		s.DrawingsOrder = append([]string(nil), m.drawingsOrder...)
	}
	return s
}

// Clone duplicates the whole unit. Mutation application validates composed
// operation lists against a clone before touching the live model.
func (m *DocumentModel) Clone() *DocumentModel {
	s := m.GetSnapshot()
	return &DocumentModel{
		unitID:        s.UnitID,
		body:          s.Body,
		drawings:      s.Drawings,
		drawingsOrder: s.DrawingsOrder,
	}
}

// --- Granular drawing structure edits (used by the operation applier) ---

// InsertDrawing registers a drawing descriptor. The target id must be free.
func (m *DocumentModel) InsertDrawing(d *Drawing) error {
	if d == nil {
		return errors.New("doc: nil drawing")
	}
	if _, exists := m.drawings[d.DrawingID]; exists {
		return fmt.Errorf("%w: %s", ErrDrawingExists, d.DrawingID)
	}
	m.drawings[d.DrawingID] = d.Clone()
	return nil
}

// DeleteDrawing removes a drawing descriptor from the map.
func (m *DocumentModel) DeleteDrawing(id string) error {
	if _, exists := m.drawings[id]; !exists {
		return fmt.Errorf("%w: %s", ErrDrawingNotFound, id)
	}
	delete(m.drawings, id)
	return nil
}

// InsertDrawingOrder splices id into the z-order list at index.
func (m *DocumentModel) InsertDrawingOrder(index int, id string) error {
	if index < 0 || index > len(m.drawingsOrder) {
		return ErrOutOfBounds
	}
	m.drawingsOrder = append(m.drawingsOrder, "")
	copy(m.drawingsOrder[index+1:], m.drawingsOrder[index:])
	m.drawingsOrder[index] = id
	return nil
}

// RemoveDrawingOrder removes the z-order entry at index.
func (m *DocumentModel) RemoveDrawingOrder(index int) error {
	if index < 0 || index >= len(m.drawingsOrder) {
		return ErrOutOfBounds
	}
	m.drawingsOrder = append(m.drawingsOrder[:index], m.drawingsOrder[index+1:]...)
	return nil
}

// Validate checks the body invariants plus drawing/order set equality: every
// ordered id has a descriptor and vice versa.
func (m *DocumentModel) Validate() error {
	if err := m.body.Validate(); err != nil {
		return err
	}
	if len(m.drawings) != len(m.drawingsOrder) {
		return errors.New("doc: drawings and drawingsOrder disagree")
	}
	for _, id := range m.drawingsOrder {
		if _, ok := m.drawings[id]; !ok {
			return fmt.Errorf("doc: ordered drawing %q has no descriptor", id)
		}
	}
	return nil
}
