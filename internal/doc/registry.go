// internal/doc/registry.go
package doc

import "sync"

// Registry tracks the open document units and which one is focused. Each unit
// appears exactly once; the registry never copies models.
type Registry struct {
	mu      sync.RWMutex
	units   map[string]*DocumentModel
	current string
}

// NewRegistry creates an empty unit registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]*DocumentModel)}
}

// Add registers a unit. The first unit added becomes current.
func (r *Registry) Add(m *DocumentModel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[m.GetUnitID()] = m
	if r.current == "" {
		r.current = m.GetUnitID()
	}
}

// Doc returns the unit with the given id.
func (r *Registry) Doc(unitID string) (*DocumentModel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.units[unitID]
	return m, ok
}

// CurrentDoc returns the focused unit, or nil when nothing is open.
func (r *Registry) CurrentDoc() *DocumentModel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.units[r.current]
}

// SetCurrent switches focus to an already-registered unit.
func (r *Registry) SetCurrent(unitID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.units[unitID]; !ok {
		return false
	}
	r.current = unitID
	return true
}
