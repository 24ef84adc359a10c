// internal/command/service.go
package command

import (
	"fmt"
	"sync"

	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

// Listener observes successfully executed commands.
type Listener func(id string, params interface{})

type listenerEntry struct {
	id int
	fn Listener
}

// Service is the command registry and dispatcher. Execution is synchronous:
// commands run to completion against one unit before the next begins, which
// is the ordering guarantee the transaction model relies on.
type Service struct {
	mu        sync.RWMutex
	commands  map[string]Command
	listeners []listenerEntry
	nextID    int
	collab    Collaborators
	events    *event.Manager
}

// NewService creates a service over the given collaborators.
func NewService(collab Collaborators) *Service {
	return &Service{
		commands: make(map[string]Command),
		collab:   collab,
	}
}

// SetEventManager wires the bus used to announce executed commands.
func (s *Service) SetEventManager(em *event.Manager) {
	s.events = em
}

// --- Collaborator accessors for handlers ---

func (s *Service) Units() UnitRegistry         { return s.collab.Units }
func (s *Service) Selection() SelectionService { return s.collab.Selection }
func (s *Service) Skeleton() SkeletonService   { return s.collab.Skeleton }
func (s *Service) UndoRedo() UndoRedoService   { return s.collab.UndoRedo }
func (s *Service) Clipboard() ClipboardService { return s.collab.Clipboard }

// Register adds a command. A duplicate id is a programming error and is
// rejected at setup time, never during steady-state dispatch.
func (s *Service) Register(cmd Command) error {
	if cmd.ID == "" || cmd.Handler == nil {
		return fmt.Errorf("command: registration needs an id and a handler")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.commands[cmd.ID]; exists {
		return fmt.Errorf("command: duplicate registration for %q", cmd.ID)
	}
	s.commands[cmd.ID] = cmd
	logger.Debugf("Command Service: registered %q", cmd.ID)
	return nil
}

// MustRegister registers or panics; used for the built-in command set where a
// duplicate means a broken build.
func (s *Service) MustRegister(cmd Command) {
	if err := s.Register(cmd); err != nil {
		panic(err)
	}
}

// SyncExecuteCommand runs a command to completion and reports success. An
// unknown id is a failed command, not a crash.
func (s *Service) SyncExecuteCommand(id string, params interface{}) bool {
	s.mu.RLock()
	cmd, ok := s.commands[id]
	s.mu.RUnlock()
	if !ok {
		logger.Warnf("Command Service: unknown command %q", id)
		return false
	}

	if !cmd.Handler(s, params) {
		logger.Debugf("Command Service: %q returned false", id)
		return false
	}

	s.notifyExecuted(id, params)
	return true
}

// ExecuteCommand is the public entry point. Execution is cooperative and
// single-threaded, so it shares the synchronous path.
func (s *Service) ExecuteCommand(id string, params interface{}) bool {
	return s.SyncExecuteCommand(id, params)
}

// OnCommandExecuted subscribes to successful executions and returns an
// unsubscribe token.
func (s *Service) OnCommandExecuted(l Listener) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.listeners {
			if entry.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Service) notifyExecuted(id string, params interface{}) {
	s.mu.RLock()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, entry := range listeners {
		entry.fn(id, params)
	}
	if s.events != nil {
		s.events.Dispatch(event.TypeCommandExecuted, event.CommandExecutedData{ID: id, Params: params})
	}
}
