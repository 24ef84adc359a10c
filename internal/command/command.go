// Package command is the dispatch bus every user intent flows through. A
// command is a string id plus a handler; mutation handlers register on the
// same bus and are the only step allowed to touch a unit's model, so a
// transaction is exactly the mutations one command dispatched.
package command

import (
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/selection"
	"github.com/bethropolis/scribe/internal/skeleton"
	"github.com/bethropolis/scribe/internal/undoredo"
)

// Type distinguishes what a registration is allowed to do.
type Type int

const (
	// TypeCommand handlers orchestrate: they read state, compose operation
	// lists, and dispatch mutations and sub-commands.
	TypeCommand Type = iota
	// TypeOperation handlers adjust ephemeral state (selection) and are not
	// recorded for undo.
	TypeOperation
	// TypeMutation handlers are pure appliers of composed operation lists to
	// one unit's model.
	TypeMutation
)

// Handler runs one command. The boolean result is the command's whole error
// surface: false means "nothing happened", and the keystroke is silently a
// no-op from the user's point of view.
type Handler func(s *Service, params interface{}) bool

// Command pairs an id with its handler.
type Command struct {
	ID      string
	Type    Type
	Handler Handler
}

// --- Collaborator interfaces (implementations live in their own packages) ---

// UnitRegistry resolves document units.
type UnitRegistry interface {
	CurrentDoc() *doc.DocumentModel
	Doc(unitID string) (*doc.DocumentModel, bool)
}

// SelectionService exposes the active range and rewrites it when a command
// finishes.
type SelectionService interface {
	ActiveRange(unitID string) (selection.Range, bool)
	Ranges(unitID string) []selection.Range
	SetActiveRange(unitID string, r selection.Range)
}

// SkeletonService classifies stream positions without exposing layout.
type SkeletonService interface {
	FindGlyphByCharIndex(unitID string, offset int) (skeleton.Glyph, bool)
}

// UndoRedoService records and replays transactions.
type UndoRedoService interface {
	PushUndoRedo(e undoredo.Entry)
	Undo(unitID string) bool
	Redo(unitID string) bool
}

// ClipboardService receives content removed by cut.
type ClipboardService interface {
	Write(text string) error
}

// Collaborators bundles the external services handlers may reach.
type Collaborators struct {
	Units     UnitRegistry
	Selection SelectionService
	Skeleton  SkeletonService
	UndoRedo  UndoRedoService
	Clipboard ClipboardService
}
