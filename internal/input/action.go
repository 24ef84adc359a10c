// Package input translates terminal key events into editor actions. The
// processor knows nothing about documents or commands; it only decodes keys.
package input

// Action represents an operation the application should perform.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit

	// --- Caret Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome // Beginning of paragraph
	ActionMoveEnd  // End of paragraph

	// --- Document Edits ---
	ActionInsertRune // Carries the rune to type
	ActionInsertBreak
	ActionDeleteBackward // Backspace
	ActionDeleteForward  // Delete
	ActionCut
	ActionUndo
	ActionRedo
)

// ActionEvent is a decoded input event plus its payload.
type ActionEvent struct {
	Action Action
	Rune   rune // Set for ActionInsertRune
}
