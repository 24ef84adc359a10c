// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Document Events
	TypeDocModified      // Fired after a mutation touches a unit's body or drawings
	TypeCommandExecuted  // Fired after any command on the bus succeeds
	TypeSelectionMoved   // Fired when the active text range changes
	TypeUndoStateChanged // Fired when a unit's undo/redo stacks change

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// DocModifiedData identifies the unit whose model changed.
type DocModifiedData struct {
	UnitID string
}

// CommandExecutedData carries the id and params of a completed command.
type CommandExecutedData struct {
	ID     string
	Params interface{}
}

// SelectionMovedData carries the new active range bounds.
type SelectionMovedData struct {
	UnitID      string
	StartOffset int
	EndOffset   int
}

// UndoStateChangedData reports stack availability for UI affordances.
type UndoStateChangedData struct {
	UnitID  string
	CanUndo bool
	CanRedo bool
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial state later.
type AppReadyData struct{}
