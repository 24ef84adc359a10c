// Package app assembles the editor: document registry, selection, skeleton,
// undo/redo, clipboard and the command bus on one side; terminal screen,
// renderer, status bar and input processing on the other. The event loop is
// single-threaded, so commands run to completion between keystrokes.
package app

import (
	"fmt"

	"github.com/bethropolis/scribe/internal/clipboard"
	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/commands"
	"github.com/bethropolis/scribe/internal/config"
	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/input"
	"github.com/bethropolis/scribe/internal/logger"
	"github.com/bethropolis/scribe/internal/selection"
	"github.com/bethropolis/scribe/internal/skeleton"
	"github.com/bethropolis/scribe/internal/statusbar"
	"github.com/bethropolis/scribe/internal/tui"
	"github.com/bethropolis/scribe/internal/undoredo"
	"github.com/gdamore/tcell/v2"
)

const mainUnitID = "main"

// App is the running editor instance.
type App struct {
	cfg *config.Config

	tuiManager *tui.TUI
	renderer   *tui.Renderer
	statusBar  *statusbar.StatusBar
	processor  *input.Processor

	events    *event.Manager
	units     *doc.Registry
	selection *selection.Manager
	skeleton  *skeleton.Provider
	undoRedo  *undoredo.Manager
	clipboard *clipboard.Manager
	commands  *command.Service

	quit        bool
	needsRedraw bool
}

// NewApp creates and wires the application.
func NewApp(cfg *config.Config) (*App, error) {
	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("app: terminal setup failed: %w", err)
	}

	a := &App{
		cfg:        cfg,
		tuiManager: tuiManager,
		renderer:   tui.NewRenderer(tuiManager, cfg.Editor.ScrollOff),
		statusBar:  statusbar.New(statusbar.DefaultConfig()),
		processor:  input.NewProcessor(),
		events:     event.NewManager(),
		units:      doc.NewRegistry(),
		selection:  selection.NewManager(),
		undoRedo:   undoredo.NewManager(nil, cfg.Editor.MaxUndoStack),
		clipboard:  clipboard.NewManager(cfg.Editor.SystemClipboard),
	}
	a.skeleton = skeleton.NewProvider(a.units)

	a.commands = command.NewService(command.Collaborators{
		Units:     a.units,
		Selection: a.selection,
		Skeleton:  a.skeleton,
		UndoRedo:  a.undoRedo,
		Clipboard: a.clipboard,
	})
	a.undoRedo.SetExecutor(a.commands)
	a.undoRedo.SetEventManager(a.events)
	a.selection.SetEventManager(a.events)
	a.commands.SetEventManager(a.events)
	commands.RegisterAll(a.commands, a.events)

	a.units.Add(doc.NewDocumentModel(mainUnitID, nil))
	a.selection.SetActiveRange(mainUnitID, selection.Caret(0))
	a.statusBar.SetUnitInfo(mainUnitID)

	a.subscribeToEvents()
	return a, nil
}

// subscribeToEvents wires model changes back into the UI.
func (a *App) subscribeToEvents() {
	a.events.Subscribe(event.TypeDocModified, func(e event.Event) bool {
		a.needsRedraw = true
		return false
	})
	a.events.Subscribe(event.TypeSelectionMoved, func(e event.Event) bool {
		a.needsRedraw = true
		if data, ok := e.Data.(event.SelectionMovedData); ok {
			a.updateCaretInfo(data.UnitID, data.StartOffset)
		}
		return false
	})
	a.events.Subscribe(event.TypeUndoStateChanged, func(e event.Event) bool {
		a.needsRedraw = true
		if data, ok := e.Data.(event.UndoStateChangedData); ok {
			a.statusBar.SetUndoInfo(data.CanUndo, data.CanRedo)
		}
		return false
	})
}

func (a *App) updateCaretInfo(unitID string, offset int) {
	m, ok := a.units.Doc(unitID)
	if !ok {
		return
	}
	body := m.GetBody()
	pi := body.ParagraphIndexAt(offset)
	if pi < 0 {
		pi = len(body.Paragraphs) - 1
	}
	a.statusBar.SetCaretInfo(pi, tui.CaretColumn(body, offset))
}

// Run is the main event loop. It blocks until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.draw()

	for !a.quit {
		ev := a.tuiManager.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			a.handleKey(tev)
		case *tcell.EventResize:
			a.tuiManager.Screen().Sync()
			a.needsRedraw = true
		case nil:
			// Screen finalized under us.
			return nil
		}
		if a.needsRedraw {
			a.draw()
			a.needsRedraw = false
		}
	}

	a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	return nil
}

func (a *App) draw() {
	a.tuiManager.Clear()
	m := a.units.CurrentDoc()
	if m == nil {
		a.tuiManager.Show()
		return
	}
	ar, _ := a.selection.ActiveRange(m.GetUnitID())
	a.renderer.Draw(m, ar, a.cfg.Editor.StatusBarHeight)
	width, height := a.tuiManager.Size()
	a.statusBar.Draw(a.tuiManager.Screen(), width, height)
	a.tuiManager.Show()
}

// handleKey decodes one key event and routes it to a command or a caret
// movement.
func (a *App) handleKey(ev *tcell.EventKey) {
	actionEvent := a.processor.ProcessEvent(ev)

	switch actionEvent.Action {
	case input.ActionQuit:
		a.quit = true

	case input.ActionInsertRune:
		a.commands.ExecuteCommand(commands.InsertTextCommandID, commands.InsertTextParams{Text: string(actionEvent.Rune)})
	case input.ActionInsertBreak:
		a.commands.ExecuteCommand(commands.InsertTextCommandID, commands.InsertTextParams{Text: string(doc.ParagraphBreak)})
	case input.ActionDeleteBackward:
		a.commands.ExecuteCommand(commands.DeleteLeftCommandID, nil)
	case input.ActionDeleteForward:
		a.commands.ExecuteCommand(commands.DeleteRightCommandID, nil)
	case input.ActionCut:
		a.commands.ExecuteCommand(commands.CutContentCommandID, nil)
	case input.ActionUndo:
		a.commands.ExecuteCommand(commands.UndoCommandID, nil)
	case input.ActionRedo:
		a.commands.ExecuteCommand(commands.RedoCommandID, nil)

	case input.ActionMoveLeft, input.ActionMoveRight, input.ActionMoveUp,
		input.ActionMoveDown, input.ActionMoveHome, input.ActionMoveEnd:
		a.moveCaret(actionEvent.Action)

	default:
		logger.Debugf("App: unhandled key %v", ev.Name())
	}
}

// moveCaret repositions the caret by glyphs and paragraphs. Movement never
// goes through the command bus; it is ephemeral state, not a transaction.
func (a *App) moveCaret(action input.Action) {
	m := a.units.CurrentDoc()
	if m == nil {
		return
	}
	unitID := m.GetUnitID()
	ar, ok := a.selection.ActiveRange(unitID)
	if !ok {
		return
	}
	body := m.GetBody()
	off := ar.StartOffset
	maxOff := body.Len() - 1 // The final paragraph break is the last valid slot

	switch action {
	case input.ActionMoveLeft:
		if off > 0 {
			if glyph, found := a.skeleton.FindGlyphByCharIndex(unitID, off-1); found {
				off = glyph.StartIndex
			} else {
				off--
			}
		}
	case input.ActionMoveRight:
		if off < maxOff {
			if glyph, found := a.skeleton.FindGlyphByCharIndex(unitID, off); found {
				off = glyph.StartIndex + glyph.Count
			} else {
				off++
			}
		}
	case input.ActionMoveUp, input.ActionMoveDown:
		off = a.verticalMove(body, off, action == input.ActionMoveDown)
	case input.ActionMoveHome:
		if pi := body.ParagraphIndexAt(off); pi >= 0 {
			off = body.ParagraphStart(pi)
		}
	case input.ActionMoveEnd:
		if pi := body.ParagraphIndexAt(off); pi >= 0 {
			off = body.Paragraphs[pi].StartIndex
		}
	}

	if off < 0 {
		off = 0
	}
	if off > maxOff {
		off = maxOff
	}
	if off != ar.StartOffset || !ar.Collapsed() {
		a.selection.SetActiveRange(unitID, selection.Caret(off))
	}
}

// verticalMove keeps the caret's column while switching paragraphs.
func (a *App) verticalMove(body *doc.Body, off int, down bool) int {
	pi := body.ParagraphIndexAt(off)
	if pi < 0 {
		return off
	}
	col := off - body.ParagraphStart(pi)

	target := pi - 1
	if down {
		target = pi + 1
	}
	if target < 0 || target >= len(body.Paragraphs) {
		return off
	}
	start := body.ParagraphStart(target)
	end := body.Paragraphs[target].StartIndex
	if start+col > end {
		return end
	}
	return start + col
}
