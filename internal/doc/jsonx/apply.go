// internal/doc/jsonx/apply.go
package jsonx

import (
	"fmt"
	"reflect"

	"github.com/bethropolis/scribe/internal/doc"
	"github.com/bethropolis/scribe/internal/doc/textx"
)

// Apply runs a composed operation list against a unit, all-or-nothing: the
// list is first replayed against a clone, and only if every precondition and
// bound holds is it applied to the live model. A failed list therefore leaves
// the unit untouched, which is what lets a failed command be a silent no-op.
func Apply(m *doc.DocumentModel, ops []Op) error {
	if err := applyTo(m.Clone(), ops); err != nil {
		return err
	}
	return applyTo(m, ops)
}

func applyTo(m *doc.DocumentModel, ops []Op) error {
	for _, op := range ops {
		if err := applyOne(m, op); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(m *doc.DocumentModel, op Op) error {
	if op.Type == OpEdit {
		return textx.Apply(m.GetBody(), op.Actions)
	}
	if len(op.Path) < 2 {
		return ErrBadPath
	}
	root, ok := op.Path[0].(string)
	if !ok {
		return ErrBadPath
	}
	switch root {
	case "drawings":
		return applyDrawing(m, op)
	case "drawingsOrder":
		return applyDrawingOrder(m, op)
	case "body":
		return applyBodyNode(m, op)
	default:
		return fmt.Errorf("%w: %v", ErrBadPath, op.Path)
	}
}

func applyDrawing(m *doc.DocumentModel, op Op) error {
	id, ok := op.Path[1].(string)
	if !ok {
		return ErrBadPath
	}
	current, exists := m.GetDrawing(id)
	switch op.Type {
	case OpInsert:
		if exists {
			return fmt.Errorf("%w: drawing %q already present", ErrConflict, id)
		}
		d, ok := op.Value.(*doc.Drawing)
		if !ok {
			return fmt.Errorf("%w: drawings insert needs *doc.Drawing", ErrBadPath)
		}
		return m.InsertDrawing(d)
	case OpRemove:
		if !exists || !reflect.DeepEqual(current, op.OldValue) {
			return fmt.Errorf("%w: drawing %q", ErrConflict, id)
		}
		return m.DeleteDrawing(id)
	case OpReplace:
		if !exists || !reflect.DeepEqual(current, op.OldValue) {
			return fmt.Errorf("%w: drawing %q", ErrConflict, id)
		}
		d, ok := op.Value.(*doc.Drawing)
		if !ok {
			return fmt.Errorf("%w: drawings replace needs *doc.Drawing", ErrBadPath)
		}
		if err := m.DeleteDrawing(id); err != nil {
			return err
		}
		return m.InsertDrawing(d)
	default:
		return ErrBadPath
	}
}

func applyDrawingOrder(m *doc.DocumentModel, op Op) error {
	index, ok := op.Path[1].(int)
	if !ok {
		return ErrBadPath
	}
	order := m.GetDrawingsOrder()
	switch op.Type {
	case OpInsert:
		id, ok := op.Value.(string)
		if !ok {
			return fmt.Errorf("%w: drawingsOrder insert needs string id", ErrBadPath)
		}
		if index < 0 || index > len(order) {
			return fmt.Errorf("%w: drawingsOrder index %d", ErrConflict, index)
		}
		return m.InsertDrawingOrder(index, id)
	case OpRemove:
		if index < 0 || index >= len(order) || !reflect.DeepEqual(order[index], op.OldValue) {
			return fmt.Errorf("%w: drawingsOrder index %d", ErrConflict, index)
		}
		return m.RemoveDrawingOrder(index)
	case OpReplace:
		if index < 0 || index >= len(order) || !reflect.DeepEqual(order[index], op.OldValue) {
			return fmt.Errorf("%w: drawingsOrder index %d", ErrConflict, index)
		}
		id, ok := op.Value.(string)
		if !ok {
			return fmt.Errorf("%w: drawingsOrder replace needs string id", ErrBadPath)
		}
		order[index] = id
		return nil
	default:
		return ErrBadPath
	}
}

// applyBodyNode handles structural edits inside the body tree; currently the
// paragraph table is the only addressable node (bullet and indent updates).
func applyBodyNode(m *doc.DocumentModel, op Op) error {
	if len(op.Path) < 3 {
		return ErrBadPath
	}
	node, _ := op.Path[1].(string)
	if node != "paragraphs" {
		return fmt.Errorf("%w: %v", ErrBadPath, op.Path)
	}
	index, ok := op.Path[2].(int)
	if !ok {
		return ErrBadPath
	}
	body := m.GetBody()
	if index < 0 || index >= len(body.Paragraphs) {
		return fmt.Errorf("%w: paragraph index %d", ErrConflict, index)
	}
	if op.Type != OpReplace {
		return fmt.Errorf("%w: paragraph node supports replace only", ErrBadPath)
	}
	oldPara, ok := op.OldValue.(doc.Paragraph)
	if !ok {
		return fmt.Errorf("%w: paragraph replace needs doc.Paragraph values", ErrBadPath)
	}
	if !reflect.DeepEqual(body.Paragraphs[index], oldPara) {
		return fmt.Errorf("%w: paragraph %d", ErrConflict, index)
	}
	newPara, ok := op.Value.(doc.Paragraph)
	if !ok {
		return fmt.Errorf("%w: paragraph replace needs doc.Paragraph values", ErrBadPath)
	}
	body.Paragraphs[index] = newPara
	return nil
}
