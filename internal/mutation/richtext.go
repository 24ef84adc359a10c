// Package mutation holds the mutation handlers: the only registrations on the
// command bus that may change a unit's model. A handler is a pure applier —
// it takes a unit id and a composed operation list, applies it atomically,
// and reports success. Inverses are the caller's business; the command layer
// captures the pre-image before dispatching here.
package mutation

import (
	"errors"

	"github.com/bethropolis/scribe/internal/command"
	"github.com/bethropolis/scribe/internal/doc/jsonx"
	"github.com/bethropolis/scribe/internal/event"
	"github.com/bethropolis/scribe/internal/logger"
)

// RichTextEditMutationID applies composed jsonx operations to one unit.
const RichTextEditMutationID = "doc.mutation.rich-text-edit"

// RichTextEditParams carries the target unit and the composed operation list.
type RichTextEditParams struct {
	UnitID  string
	Actions []jsonx.Op
}

// NewRichTextEditMutation builds the mutation registration. The optional
// event manager announces model changes after a successful apply.
func NewRichTextEditMutation(events *event.Manager) command.Command {
	return command.Command{
		ID:   RichTextEditMutationID,
		Type: command.TypeMutation,
		Handler: func(s *command.Service, params interface{}) bool {
			p, ok := params.(RichTextEditParams)
			if !ok {
				logger.Warnf("rich-text-edit: bad params type %T", params)
				return false
			}
			m, ok := s.Units().Doc(p.UnitID)
			if !ok {
				logger.Warnf("rich-text-edit: unknown unit %q", p.UnitID)
				return false
			}
			if err := jsonx.Apply(m, p.Actions); err != nil {
				if errors.Is(err, jsonx.ErrConflict) {
					logger.Debugf("rich-text-edit: conflict on unit %q: %v", p.UnitID, err)
				} else {
					logger.Errorf("rich-text-edit: apply failed on unit %q: %v", p.UnitID, err)
				}
				return false
			}
			if events != nil {
				events.Dispatch(event.TypeDocModified, event.DocModifiedData{UnitID: p.UnitID})
			}
			return true
		},
	}
}
