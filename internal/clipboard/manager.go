// Package clipboard keeps the content removed by cut/yank commands. There is
// always an internal register; the system clipboard is mirrored when enabled
// in config, and a mirror failure never fails the command.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bethropolis/scribe/internal/logger"
)

// Manager is the clipboard service handed to the command layer.
type Manager struct {
	system   bool
	register string
}

// NewManager creates a manager; system controls OS clipboard mirroring.
func NewManager(system bool) *Manager {
	return &Manager{system: system}
}

// Write stores text in the internal register and mirrors it to the system
// clipboard when enabled.
func (m *Manager) Write(text string) error {
	m.register = text
	logger.Debugf("Clipboard: stored %d bytes", len(text))
	if !m.system {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		// Headless environments have no system clipboard; the register is
		// still good, so just report it.
		return err
	}
	return nil
}

// Read returns the register content, preferring the system clipboard when
// mirroring is on and it is readable.
func (m *Manager) Read() (string, error) {
	if m.system {
		if text, err := clipboard.ReadAll(); err == nil {
			return text, nil
		}
	}
	return m.register, nil
}
