// Package widget publishes the active zikhr's state to the shared
// storage keys the tray widget reads, and pokes the daemon to repaint.
package widget

import (
	"strconv"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/logger"
	"zikirmatik/internal/models"
	"zikirmatik/internal/storage"
)

// Redrawer asks the widget host to repaint. The tray daemon implements
// this; tests substitute a recorder.
type Redrawer interface {
	RequestWidgetRedraw() error
}

// Bridge mirrors counting state into the widget keys.
type Bridge struct {
	backend  *storage.Backend
	redrawer Redrawer
}

func NewBridge(backend *storage.Backend, redrawer Redrawer) *Bridge {
	return &Bridge{backend: backend, redrawer: redrawer}
}

// Publish writes the snapshot to the shared keys and requests a redraw.
// Count and target are stored as decimal strings; the widget host parses
// them without a JSON dependency. A missing or unreachable widget host is
// normal and only logged at debug.
func (b *Bridge) Publish(snap models.WidgetSnapshot) {
	b.backend.PutString(constants.KeyWidgetName, snap.ZikrName)
	b.backend.PutString(constants.KeyWidgetCount, strconv.Itoa(snap.Count))
	b.backend.PutString(constants.KeyWidgetTarget, strconv.Itoa(snap.Target))

	if b.redrawer == nil {
		return
	}
	if err := b.redrawer.RequestWidgetRedraw(); err != nil {
		logger.Debug("Widget redraw request failed", "error", err)
	}
}

// Snapshot reads the currently published widget state back out of the
// shared keys, for the doctor command and tests.
func (b *Bridge) Snapshot() (models.WidgetSnapshot, error) {
	var snap models.WidgetSnapshot
	name, _, err := b.backend.GetString(constants.KeyWidgetName)
	if err != nil {
		return snap, err
	}
	snap.ZikrName = name

	if raw, ok, err := b.backend.GetString(constants.KeyWidgetCount); err != nil {
		return snap, err
	} else if ok {
		snap.Count, _ = strconv.Atoi(raw)
	}
	if raw, ok, err := b.backend.GetString(constants.KeyWidgetTarget); err != nil {
		return snap, err
	} else if ok {
		snap.Target, _ = strconv.Atoi(raw)
	}
	return snap, nil
}
