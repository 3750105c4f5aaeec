package widget

import (
	"errors"
	"path/filepath"
	"testing"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/storage"
)

type fakeRedrawer struct {
	calls int
	err   error
}

func (f *fakeRedrawer) RequestWidgetRedraw() error {
	f.calls++
	return f.err
}

func newTestBackend(t *testing.T) *storage.Backend {
	t.Helper()
	provider := storage.NewJSONStore(filepath.Join(t.TempDir(), "zikirmatik.json"))
	if err := provider.Init(); err != nil {
		t.Fatal(err)
	}
	if err := provider.Load(); err != nil {
		t.Fatal(err)
	}
	backend := storage.NewBackend(provider)
	t.Cleanup(func() {
		backend.Close()
		provider.Close()
	})
	return backend
}

func TestPublishWritesSharedKeys(t *testing.T) {
	backend := newTestBackend(t)
	redrawer := &fakeRedrawer{}
	bridge := NewBridge(backend, redrawer)

	bridge.Publish(models.WidgetSnapshot{ZikrName: "Subhanallah", Count: 42, Target: 99})
	backend.Flush()

	name, _, _ := backend.GetString(constants.KeyWidgetName)
	count, _, _ := backend.GetString(constants.KeyWidgetCount)
	target, _, _ := backend.GetString(constants.KeyWidgetTarget)
	if name != "Subhanallah" || count != "42" || target != "99" {
		t.Errorf("published keys = %q/%q/%q", name, count, target)
	}
	if redrawer.calls != 1 {
		t.Errorf("redraw calls = %d, want 1", redrawer.calls)
	}
}

func TestPublishToleratesRedrawFailure(t *testing.T) {
	backend := newTestBackend(t)
	redrawer := &fakeRedrawer{err: errors.New("daemon down")}
	bridge := NewBridge(backend, redrawer)

	bridge.Publish(models.WidgetSnapshot{ZikrName: "Subhanallah", Count: 1, Target: 99})
	backend.Flush()

	// The shared keys still land even when the redraw request fails.
	name, ok, _ := backend.GetString(constants.KeyWidgetName)
	if !ok || name != "Subhanallah" {
		t.Errorf("name key = %q, %v", name, ok)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	backend := newTestBackend(t)
	bridge := NewBridge(backend, nil)

	want := models.WidgetSnapshot{ZikrName: "La ilahe illallah", Count: 7, Target: 100}
	bridge.Publish(want)
	backend.Flush()

	got, err := bridge.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}
