// Package zikr holds the single source of truth for counter data: the
// merged item list, selection, per-item progress, count overrides, the
// completed-run history and the preference blob. Mutations update memory
// synchronously and persist through a write-behind queue; the in-memory
// state is what screens render, the persisted copy trails behind.
package zikr

import (
	"sync"
	"time"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/registry"
	"zikirmatik/internal/storage"
)

// Store mediates between the CLI/TUI and the key-value store.
type Store struct {
	mu      sync.Mutex
	backend *storage.Backend

	custom        []models.ZikhrItem
	selected      *models.ZikhrItem
	progress      map[string]int
	overrides     map[string]int
	completed     []models.CompletedZikhr
	favorites     []string
	esmaFavorites []string
	settings      models.Settings

	now func() time.Time
}

func NewStore(backend *storage.Backend) *Store {
	return &Store{
		backend:   backend,
		progress:  make(map[string]int),
		overrides: make(map[string]int),
		settings:  models.DefaultSettings(),
		now:       time.Now,
	}
}

// Load hydrates every group from storage. Individual decode failures
// leave that group at its default; the rest still loads.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	record(s.loadGroup(constants.KeyCustomItems, &s.custom))
	record(s.loadGroup(constants.KeyCompleted, &s.completed))
	record(s.loadGroup(constants.KeyFavorites, &s.favorites))
	record(s.loadGroup(constants.KeyEsmaFavorites, &s.esmaFavorites))

	progress := make(map[string]int)
	record(s.loadGroup(constants.KeyProgress, &progress))
	if progress != nil {
		s.progress = progress
	}

	overrides := make(map[string]int)
	record(s.loadGroup(constants.KeyCountOverrides, &overrides))
	if overrides != nil {
		s.overrides = overrides
	}

	settings := models.DefaultSettings()
	if found, err := s.backend.GetJSON(constants.KeySettings, &settings); err != nil {
		record(err)
	} else if found {
		models.ApplyDefaultSettings(&settings)
		s.settings = settings
	}

	s.resolveSelection()
	s.pruneFavoritesLocked()

	return firstErr
}

func (s *Store) loadGroup(key string, out interface{}) error {
	_, err := s.backend.GetJSON(key, out)
	return err
}

// resolveSelection re-binds the persisted selection snapshot to a live
// entry by name. A snapshot whose item no longer exists resolves to nil,
// never to a dangling reference.
func (s *Store) resolveSelection() {
	var snapshot models.ZikhrItem
	found, err := s.backend.GetJSON(constants.KeySelected, &snapshot)
	if err != nil || !found {
		s.selected = nil
		return
	}
	if item, ok := s.findLocked(snapshot.Name); ok {
		s.selected = &item
		return
	}
	s.selected = nil
}

// ResetAll clears the entire key-value store and reverts every in-memory
// field to its default. Factory reset, deliberately blunt.
func (s *Store) ResetAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Clear(); err != nil {
		return err
	}

	s.custom = nil
	s.selected = nil
	s.progress = make(map[string]int)
	s.overrides = make(map[string]int)
	s.completed = nil
	s.favorites = nil
	s.esmaFavorites = nil
	s.settings = models.DefaultSettings()
	return nil
}

// Flush blocks until pending persistence writes have landed. Tests and
// shutdown use this to make the persisted state deterministic.
func (s *Store) Flush() {
	s.backend.Flush()
}

// SetNow overrides the clock for tests.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) findLocked(name string) (models.ZikhrItem, bool) {
	for _, item := range s.custom {
		if item.Name == name {
			return item, true
		}
	}
	if item, ok := registry.FindZikhr(name); ok {
		return s.withOverride(item), true
	}
	return models.ZikhrItem{}, false
}

// withOverride layers a stored count override onto a registry entry
// without mutating the registry itself.
func (s *Store) withOverride(item models.ZikhrItem) models.ZikhrItem {
	if count, ok := s.overrides[item.Name]; ok {
		item.Count = count
	}
	return item
}
