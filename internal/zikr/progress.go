package zikr

import (
	"time"

	"github.com/google/uuid"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
)

// Progress returns the current count toward name's target. Absent keys
// read as zero.
func (s *Store) Progress(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress[name]
}

// UpdateProgress stores count under name, clamped to [0, effective
// target], and persists the whole map.
func (s *Store) UpdateProgress(name string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateProgressLocked(name, count)
}

func (s *Store) updateProgressLocked(name string, count int) {
	if count < 0 {
		count = 0
	}
	if item, ok := s.findLocked(name); ok {
		if target := s.effectiveCountLocked(name, item.Count); count > target {
			count = target
		}
	}
	s.progress[name] = count
	s.backend.PutJSON(constants.KeyProgress, s.progress)
}

// ResetProgress deletes name's progress entry, equivalent to zero.
func (s *Store) ResetProgress(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.progress, name)
	s.backend.PutJSON(constants.KeyProgress, s.progress)
}

// Increment advances the selected item's counter by one. It returns the
// new count and whether this tick completed the run; the completion event
// fires exactly once, when the counter first reaches the target.
func (s *Store) Increment() (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return 0, false, ErrNoSelection
	}
	item := *s.selected
	target := s.effectiveCountLocked(item.Name, item.Count)

	prev := s.progress[item.Name]
	if prev >= target {
		return prev, false, nil
	}

	next := prev + 1
	s.updateProgressLocked(item.Name, next)

	completed := next >= target && target > 0
	if completed {
		s.recordCompletionLocked(item, target)
	}
	return next, completed, nil
}

// RecordCompletion prepends a completed-run record and truncates the
// history to the most recent entries.
func (s *Store) RecordCompletion(item models.ZikhrItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recordCompletionLocked(item, s.effectiveCountLocked(item.Name, item.Count))
}

func (s *Store) recordCompletionLocked(item models.ZikhrItem, count int) {
	entry := models.CompletedZikhr{
		ID:          uuid.NewString(),
		Name:        item.Name,
		Description: item.Description,
		Count:       count,
		CompletedAt: s.now(),
	}
	s.completed = append([]models.CompletedZikhr{entry}, s.completed...)
	if len(s.completed) > constants.MaxCompletedHistory {
		s.completed = s.completed[:constants.MaxCompletedHistory]
	}
	s.backend.PutJSON(constants.KeyCompleted, s.completed)
}

// Completed returns the completion history, newest first.
func (s *Store) Completed() []models.CompletedZikhr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CompletedZikhr(nil), s.completed...)
}

// CompletedSince filters the history to entries within the given window.
// A zero window returns everything.
func (s *Store) CompletedSince(window time.Duration) []models.CompletedZikhr {
	all := s.Completed()
	if window <= 0 {
		return all
	}
	threshold := s.now().Add(-window)
	var recent []models.CompletedZikhr
	for _, entry := range all {
		if !entry.CompletedAt.Before(threshold) {
			recent = append(recent, entry)
		}
	}
	return recent
}

// SetCountOverride stores a per-name target that supersedes the registry
// default. Overrides persist separately from the custom list so they can
// apply to built-in items too; for custom items the base record is
// updated in place so both stay consistent.
func (s *Store) SetCountOverride(name string, count int) {
	if count < 1 {
		count = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides[name] = count
	s.backend.PutJSON(constants.KeyCountOverrides, s.overrides)

	for i := range s.custom {
		if s.custom[i].Name == name {
			s.custom[i].Count = count
			s.backend.PutJSON(constants.KeyCustomItems, s.custom)
			break
		}
	}

	if s.selected != nil && s.selected.Name == name {
		s.selected.Count = count
		s.backend.PutJSON(constants.KeySelected, *s.selected)
	}
}

// EffectiveCount returns the override for name when one is set, else
// fallback. Callers must use this instead of reading Count directly
// wherever an override might exist.
func (s *Store) EffectiveCount(name string, fallback int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveCountLocked(name, fallback)
}

func (s *Store) effectiveCountLocked(name string, fallback int) int {
	if count, ok := s.overrides[name]; ok {
		return count
	}
	return fallback
}

// ActiveSnapshot returns the widget payload for the current selection.
func (s *Store) ActiveSnapshot() models.WidgetSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return models.WidgetSnapshot{Target: constants.DefaultTarget}
	}
	target := s.effectiveCountLocked(s.selected.Name, s.selected.Count)
	if target <= 0 {
		target = constants.DefaultTarget
	}
	return models.WidgetSnapshot{
		ZikrName: s.selected.Name,
		Count:    s.progress[s.selected.Name],
		Target:   target,
	}
}
