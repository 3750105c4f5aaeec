package zikr

import (
	"fmt"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/models"
	"zikirmatik/internal/registry"
)

// Items returns the merged list: the static registry (with overrides
// applied) followed by user-created items, in creation order.
func (s *Store) Items() []models.ZikhrItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.ZikhrItem, 0, len(registry.ZikhrItems)+len(s.custom))
	for _, item := range registry.ZikhrItems {
		items = append(items, s.withOverride(item))
	}
	items = append(items, s.custom...)
	return items
}

// SortedItems returns the merged list with favorites first, preserving
// the favorites' own ordering (most recently favorited first).
func (s *Store) SortedItems() []models.ZikhrItem {
	items := s.Items()

	s.mu.Lock()
	favorites := append([]string(nil), s.favorites...)
	s.mu.Unlock()

	if len(favorites) == 0 {
		return items
	}

	favoriteSet := make(map[string]bool, len(favorites))
	for _, name := range favorites {
		favoriteSet[name] = true
	}

	ordered := make([]models.ZikhrItem, 0, len(items))
	for _, name := range favorites {
		for _, item := range items {
			if item.Name == name {
				ordered = append(ordered, item)
				break
			}
		}
	}
	for _, item := range items {
		if !favoriteSet[item.Name] {
			ordered = append(ordered, item)
		}
	}
	return ordered
}

// Find looks up an item by name in the merged list.
func (s *Store) Find(name string) (models.ZikhrItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(name)
}

// IsCustom reports whether name was created by the user. Only custom
// items can be deleted.
func (s *Store) IsCustom(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.custom {
		if item.Name == name {
			return true
		}
	}
	return false
}

// AddItem validates and appends a user-created item, persists the custom
// list and selects the new item. Names must be unique across the merged
// list; collisions are rejected rather than silently shadowing.
func (s *Store) AddItem(item models.ZikhrItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.findLocked(item.Name); exists {
		return fmt.Errorf("a zikhr named %q already exists", item.Name)
	}

	s.custom = append(s.custom, item)
	s.backend.PutJSON(constants.KeyCustomItems, s.custom)

	selected := item
	s.selected = &selected
	s.backend.PutJSON(constants.KeySelected, selected)
	return nil
}

// DeleteItem removes a custom item, its progress entry and its favorite
// mark, and clears the selection if it pointed at the item. Built-in
// names no-op: they are not in the custom list.
func (s *Store) DeleteItem(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.custom[:0]
	removed := false
	for _, item := range s.custom {
		if item.Name == name {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	s.custom = kept
	s.backend.PutJSON(constants.KeyCustomItems, s.custom)

	if _, ok := s.progress[name]; ok {
		delete(s.progress, name)
		s.backend.PutJSON(constants.KeyProgress, s.progress)
	}

	s.removeFavoriteLocked(name)

	if s.selected != nil && s.selected.Name == name {
		s.selected = nil
		s.backend.Remove(constants.KeySelected)
	}
}

// Selected returns the currently selected item, or false when none.
func (s *Store) Selected() (models.ZikhrItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.ZikhrItem{}, false
	}
	return *s.selected, true
}

// SetSelected makes name the active counter target. The persisted form is
// a value snapshot resolved back by name at next startup.
func (s *Store) SetSelected(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.findLocked(name)
	if !ok {
		return fmt.Errorf("no zikhr named %q", name)
	}
	s.selected = &item
	s.backend.PutJSON(constants.KeySelected, item)
	return nil
}

// ClearSelected drops the selection.
func (s *Store) ClearSelected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.backend.Remove(constants.KeySelected)
}

// StartEsmaUlHusna selects the given name, materializing a custom item
// carrying the meaning as its description if one does not exist yet.
func (s *Store) StartEsmaUlHusna(name string) (models.ZikhrItem, error) {
	esma, ok := registry.FindEsmaUlHusna(name)
	if !ok {
		return models.ZikhrItem{}, fmt.Errorf("no Esma-ül Hüsna entry named %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if item, exists := s.findLocked(name); exists {
		s.selected = &item
		s.backend.PutJSON(constants.KeySelected, item)
		return item, nil
	}

	item := models.ZikhrItem{
		Name:        esma.Name,
		ArabicName:  esma.ArabicName,
		Description: esma.Meaning,
		Count:       s.effectiveCountLocked(esma.Name, esma.Count),
	}
	s.custom = append(s.custom, item)
	s.backend.PutJSON(constants.KeyCustomItems, s.custom)
	s.selected = &item
	s.backend.PutJSON(constants.KeySelected, item)
	return item, nil
}
