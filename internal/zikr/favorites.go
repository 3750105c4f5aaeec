package zikr

import (
	"errors"

	"zikirmatik/internal/constants"
	"zikirmatik/internal/registry"
)

// ErrNoSelection is returned by counter operations when no zikhr is selected.
var ErrNoSelection = errors.New("no zikhr selected")

// Favorites returns the favorite item names, most recently added first.
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.favorites...)
}

// EsmaFavorites returns the favorite Esma-ül Hüsna names.
func (s *Store) EsmaFavorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.esmaFavorites...)
}

// ToggleFavorite adds name to the favorites when absent and removes it
// when present. Returns true when the name ends up favorited.
func (s *Store) ToggleFavorite(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.favorites {
		if existing == name {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.backend.PutJSON(constants.KeyFavorites, s.favorites)
			return false
		}
	}
	s.favorites = append([]string{name}, s.favorites...)
	s.backend.PutJSON(constants.KeyFavorites, s.favorites)
	return true
}

// ToggleEsmaFavorite mirrors ToggleFavorite for the Esma-ül Hüsna list.
func (s *Store) ToggleEsmaFavorite(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.esmaFavorites {
		if existing == name {
			s.esmaFavorites = append(s.esmaFavorites[:i], s.esmaFavorites[i+1:]...)
			s.backend.PutJSON(constants.KeyEsmaFavorites, s.esmaFavorites)
			return false
		}
	}
	s.esmaFavorites = append([]string{name}, s.esmaFavorites...)
	s.backend.PutJSON(constants.KeyEsmaFavorites, s.esmaFavorites)
	return true
}

func (s *Store) removeFavoriteLocked(name string) {
	for i, existing := range s.favorites {
		if existing == name {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			s.backend.PutJSON(constants.KeyFavorites, s.favorites)
			return
		}
	}
}

// pruneFavoritesLocked drops favorite names whose items no longer exist,
// e.g. custom items deleted in an earlier session.
func (s *Store) pruneFavoritesLocked() {
	kept := s.favorites[:0]
	changed := false
	for _, name := range s.favorites {
		if _, ok := s.findLocked(name); ok {
			kept = append(kept, name)
		} else {
			changed = true
		}
	}
	if changed {
		s.favorites = kept
		s.backend.PutJSON(constants.KeyFavorites, s.favorites)
	}

	keptEsma := s.esmaFavorites[:0]
	changed = false
	for _, name := range s.esmaFavorites {
		if _, ok := registry.FindEsmaUlHusna(name); ok {
			keptEsma = append(keptEsma, name)
		} else {
			changed = true
		}
	}
	if changed {
		s.esmaFavorites = keptEsma
		s.backend.PutJSON(constants.KeyEsmaFavorites, s.esmaFavorites)
	}
}
