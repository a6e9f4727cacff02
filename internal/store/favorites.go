package store

// AddFavorite marks a vehicle id. Adding an existing member is a no-op
// and notifies nobody.
func (s *Store) AddFavorite(id string) {
	s.mu.Lock()
	if s.hasFavorite(id) {
		s.mu.Unlock()
		return
	}
	s.favorites = append(s.favorites, id)
	s.favsRev++
	s.mu.Unlock()
	s.notify()
}

// RemoveFavorite unmarks a vehicle id; removing a non-member is a no-op
func (s *Store) RemoveFavorite(id string) {
	s.mu.Lock()
	if !s.hasFavorite(id) {
		s.mu.Unlock()
		return
	}
	s.dropFavorite(id)
	s.favsRev++
	s.mu.Unlock()
	s.notify()
}

// ToggleFavorite flips membership for a vehicle id. The check and the
// flip happen under one lock, so concurrent toggles strictly alternate.
func (s *Store) ToggleFavorite(id string) {
	s.mu.Lock()
	if s.hasFavorite(id) {
		s.dropFavorite(id)
	} else {
		s.favorites = append(s.favorites, id)
	}
	s.favsRev++
	s.mu.Unlock()
	s.notify()
}

// dropFavorite must be called with the mutex held and id present
func (s *Store) dropFavorite(id string) {
	out := s.favorites[:0]
	for _, f := range s.favorites {
		if f != id {
			out = append(out, f)
		}
	}
	s.favorites = out
}

// SetInitialFavorites replaces the set wholesale, used by restore
func (s *Store) SetInitialFavorites(ids []string) {
	s.mu.Lock()
	s.favorites = append([]string(nil), ids...)
	s.favsRev++
	s.mu.Unlock()
	s.notify()
}

// Favorites returns the favorited ids in insertion order
func (s *Store) Favorites() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorite reports membership for one id
func (s *Store) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasFavorite(id)
}

// ToggleShowOnlyFavorites flips the favorites-only listing mode and
// moves back to the first page so the narrower result set starts at
// the top.
func (s *Store) ToggleShowOnlyFavorites() {
	s.mu.Lock()
	s.showOnlyFavorites = !s.showOnlyFavorites
	s.pagination.Page = 1
	s.mu.Unlock()
	s.notify()
}

// ShowOnlyFavorites reports the favorites-only listing mode
func (s *Store) ShowOnlyFavorites() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showOnlyFavorites
}

func (s *Store) hasFavorite(id string) bool {
	for _, f := range s.favorites {
		if f == id {
			return true
		}
	}
	return false
}

func (s *Store) favoriteSet() map[string]bool {
	set := make(map[string]bool, len(s.favorites))
	for _, f := range s.favorites {
		set[f] = true
	}
	return set
}
