package store

import "github.com/lotworks/lotview/internal/query"

// Displayed evaluates the page to render under the current criteria,
// honoring the favorites-only toggle. Result.Total is the
// pre-pagination match count for the pagination controls.
func (s *Store) Displayed() query.Result {
	s.mu.Lock()
	catalog := s.catalog
	criteria := s.criteriaLocked()
	favsOnly := s.showOnlyFavorites
	favs := s.favoriteSet()
	rev := s.favsRev
	s.mu.Unlock()

	if favsOnly {
		return s.engine.RunFavorites(catalog, favs, rev, criteria)
	}
	return s.engine.Run(catalog, criteria)
}

// DisplayedFavorites always evaluates the favorites-scoped pipeline
// with the same criteria, regardless of the toggle. It backs the
// dedicated favorites view.
func (s *Store) DisplayedFavorites() query.Result {
	s.mu.Lock()
	catalog := s.catalog
	criteria := s.criteriaLocked()
	favs := s.favoriteSet()
	rev := s.favsRev
	s.mu.Unlock()

	return s.engine.RunFavorites(catalog, favs, rev, criteria)
}
