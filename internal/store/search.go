package store

import (
	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/query"
)

// Search mutations. Every one of them upholds two invariants:
// the page index resets to 1 whenever filters, sort or limit change,
// and the last-search snapshot is refreshed on every mutation so
// persistence always reflects the most recently applied criteria.

// SetFilters replaces the whole filter set
func (s *Store) SetFilters(f query.Filters) {
	s.mu.Lock()
	s.filters = f.Clone()
	if s.filters == nil {
		s.filters = query.Filters{}
	}
	s.pagination.Page = 1
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// UpdateFilter sets a single filter entry. An empty value removes it.
func (s *Store) UpdateFilter(key string, val query.Value) {
	s.mu.Lock()
	if val.IsEmpty() {
		delete(s.filters, key)
	} else {
		s.filters[key] = val
	}
	s.pagination.Page = 1
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// SetSort replaces the active sort; nil clears it
func (s *Store) SetSort(sort *query.Sort) {
	s.mu.Lock()
	if sort != nil {
		c := *sort
		s.sort = &c
	} else {
		s.sort = nil
	}
	s.pagination.Page = 1
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// SetLimit changes the page size. Only the allowed sizes are accepted;
// anything else is logged and ignored.
func (s *Store) SetLimit(limit int) {
	if !allowedLimit(limit) {
		logger.Warn("Rejected page size", logger.F("limit", limit))
		return
	}
	s.mu.Lock()
	s.pagination.Limit = limit
	s.pagination.Page = 1
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// SetPage moves the page window. Pages past the end of the result set
// are allowed and simply display zero rows.
func (s *Store) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.pagination.Page = page
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// ResetSearch restores empty filters, the default sort and first-page
// pagination, and resets the snapshot to match so a reload cannot
// silently undo the reset.
func (s *Store) ResetSearch() {
	s.mu.Lock()
	s.filters = query.Filters{}
	s.sort = DefaultSort()
	s.pagination = query.Pagination{Page: 1, Limit: model.DefaultPageSize}
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// SetInitialLimit seeds the configured default page size before any
// restore. Unknown sizes are logged and ignored. No snapshot is taken:
// a config default is not a stored search, and a later restored
// lastSearch overrides it.
func (s *Store) SetInitialLimit(limit int) {
	if !allowedLimit(limit) {
		logger.Warn("Rejected configured page size", logger.F("limit", limit))
		return
	}
	s.mu.Lock()
	s.pagination.Limit = limit
	s.mu.Unlock()
	s.notify()
}

// SetInitialSearch restores criteria from a persisted snapshot
func (s *Store) SetInitialSearch(last *LastSearch) {
	if last == nil {
		return
	}
	s.mu.Lock()
	s.filters = last.Filters.Clone()
	if s.filters == nil {
		s.filters = query.Filters{}
	}
	if last.Sort != nil {
		c := *last.Sort
		s.sort = &c
	} else {
		s.sort = nil
	}
	s.pagination = last.Pagination
	if s.pagination.Page < 1 {
		s.pagination.Page = 1
	}
	if !allowedLimit(s.pagination.Limit) {
		s.pagination.Limit = model.DefaultPageSize
	}
	s.snapshotSearch()
	s.mu.Unlock()
	s.notify()
}

// Criteria returns the active filter/sort/pagination bundle
func (s *Store) Criteria() query.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteriaLocked()
}

// LastSearchSnapshot returns the persisted-search snapshot
func (s *Store) LastSearchSnapshot() *LastSearch {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSearch == nil {
		return nil
	}
	c := *s.lastSearch
	c.Filters = s.lastSearch.Filters.Clone()
	return &c
}

func (s *Store) criteriaLocked() query.Criteria {
	c := query.Criteria{
		Filters:    s.filters.Clone(),
		Pagination: s.pagination,
	}
	if s.sort != nil {
		sc := *s.sort
		c.Sort = &sc
	}
	return c
}

// snapshotSearch must be called with the mutex held
func (s *Store) snapshotSearch() {
	s.lastSearch = &LastSearch{
		Filters:    s.filters.Clone(),
		Sort:       s.sort,
		Pagination: s.pagination,
	}
	if s.sort != nil {
		c := *s.sort
		s.lastSearch.Sort = &c
	}
}

func allowedLimit(limit int) bool {
	for _, l := range model.PageSizes {
		if limit == l {
			return true
		}
	}
	return false
}
