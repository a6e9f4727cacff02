package query

import (
	"reflect"
	"sync"

	"github.com/lotworks/lotview/internal/model"
)

// Result is one evaluated page plus the pre-pagination match count
// the pagination controls need.
type Result struct {
	Page  []model.Vehicle
	Total int
}

// Engine runs the filter → sort → paginate pipeline. Results are
// memoized on the structural inputs so re-renders with unchanged state
// never re-filter or re-sort the full catalog.
type Engine struct {
	mu   sync.Mutex
	last *memoEntry
}

type memoEntry struct {
	catalogRef uintptr
	catalogLen int
	favsRev    uint64
	favsOnly   bool
	criteria   Criteria
	result     Result
}

// NewEngine creates a query engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run evaluates the full-catalog pipeline
func (e *Engine) Run(catalog []model.Vehicle, c Criteria) Result {
	return e.run(catalog, nil, 0, false, c)
}

// RunFavorites evaluates the same pipeline restricted to the vehicles
// whose id is in the favorites set. favsRev must change whenever the
// set changes so the memo does not serve a stale page.
func (e *Engine) RunFavorites(catalog []model.Vehicle, favorites map[string]bool, favsRev uint64, c Criteria) Result {
	return e.run(catalog, favorites, favsRev, true, c)
}

func (e *Engine) run(catalog []model.Vehicle, favorites map[string]bool, favsRev uint64, favsOnly bool, c Criteria) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	ref := sliceRef(catalog)
	if m := e.last; m != nil &&
		m.catalogRef == ref && m.catalogLen == len(catalog) &&
		m.favsOnly == favsOnly && m.favsRev == favsRev &&
		reflect.DeepEqual(m.criteria, c) {
		return m.result
	}

	input := catalog
	if favsOnly {
		input = restrictToFavorites(catalog, favorites)
	}

	filtered := Filter(input, c.Filters)
	sorted := SortVehicles(filtered, c.Sort)
	res := Result{
		Page:  Paginate(sorted, c.Pagination),
		Total: len(filtered),
	}

	e.last = &memoEntry{
		catalogRef: ref,
		catalogLen: len(catalog),
		favsRev:    favsRev,
		favsOnly:   favsOnly,
		criteria:   cloneCriteria(c),
		result:     res,
	}
	return res
}

// restrictToFavorites keeps catalog order so both pipelines share the
// same tie-breaking behavior.
func restrictToFavorites(catalog []model.Vehicle, favorites map[string]bool) []model.Vehicle {
	out := make([]model.Vehicle, 0, len(favorites))
	for i := range catalog {
		if favorites[catalog[i].ID] {
			out = append(out, catalog[i])
		}
	}
	return out
}

func sliceRef(v []model.Vehicle) uintptr {
	return reflect.ValueOf(v).Pointer()
}

// cloneCriteria snapshots the criteria so later map mutations by the
// caller cannot corrupt the memo key.
func cloneCriteria(c Criteria) Criteria {
	out := c
	out.Filters = c.Filters.Clone()
	if c.Sort != nil {
		s := *c.Sort
		out.Sort = &s
	}
	return out
}
