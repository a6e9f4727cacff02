package store

import (
	"sync"
	"time"

	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/query"
)

// FetchStatus tracks the one-time catalog load
type FetchStatus string

const (
	StatusIdle      FetchStatus = "idle"
	StatusLoading   FetchStatus = "loading"
	StatusSucceeded FetchStatus = "succeeded"
	StatusFailed    FetchStatus = "failed"
)

// LastSearch is the persisted snapshot of the active criteria. It is
// refreshed on every search mutation so a reload always restores the
// latest applied search.
type LastSearch struct {
	Filters    query.Filters    `json:"filters"`
	Sort       *query.Sort      `json:"sort"`
	Pagination query.Pagination `json:"pagination"`
}

// Store is the single state container behind every view. All state
// transitions go through its methods; subscribers are notified after
// each mutation, in mutation order.
type Store struct {
	mu     sync.Mutex
	engine *query.Engine
	now    func() time.Time

	// vehicles slice
	catalog     []model.Vehicle
	fetchStatus FetchStatus
	fetchError  string

	// favorites slice
	favorites []string
	favsRev   uint64

	// search slice
	filters    query.Filters
	sort       *query.Sort
	pagination query.Pagination
	lastSearch *LastSearch

	// session slice
	session *model.Session

	showOnlyFavorites bool

	subscribers []func()
}

// New creates an empty store using the wall clock
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock creates a store with an injectable clock for tests
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		engine:      query.NewEngine(),
		now:         now,
		fetchStatus: StatusIdle,
		filters:     query.Filters{},
		sort:        DefaultSort(),
		pagination:  query.Pagination{Page: 1, Limit: model.DefaultPageSize},
	}
}

// DefaultSort orders listings newest-auction-first
func DefaultSort() *query.Sort {
	return &query.Sort{Field: query.SortAuctionDate, Direction: query.Desc}
}

// Subscribe registers a change listener and returns its unsubscribe
// function. Listeners run synchronously after each mutation.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	idx := len(s.subscribers) - 1
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		if idx < len(s.subscribers) {
			s.subscribers[idx] = nil
		}
		s.mu.Unlock()
	}
}

// notify runs listeners outside the lock so they can read the store
func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn()
		}
	}
}

// SetCatalogLoading marks the fetch as in flight
func (s *Store) SetCatalogLoading() {
	s.mu.Lock()
	s.fetchStatus = StatusLoading
	s.fetchError = ""
	s.mu.Unlock()
	s.notify()
}

// SetCatalog installs the fetched catalog. The slice is owned by the
// store afterwards and must not be mutated by the caller.
func (s *Store) SetCatalog(vehicles []model.Vehicle) {
	s.mu.Lock()
	s.catalog = vehicles
	s.fetchStatus = StatusSucceeded
	s.fetchError = ""
	s.mu.Unlock()
	s.notify()
}

// SetCatalogFailed records a fetch failure. The UI offers a retry; the
// store never retries on its own.
func (s *Store) SetCatalogFailed(msg string) {
	s.mu.Lock()
	s.fetchStatus = StatusFailed
	s.fetchError = msg
	s.mu.Unlock()
	s.notify()
}

// Catalog returns the loaded catalog
func (s *Store) Catalog() []model.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// Status returns the catalog fetch status and last error message
func (s *Store) Status() (FetchStatus, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchStatus, s.fetchError
}

// PersistedState is the slice of store state that survives a restart
type PersistedState struct {
	Favorites  []string
	LastSearch *LastSearch
	Session    *model.Session
}

// PersistedSnapshot captures the persistable state in one consistent
// read
func (s *Store) PersistedSnapshot() PersistedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := make([]string, len(s.favorites))
	copy(favs, s.favorites)

	var last *LastSearch
	if s.lastSearch != nil {
		ls := *s.lastSearch
		ls.Filters = s.lastSearch.Filters.Clone()
		last = &ls
	}

	var sess *model.Session
	if s.session != nil {
		c := *s.session
		sess = &c
	}

	return PersistedState{Favorites: favs, LastSearch: last, Session: sess}
}
