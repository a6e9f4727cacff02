package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lotworks/lotview/internal/catalog"
	"github.com/lotworks/lotview/internal/logger"
	"github.com/lotworks/lotview/internal/query"
	"github.com/lotworks/lotview/internal/session"
	"github.com/lotworks/lotview/internal/store"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter
	ModeDetail
	ModeHelp
)

// sortOption pairs a selectable ordering with its menu label
type sortOption struct {
	sort  *query.Sort
	label string
}

// sortOptions is the cycle order for the sort key. The nil entry
// clears sorting and keeps the filter-stage order.
var sortOptions = []sortOption{
	{nil, "Default Order"},
	{&query.Sort{Field: query.SortMake, Direction: query.Asc}, "Make (A-Z)"},
	{&query.Sort{Field: query.SortMake, Direction: query.Desc}, "Make (Z-A)"},
	{&query.Sort{Field: query.SortBid, Direction: query.Asc}, "Bid (Low-High)"},
	{&query.Sort{Field: query.SortBid, Direction: query.Desc}, "Bid (High-Low)"},
	{&query.Sort{Field: query.SortMileage, Direction: query.Asc}, "Mileage (Low-High)"},
	{&query.Sort{Field: query.SortMileage, Direction: query.Desc}, "Mileage (High-Low)"},
	{&query.Sort{Field: query.SortAuctionDate, Direction: query.Asc}, "Auction Date (Earliest)"},
	{&query.Sort{Field: query.SortAuctionDate, Direction: query.Desc}, "Auction Date (Latest)"},
}

// Model is the main TUI model
type Model struct {
	st      *store.Store
	client  *catalog.Client
	monitor *session.Monitor
	ttl     time.Duration

	// UI state
	width   int
	height  int
	mode    Mode
	cursor  int
	sortIdx int

	// Filter input
	input textinput.Model

	message string
}

// NewModel creates a new TUI model
func NewModel(st *store.Store, client *catalog.Client, monitor *session.Monitor, ttl time.Duration) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "make=ford model=focus bid=1000-5000 year=2021"
	ti.CharLimit = 256
	ti.Width = 60

	m := Model{
		st:      st,
		client:  client,
		monitor: monitor,
		ttl:     ttl,
		mode:    ModeNormal,
		input:   ti,
	}
	m.sortIdx = matchSortOption(st.Criteria().Sort)
	return m
}

// matchSortOption finds the cycle position of the active sort so the
// restored search resumes mid-cycle instead of resetting the menu
func matchSortOption(s *query.Sort) int {
	for i, opt := range sortOptions {
		if s == nil && opt.sort == nil {
			return i
		}
		if s != nil && opt.sort != nil && *opt.sort == *s {
			return i
		}
	}
	return 0
}

// displayed evaluates the page to render under the current criteria
func (m *Model) displayed() query.Result {
	return m.st.Displayed()
}
