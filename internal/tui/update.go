package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/lotworks/lotview/internal/catalog"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/query"
	"github.com/lotworks/lotview/internal/store"
)

// catalogLoadedMsg reports the outcome of the catalog fetch
type catalogLoadedMsg struct {
	err error
}

// tickMsg drives the once-a-second redraw for the session countdown
type tickMsg time.Time

// Init kicks off the one-time catalog fetch and the redraw ticker
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), tickCmd())
}

func (m Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		err := catalog.Load(context.Background(), m.client, m.st)
		return catalogLoadedMsg{err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The expiry monitor runs on its own ticker; this one only
		// keeps the countdown and any forced-logout state fresh.
		return m, tickCmd()

	case catalogLoadedMsg:
		if msg.err != nil {
			m.message = "Catalog fetch failed. Press r to retry."
		} else {
			m.message = ""
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeFilter:
			return m.updateFilterMode(msg)
		case ModeDetail, ModeHelp:
			if key.Matches(msg, keys.Escape) || key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Detail) {
				m.mode = ModeNormal
			}
			return m, nil
		default:
			return m.updateNormalMode(msg)
		}
	}

	return m, nil
}

func (m Model) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := m.displayed()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(result.Page)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.PrevPage):
		p := m.st.Criteria().Pagination
		if p.Page > 1 {
			m.st.SetPage(p.Page - 1)
			m.cursor = 0
		}

	case key.Matches(msg, keys.NextPage):
		p := m.st.Criteria().Pagination
		if p.Page < query.TotalPages(result.Total, p.Limit) {
			m.st.SetPage(p.Page + 1)
			m.cursor = 0
		}

	case key.Matches(msg, keys.Filter):
		m.input.SetValue(filterInputString(m.st.Criteria().Filters))
		m.input.CursorEnd()
		m.mode = ModeFilter
		return m, m.input.Focus()

	case key.Matches(msg, keys.Sort):
		m.sortIdx = (m.sortIdx + 1) % len(sortOptions)
		m.st.SetSort(sortOptions[m.sortIdx].sort)
		m.cursor = 0
		m.message = "Sort: " + sortOptions[m.sortIdx].label

	case key.Matches(msg, keys.Limit):
		m.st.SetLimit(nextPageSize(m.st.Criteria().Pagination.Limit))
		m.cursor = 0

	case key.Matches(msg, keys.Favorite):
		if v := currentVehicle(result, m.cursor); v != nil {
			m.st.ToggleFavorite(v.ID)
		}

	case key.Matches(msg, keys.FavsOnly):
		m.st.ToggleShowOnlyFavorites()
		m.cursor = 0

	case key.Matches(msg, keys.Reset):
		m.st.ResetSearch()
		m.sortIdx = matchSortOption(m.st.Criteria().Sort)
		m.cursor = 0
		m.message = "Search reset"

	case key.Matches(msg, keys.Retry):
		if status, _ := m.st.Status(); status == store.StatusFailed {
			m.message = "Retrying..."
			return m, m.loadCatalog()
		}

	case key.Matches(msg, keys.Login):
		if !m.st.IsAuthenticated() {
			sess := m.st.Login(m.ttl)
			m.monitor.Start()
			m.message = fmt.Sprintf("Logged in until %s", sess.ExpiresAt.Format("15:04:05"))
		}

	case key.Matches(msg, keys.Logout):
		if m.st.Session() != nil {
			m.st.Logout()
			m.monitor.Stop()
			m.message = "Logged out"
		}

	case key.Matches(msg, keys.Detail):
		if currentVehicle(result, m.cursor) != nil {
			m.mode = ModeDetail
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		filters, err := parseFilterInput(m.input.Value())
		if err != nil {
			m.message = err.Error()
			return m, nil
		}
		m.st.SetFilters(filters)
		m.cursor = 0
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// currentVehicle returns the vehicle under the cursor, nil when the
// page is empty
func currentVehicle(result query.Result, cursor int) *model.Vehicle {
	if cursor < 0 || cursor >= len(result.Page) {
		return nil
	}
	return &result.Page[cursor]
}

// nextPageSize cycles through the allowed page sizes
func nextPageSize(limit int) int {
	for i, size := range model.PageSizes {
		if size == limit {
			return model.PageSizes[(i+1)%len(model.PageSizes)]
		}
	}
	return model.DefaultPageSize
}
