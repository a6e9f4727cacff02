package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lotworks/lotview/internal/model"
	"github.com/lotworks/lotview/internal/query"
	"github.com/lotworks/lotview/internal/store"
)

// View renders the current screen
func (m Model) View() string {
	switch m.mode {
	case ModeFilter:
		return m.filterView()
	case ModeDetail:
		return m.detailView()
	case ModeHelp:
		return m.helpView()
	default:
		return m.listView()
	}
}

func (m Model) listView() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("LotView — Auction Vehicles"))
	b.WriteString("\n\n")

	status, fetchErr := m.st.Status()
	switch status {
	case store.StatusLoading:
		b.WriteString(RowStyle.Render("Loading catalog..."))
		b.WriteString("\n")
	case store.StatusFailed:
		msg := "Catalog fetch failed"
		if fetchErr != "" {
			msg = "Catalog fetch failed: " + fetchErr
		}
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press r to retry."))
		b.WriteString("\n")
	default:
		result := m.displayed()
		if len(result.Page) == 0 {
			b.WriteString(RowStyle.Render(m.emptyMessage(result.Total)))
			b.WriteString("\n")
		} else {
			b.WriteString(m.renderRows(result))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

func (m Model) emptyMessage(total int) string {
	if total == 0 {
		if m.st.ShowOnlyFavorites() {
			return "No favorites match the current search."
		}
		return "No vehicles match the current search."
	}
	return "Nothing on this page."
}

func (m Model) renderRows(result query.Result) string {
	var b strings.Builder
	for i, v := range result.Page {
		star := "  "
		if m.st.IsFavorite(v.ID) {
			star = FavStyle.Render("★ ")
		}
		row := fmt.Sprintf("%s%-22s %6d  %8d mi  £%8.2f  %s",
			star,
			truncate(v.Make+" "+v.Model, 22),
			v.Year,
			v.Mileage,
			v.StartingBid,
			auctionLabel(&v),
		)
		if i == m.cursor {
			b.WriteString(RowSelectedStyle.Render("> " + row))
		} else {
			b.WriteString(RowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// auctionLabel formats the auction time, or a dash when unset
func auctionLabel(v *model.Vehicle) string {
	t, ok := v.AuctionTime()
	if !ok {
		return "—"
	}
	return t.Format("2006-01-02 15:04")
}

func (m Model) statusBar() string {
	result := m.displayed()
	p := m.st.Criteria().Pagination
	total := query.TotalPages(result.Total, p.Limit)

	parts := []string{
		fmt.Sprintf("Page %d/%d (%d vehicles)", p.Page, max(total, 1), result.Total),
		"Sort: " + sortOptions[m.sortIdx].label,
		fmt.Sprintf("Size: %d", p.Limit),
	}
	if m.st.ShowOnlyFavorites() {
		parts = append(parts, FavStyle.Render("★ favorites only"))
	}
	parts = append(parts, m.authLabel())

	bar := strings.Join(parts, "  │  ")
	if m.message != "" {
		bar += "\n" + HelpStyle.Render(m.message)
	}
	bar += "\n" + HelpStyle.Render("/ filter  s sort  L size  space fav  o favs  enter detail  a login  ? help  q quit")
	return StatusBarStyle.Render(bar)
}

func (m Model) authLabel() string {
	if !m.st.IsAuthenticated() {
		return AuthNoneStyle.Render("not logged in")
	}
	return AuthOKStyle.Render("session " + formatCountdown(m.st.TimeRemaining()))
}

func (m Model) filterView() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Filter"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(HelpStyle.Render("key=value pairs: make model colour equipment year doors owners bid mileage\nranges: bid=1000-5000  mileage=-80000  year=2021\nenter apply  esc cancel"))
	return ModalStyle.Render(b.String())
}

func (m Model) detailView() string {
	v := currentVehicle(m.displayed(), m.cursor)
	if v == nil {
		return m.listView()
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("%s %s (%d)", v.Make, v.Model, v.Year)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(DetailLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Engine", v.EngineSize)
	row("Fuel", v.Fuel)
	row("Mileage", fmt.Sprintf("%d mi", v.Mileage))
	row("Starting bid", fmt.Sprintf("£%.2f", v.StartingBid))
	row("Auction", auctionLabel(v))
	if m.st.IsFavorite(v.ID) {
		row("Favorite", FavStyle.Render("★ yes"))
	}

	spec := v.Details.Specification
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Specification"))
	b.WriteString("\n")
	row("Colour", spec.Colour)
	row("Transmission", spec.Transmission)
	row("Doors", fmt.Sprintf("%d", spec.NumberOfDoors))
	row("CO2", spec.CO2Emissions)
	row("NOx", fmt.Sprintf("%.3f", spec.NOxEmissions))
	row("Keys", fmt.Sprintf("%d", spec.NumberOfKeys))

	own := v.Details.Ownership
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Ownership"))
	b.WriteString("\n")
	row("Owners", fmt.Sprintf("%d", own.NumberOfOwners))
	row("Log book", own.LogBook)
	row("Registered", own.DateOfRegistration)

	if len(v.Details.Equipment) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("Equipment"))
		b.WriteString("\n")
		for _, item := range v.Details.Equipment {
			b.WriteString("  • " + item + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc/enter back"))
	return ModalStyle.Render(b.String())
}

func (m Model) helpView() string {
	bindings := []struct{ keys, desc string }{
		{"↑/k, ↓/j", "move cursor"},
		{"←/h, →/l", "previous / next page"},
		{"/", "edit filters"},
		{"s", "cycle sort order"},
		{"L", "cycle page size (10, 50, 100)"},
		{"space / f", "toggle favorite"},
		{"o", "show favorites only"},
		{"enter", "vehicle details"},
		{"R", "reset search"},
		{"r", "retry catalog fetch"},
		{"a / A", "login / logout"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, kb := range bindings {
		b.WriteString(DetailLabelStyle.Render(kb.keys))
		b.WriteString(kb.desc)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("esc back"))
	return ModalStyle.Render(b.String())
}

// formatCountdown renders a duration as mm:ss
func formatCountdown(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
