package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")

	FavStar   = lipgloss.Color("#FFE66D") // Yellow
	AuthOK    = lipgloss.Color("#95E1A3") // Green
	AuthNone  = lipgloss.Color("#6C757D") // Gray
	FetchFail = lipgloss.Color("#FF6B6B") // Red
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	ListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	FavStyle = lipgloss.NewStyle().Foreground(FavStar)

	ErrorStyle = lipgloss.NewStyle().Foreground(FetchFail).Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	AuthOKStyle   = lipgloss.NewStyle().Foreground(AuthOK)
	AuthNoneStyle = lipgloss.NewStyle().Foreground(AuthNone)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	DetailLabelStyle = lipgloss.NewStyle().Foreground(Secondary).Width(16)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)
