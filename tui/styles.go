package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorInk   = "236"
	colorPaper = "255"
	colorMuted = "245"
	colorLine  = "240"
)

// Styles contains the lipgloss styles of the preview.
var Styles = struct {
	Title     lipgloss.Style
	Tagline   lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Box       lipgloss.Style
	Heading   lipgloss.Style
	Chip      lipgloss.Style
	Muted     lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Italic(true),
	Tab: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorLine)).
		Padding(0, 2),
	ActiveTab: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		Background(lipgloss.Color(colorInk)).
		Foreground(lipgloss.Color(colorPaper)).
		Bold(true).
		Padding(0, 2),
	Box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1).
		MarginBottom(1),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Underline(true),
	Chip: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorLine)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
}
