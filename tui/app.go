// Package tui previews the portfolio in a terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runsha/sketchfolio/model"
)

const defaultWidth = 80

// Model is the bubbletea model of the preview. It owns the page's selector.
type Model struct {
	profile  *model.Profile
	selector *model.Selector
	keys     keyMap
	help     help.Model
	width    int
	quitting bool
}

func New(profile *model.Profile) Model {
	return Model{
		profile:  profile,
		selector: model.NewSelector(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    defaultWidth,
	}
}

// Current returns the section shown by the preview.
func (m Model) Current() model.Section {
	return m.selector.Current()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true

			return m, tea.Quit
		case key.Matches(msg, m.keys.About):
			m.selector.Select(model.SectionAbout)
		case key.Matches(msg, m.keys.Skills):
			m.selector.Select(model.SectionSkills)
		case key.Matches(msg, m.keys.Projects):
			m.selector.Select(model.SectionProjects)
		case key.Matches(msg, m.keys.Next):
			m.selector.Next()
		case key.Matches(msg, m.keys.Prev):
			m.selector.Prev()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(Styles.Title.Render(fmt.Sprintf("Hey, I'm %s!", m.profile.Name)))
	b.WriteString("\n")
	b.WriteString(Styles.Tagline.Render(m.profile.Tagline))
	b.WriteString("\n\n")
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(m.panel())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) tabs() string {
	sections := model.AllSections()
	rendered := make([]string, 0, len(sections))

	for _, section := range sections {
		style := Styles.Tab
		if m.selector.IsActive(section) {
			style = Styles.ActiveTab
		}

		rendered = append(rendered, style.Render(section.Label()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// panel renders the current section only.
func (m Model) panel() string {
	switch m.selector.Current() {
	case model.SectionAbout:
		return m.aboutPanel()
	case model.SectionSkills:
		return m.skillsPanel()
	case model.SectionProjects:
		return m.projectsPanel()
	default:
		panic(fmt.Sprintf("no panel for section %q", m.selector.Current()))
	}
}

func (m Model) boxWidth() int {
	// border and padding take four columns
	return max(m.width-4, 20)
}

func (m Model) aboutPanel() string {
	box := Styles.Box.Width(m.boxWidth())

	var about strings.Builder

	about.WriteString(Styles.Heading.Render("About Me"))

	for _, paragraph := range m.profile.About {
		about.WriteString("\n\n" + paragraph)
	}

	out := box.Render(about.String())

	if len(m.profile.Highlights) > 0 {
		var doing strings.Builder

		doing.WriteString(Styles.Heading.Render("What I Do"))

		for _, item := range m.profile.Highlights {
			doing.WriteString("\n" + strings.TrimSpace(item.Icon+" "+item.Text))
		}

		out += "\n" + box.Render(doing.String())
	}

	return out
}

func (m Model) skillsPanel() string {
	box := Styles.Box.Width(m.boxWidth())
	groups := make([]string, 0, len(m.profile.Skills))

	for _, group := range m.profile.Skills {
		chips := make([]string, 0, len(group.Items))
		for _, item := range group.Items {
			chips = append(chips, Styles.Chip.Render(item))
		}

		groups = append(groups, box.Render(
			Styles.Heading.Render(group.Category)+"\n"+wrapChips(chips, m.boxWidth()-2)))
	}

	return strings.Join(groups, "\n")
}

func (m Model) projectsPanel() string {
	box := Styles.Box.Width(m.boxWidth())
	cards := make([]string, 0, len(m.profile.Projects))

	for _, project := range m.profile.Projects {
		cards = append(cards, box.Render(fmt.Sprintf("%s\n%s\n%s\n%s",
			Styles.Heading.Render(project.Title),
			project.Description,
			Styles.Muted.Render(strings.Join(project.Tech, " · ")),
			project.Link)))
	}

	return strings.Join(cards, "\n")
}

// wrapChips lays chips out in rows no wider than width.
func wrapChips(chips []string, width int) string {
	var rows []string

	var row []string

	rowWidth := 0

	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}

		row = append(row, chip)
		rowWidth += w
	}

	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run starts the preview and blocks until the user quits.
func Run(profile *model.Profile) error {
	if _, err := tea.NewProgram(New(profile), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("could not run preview: %w", err)
	}

	return nil
}
