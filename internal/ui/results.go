package ui

// results.go is the post-scan browser: a tabbed view over the profile
// card, the filterable repository table, and recent public activity.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thesavant42/reporadar/internal/filter"
	"github.com/thesavant42/reporadar/internal/store"
)

const (
	pageProfile = iota
	pageRepositories
	pageActivity
	pageCount
)

var pageNames = [pageCount]string{"Profile", "Repositories", "Activity"}

// sortCycle is the order the s key steps through.
var sortCycle = []string{filter.SortUpdated, filter.SortCreated, filter.SortPushed, filter.SortFullName}

// typeCycle is the order the t key steps through.
var typeCycle = []string{filter.TypeAll, filter.TypeOwner, filter.TypeMember}

type resultsModel struct {
	st     *store.Store
	layout Layout

	page       int
	repoTable  table.Model
	eventTable table.Model

	search    textinput.Model
	searching bool

	quitting bool
}

// BrowseResults shows the tabbed results browser until the user quits.
func BrowseResults(st *store.Store) error {
	p := tea.NewProgram(newResultsModel(st))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("results browser error: %w", err)
	}
	return nil
}

func newResultsModel(st *store.Store) resultsModel {
	layout := DefaultLayout()

	search := textinput.New()
	search.Placeholder = "search name or description"
	search.CharLimit = 64
	search.SetValue(st.Filters().Search)

	m := resultsModel{
		st:     st,
		layout: layout,
		search: search,
	}
	m.repoTable = m.buildRepoTable()
	m.eventTable = m.buildEventTable()
	return m
}

func (m resultsModel) buildRepoTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Language", Width: 14},
		{Title: "Stars", Width: 7},
		{Title: "Forks", Width: 7},
		{Title: "Type", Width: 6},
		{Title: "Updated", Width: 10},
	}

	var rows []table.Row
	for _, repo := range m.st.FilteredRepositories() {
		kind := "source"
		if repo.Fork {
			kind = "fork"
		}
		rows = append(rows, table.Row{
			repo.Name,
			repo.Language,
			FormatCount(repo.StargazersCount),
			FormatCount(repo.Forks),
			kind,
			FormatRelativeTime(repo.UpdatedAt),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()
	return t
}

func (m resultsModel) buildEventTable() table.Model {
	columns := []table.Column{
		{Title: "Type", Width: 26},
		{Title: "Repository", Width: 36},
		{Title: "When", Width: 10},
	}

	var rows []table.Row
	if profile := m.st.Profile(); profile != nil {
		for _, event := range profile.RecentEvents {
			rows = append(rows, table.Row{
				event.Type,
				event.Repo.Name,
				FormatRelativeTime(event.CreatedAt),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(TableHeight),
	)
	ApplyTableStyles(&t)
	t.GotoTop()
	return t
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = NewLayout(msg.Width)
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m resultsModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		spec := m.st.Filters()
		spec.Search = strings.TrimSpace(m.search.Value())
		m.st.SetFilters(spec)
		m.repoTable = m.buildRepoTable()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.st.Filters().Search)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m resultsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right":
		m.page = (m.page + 1) % pageCount
		return m, nil
	case "shift+tab", "left":
		m.page = (m.page + pageCount - 1) % pageCount
		return m, nil

	case "s":
		if m.page == pageRepositories {
			spec := m.st.Filters()
			spec.SortBy = nextInCycle(sortCycle, spec.SortBy)
			m.st.SetFilters(spec)
			m.repoTable = m.buildRepoTable()
		}
		return m, nil
	case "d":
		if m.page == pageRepositories {
			spec := m.st.Filters()
			if spec.Direction == filter.DirectionDesc {
				spec.Direction = filter.DirectionAsc
			} else {
				spec.Direction = filter.DirectionDesc
			}
			m.st.SetFilters(spec)
			m.repoTable = m.buildRepoTable()
		}
		return m, nil
	case "t":
		if m.page == pageRepositories {
			spec := m.st.Filters()
			spec.Type = nextInCycle(typeCycle, spec.Type)
			m.st.SetFilters(spec)
			m.repoTable = m.buildRepoTable()
		}
		return m, nil
	case "l":
		if m.page == pageRepositories {
			spec := m.st.Filters()
			spec.Language = nextLanguage(m.st.AvailableLanguages(), spec.Language)
			m.st.SetFilters(spec)
			m.repoTable = m.buildRepoTable()
		}
		return m, nil
	case "/":
		if m.page == pageRepositories {
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.page {
	case pageRepositories:
		m.repoTable, cmd = m.repoTable.Update(msg)
	case pageActivity:
		m.eventTable, cmd = m.eventTable.Update(msg)
	}
	return m, cmd
}

// nextInCycle steps to the value after current, wrapping around.
func nextInCycle(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// nextLanguage cycles through no-filter plus every available language.
func nextLanguage(available []string, current string) string {
	if len(available) == 0 {
		return ""
	}
	if current == "" {
		return available[0]
	}
	for i, lang := range available {
		if lang == current {
			if i == len(available)-1 {
				return ""
			}
			return available[i+1]
		}
	}
	return ""
}

func (m resultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	profile := m.st.Profile()
	if profile != nil && profile.User != nil {
		b.WriteString(TitleStyle.Render("RepoRadar"))
		b.WriteString(LabelStyle.Render("  scanning @" + profile.User.Login))
		b.WriteString("\n\n")
	}

	var tabs []string
	for i, name := range pageNames {
		if i == m.page {
			tabs = append(tabs, TabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, LabelStyle.Render("  |  ")))
	b.WriteString("\n\n")

	switch m.page {
	case pageProfile:
		b.WriteString(RenderProfile(m.st, m.layout))
	case pageRepositories:
		b.WriteString(m.repoTable.View())
		b.WriteString("\n")
		b.WriteString(m.renderFilterLine())
		if m.searching {
			b.WriteString("\n")
			b.WriteString(m.search.View())
		}
	case pageActivity:
		b.WriteString(m.eventTable.View())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.helpText()))
	b.WriteString("\n")

	return BorderStyle.Width(m.layout.ViewportWidth).Render(b.String())
}

func (m resultsModel) renderFilterLine() string {
	spec := m.st.Filters()
	parts := []string{
		"sort: " + spec.SortBy + " " + spec.Direction,
		"type: " + spec.Type,
	}
	if spec.Language != "" {
		parts = append(parts, "language: "+spec.Language)
	}
	if spec.Search != "" {
		parts = append(parts, "search: "+spec.Search)
	}
	parts = append(parts, fmt.Sprintf("%d shown", len(m.st.FilteredRepositories())))
	return LabelStyle.Render(strings.Join(parts, "  ·  "))
}

func (m resultsModel) helpText() string {
	if m.searching {
		return "enter: apply search | esc: cancel"
	}
	if m.page == pageRepositories {
		return "↑/↓: navigate | tab: switch page | s: sort | d: direction | t: type | l: language | /: search | q: quit"
	}
	return "tab: switch page | q: quit"
}
