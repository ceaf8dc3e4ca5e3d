package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the stats sidebar
	sidebarWidth       = 24
	maxRuns            = 100
	historyMode        = "invaders"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "table/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the high score table and the run history.
type ScoreboardModel struct {
	svc         Services
	history     bool // showing run history instead of the table
	runs        []storage.Run
	stats       *storage.Stats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(svc Services, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		svc:         svc,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	if m.history {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Wave", Width: 6},
			{Title: "Date", Width: 14},
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 6},
			{Title: "Score", Width: 8},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload refreshes rows from the ledger or the run store.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.history && m.svc.Store != nil {
		if runs, err := m.svc.Store.TopRuns(historyMode, maxRuns); err == nil {
			m.runs = runs
		} else {
			m.svc.logger().Warn("could not load runs", "error", err)
		}
		if stats, err := m.svc.Store.Stats(historyMode); err == nil {
			m.stats = stats
		}
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	if m.history {
		rows := make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				r.Initials,
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Wave),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}

	if m.svc.Deps.Ledger == nil {
		return nil
	}
	entries := m.svc.Deps.Ledger.Entries()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Initials,
			fmt.Sprintf("%06d", e.Score),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.history = !m.history
			m.table = m.createTable()
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if m.history {
		title = "RUN HISTORY"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := boxStyle.Render(m.renderTableContent())

	if m.history && m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderStats())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", content))
	} else {
		b.WriteString(centerText(content, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderStats() string {
	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	if m.stats == nil || m.stats.Runs == 0 {
		b.WriteString("no runs yet")
		return b.String()
	}
	fmt.Fprintf(&b, "Runs     %d\n", m.stats.Runs)
	fmt.Fprintf(&b, "Best     %d\n", m.stats.HighScore)
	fmt.Fprintf(&b, "Average  %.0f\n", m.stats.AvgScore)
	fmt.Fprintf(&b, "Wave     %d\n", m.stats.BestWave)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&b, "Last     %s", m.stats.LastPlayed.Format("Jan 02"))
	}
	return b.String()
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.history && m.svc.Store == nil {
			return emptyStyle.Render("Run history is disabled.")
		}
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(svc Services, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(svc, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
