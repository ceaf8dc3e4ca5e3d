package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Pseudo entries appended after the registered modes.
const (
	itemScores = "scores"
	itemQuit   = "quit"
)

// AttractMode is the registry id the menu falls into when left idle.
const AttractMode = "attract"

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	ID    string
	Title string
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	hiScore   int
	config    core.RuntimeConfig
	idleLimit time.Duration // time without input before the demo starts; 0 disables
	lastInput time.Time
	gen       int64
	quitting  bool
	selected  *MenuItem
}

// idleMsg polls the idle timer. gen ties it to the menu instance that
// scheduled it so a stale poll cannot start a second chain.
type idleMsg struct {
	gen int64
	at  time.Time
}

const idlePoll = 250 * time.Millisecond

func idleCmd(gen int64) tea.Cmd {
	return tea.Tick(idlePoll, func(t time.Time) tea.Msg {
		return idleMsg{gen: gen, at: t}
	})
}

// NewMenuModel creates a new menu model. The attract demo is not listed;
// it starts after idle passes without a key press.
func NewMenuModel(svc Services, cfg core.RuntimeConfig, idle time.Duration) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+2)
	for _, g := range games {
		if g.ID == AttractMode {
			continue
		}
		items = append(items, MenuItem{ID: g.ID, Title: g.Title})
	}
	items = append(items,
		MenuItem{ID: itemScores, Title: "High Scores"},
		MenuItem{ID: itemQuit, Title: "Quit"},
	)

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		idleLimit: max(idle, 0),
		lastInput: time.Now(),
		gen:       time.Now().UnixNano(),
	}
	if l := svc.Deps.Ledger; l != nil {
		if entries := l.Entries(); len(entries) > 0 {
			m.hiScore = entries[0].Score
		}
	}
	return m
}

// Init starts the idle timer when the demo is enabled.
func (m MenuModel) Init() tea.Cmd {
	if m.idleLimit == 0 {
		return nil
	}
	return idleCmd(m.gen)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.lastInput = time.Now()
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case idleMsg:
		if msg.gen != m.gen || m.idleLimit == 0 || m.selected != nil || m.quitting {
			return m, nil
		}
		if msg.at.Sub(m.lastInput) >= m.idleLimit {
			m.selected = &MenuItem{ID: AttractMode}
			return m, tea.Quit
		}
		return m, idleCmd(m.gen)
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.ID == itemQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuHiStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuFooterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "  I N V A D E R S  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(menuHiStyle, fmt.Sprintf("HI %06d", m.hiScore), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(centerStyled(menuCursorStyle, "> "+item.Title, m.width))
		} else {
			b.WriteString(centerText("  "+item.Title, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuFooterStyle, "Up/Down: Navigate  |  Enter: Select  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-n)/2) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func menuResult(m MenuModel) MenuResult {
	result := MenuResult{Config: m.Config()}
	switch sel := m.Selected(); {
	case m.IsQuitting() || sel == nil:
		result.Quit = true
	case sel.ID == itemScores:
		result.WantsScoreboard = true
	default:
		result.GameID = sel.ID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(svc Services, cfg core.RuntimeConfig, idle time.Duration) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(svc, cfg, idle), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return menuResult(m), nil
}
