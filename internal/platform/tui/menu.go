package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hue-hunt/internal/core"
	"github.com/vovakirdan/hue-hunt/internal/registry"
	"github.com/vovakirdan/hue-hunt/internal/storage"
)

// MenuItem represents a selectable game and difficulty in the menu.
type MenuItem struct {
	GameID     string
	Title      string
	Difficulty string // empty for games without presets
	Best       int    // best stored stage, 0 when unknown
}

// Label is the text shown for the item.
func (it MenuItem) Label() string {
	label := it.Title
	if it.Difficulty != "" {
		label = fmt.Sprintf("%s (%s)", label, it.Difficulty)
	}
	if it.Best > 0 {
		label = fmt.Sprintf("%s  best %d", label, it.Best)
	}
	return label
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// menuItems lists every registered game, once per difficulty for games
// that offer presets. The cursor starts on the middle preset.
func menuItems(store *storage.Store) (items []MenuItem, cursor int) {
	cursor = -1
	best := func(gameID, difficulty string) int {
		if store == nil {
			return 0
		}
		stage, err := store.BestStage(gameID, difficulty)
		if err != nil {
			return 0
		}
		return stage
	}

	for _, info := range registry.List() {
		g, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		tunable, ok := g.(registry.Tunable)
		if !ok {
			items = append(items, MenuItem{GameID: info.ID, Title: info.Title, Best: best(info.ID, "")})
			continue
		}

		presets := tunable.Difficulties()
		if cursor < 0 && len(presets) > 0 {
			cursor = len(items) + len(presets)/2
		}
		for _, d := range presets {
			items = append(items, MenuItem{
				GameID:     info.ID,
				Title:      info.Title,
				Difficulty: d,
				Best:       best(info.ID, d),
			})
		}
	}
	return items, max(cursor, 0)
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	items, cursor := menuItems(store)

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "H U E   H U N T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(centerStyled(menuActiveStyle, "> "+item.Label(), m.width))
		} else {
			b.WriteString(centerText("  "+item.Label(), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(menuHelpStyle, controls, m.width))
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

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerStyled centers text by its plain width, then styles it.
func centerStyled(style lipgloss.Style, text string, width int) string {
	padding := max((width-len(text))/2, 0)
	return strings.Repeat(" ", padding) + style.Render(text)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the menu's final state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Difficulty = m.Selected().Difficulty
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}

// CreateGame instantiates a registered game and applies the difficulty
// for games that support presets.
func CreateGame(gameID, difficulty string) (registry.Game, error) {
	g, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if t, ok := g.(registry.Tunable); ok && difficulty != "" {
		if err := t.SetDifficulty(difficulty); err != nil {
			return nil, err
		}
	}
	return g, nil
}
