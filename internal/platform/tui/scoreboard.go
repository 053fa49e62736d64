package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hue-hunt/internal/registry"
	"github.com/vovakirdan/hue-hunt/internal/storage"
)

const (
	minWidthForStats = 72 // below this the stats panel moves under the table
	statsWidth       = 22
	maxScores        = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Game       key.Binding
	Filter     key.Binding
	Difficulty key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Filter, k.Difficulty, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Filter, k.Difficulty},
		{k.Game, k.Back, k.Quit},
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
		Game: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		Filter: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "all/mine"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
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

// ScoreboardModel lists best final stages with a stats panel.
type ScoreboardModel struct {
	games        []registry.GameInfo
	gameCursor   int
	store        *storage.Store
	player       string // "" is local play
	mine         bool   // only the player's rounds
	difficulties []string
	diffCursor   int // 0 is every difficulty, i is difficulties[i-1]
	rounds       []storage.Round
	stats        *storage.Stats
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a scoreboard for the given player.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.selectGame(0)
	return m
}

// selectGame switches to games[i] and its difficulty presets.
func (m *ScoreboardModel) selectGame(i int) {
	m.gameCursor = i
	m.difficulties = nil
	m.diffCursor = 0
	if id := m.gameID(); id != "" {
		if g, err := registry.Create(id); err == nil {
			if t, ok := g.(registry.Tunable); ok {
				m.difficulties = t.Difficulties()
			}
		}
	}
	m.reload()
}

func (m *ScoreboardModel) difficulty() string {
	if m.diffCursor == 0 {
		return ""
	}
	return m.difficulties[m.diffCursor-1]
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Stage", Width: 7},
		{Title: "Player", Width: 10},
		{Title: "Level", Width: 8},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.width >= minWidthForStats {
		tableWidth -= statsWidth + 4
	}
	if tableWidth > 60 {
		columns[2].Width = min(tableWidth-41, 24)
	}

	height := m.height - 8
	if m.width < minWidthForStats {
		height -= 6
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
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

func (m *ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload fetches rows and stats for the current game and filters.
// Storage failures leave the board empty.
func (m *ScoreboardModel) reload() {
	m.rounds, m.stats = nil, nil
	if m.store != nil && m.gameID() != "" {
		rounds, err := m.store.BestRounds(storage.RoundQuery{
			GameID:     m.gameID(),
			Difficulty: m.difficulty(),
			Player:     m.player,
			ByPlayer:   m.mine,
			Limit:      maxScores,
		})
		if err == nil {
			m.rounds = rounds
		}
		if stats, err := m.store.Stats(m.gameID()); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Stage),
			playerLabel(r.Player),
			r.Difficulty,
			r.PlayedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func playerLabel(player string) string {
	if player == "" {
		return "local"
	}
	return player
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

		case key.Matches(msg, m.keys.Filter):
			m.mine = !m.mine
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Difficulty):
			m.diffCursor = (m.diffCursor + 1) % (len(m.difficulties) + 1)
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Game):
			if len(m.games) > 1 {
				m.selectGame((m.gameCursor + 1) % len(m.games))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.reload()
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
		Foreground(lipgloss.Color("229"))

	title := "BEST STAGES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("BEST STAGES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.filterLine(), m.width))
	b.WriteString("\n\n")

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	board := panel.Render(m.tableView())
	stats := panel.Width(statsWidth).Render(m.statsView())
	if m.width >= minWidthForStats {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", stats))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, board, stats))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) filterLine() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	idle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	tab := func(label string, on bool) string {
		if on {
			return active.Render("[" + label + "]")
		}
		return idle.Render("[" + label + "]")
	}

	parts := []string{tab("all", !m.mine), tab(playerLabel(m.player), m.mine)}
	if len(m.difficulties) > 0 {
		parts = append(parts, " ", tab("any", m.diffCursor == 0))
		for i, d := range m.difficulties {
			parts = append(parts, tab(d, m.diffCursor == i+1))
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) tableView() string {
	if len(m.rounds) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No rounds recorded yet.\nFinish a round to set a best stage!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return "Stats\n\nno rounds"
	}
	return fmt.Sprintf("Stats\n\nRounds  %d\nBest    %d\nAverage %.1f\nLast    %s",
		m.stats.Rounds,
		m.stats.BestStage,
		m.stats.AvgStage,
		m.stats.LastPlayed.Format("Jan 02"),
	)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for local play.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, "", width, height),
		tea.WithAltScreen(),
	)

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
