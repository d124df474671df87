package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/registry"
	"github.com/marcislaughter/bible-cryptogram/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 22  // Width of game list sidebar
	maxScores          = 100 // Max scores to load
)

// boardView is what the scoreboard table lists.
type boardView int

const (
	viewTop     boardView = iota // best completions of the game
	viewVerses                   // best score per verse
	viewHistory                  // every completion of one verse
)

func (v boardView) String() string {
	switch v {
	case viewVerses:
		return "Best per verse"
	case viewHistory:
		return "History"
	default:
		return "Top scores"
	}
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Open     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextGame, k.Toggle, k.Open, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Open, k.Back, k.Quit},
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
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/right", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/left", "prev game"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "top/by verse"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "verse history"),
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

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store

	view    boardView
	verse   string // reference shown by viewHistory
	entries []storage.ScoreEntry
	verses  []storage.VerseBest
	stats   *storage.GameStats

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) gameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload queries the store for the current game and view and rebuilds the
// table.
func (m *ScoreboardModel) reload() {
	m.entries, m.verses, m.stats = nil, nil, nil

	if id := m.gameID(); m.store != nil && id != "" {
		switch m.view {
		case viewTop:
			m.entries, _ = m.store.TopScores(id, maxScores)
		case viewVerses:
			m.verses, _ = m.store.BestVerses(id)
		case viewHistory:
			m.entries, _ = m.store.ScoresForVerse(id, m.verse)
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}

	m.table = m.newTable()
}

// tableWidth is the width left for the table inside its border.
func (m ScoreboardModel) tableWidth() int {
	w := m.width - 6
	if m.showSidebar() {
		w -= sidebarWidth + 4
	}
	return w
}

func (m ScoreboardModel) columns() []table.Column {
	// Fixed columns first; the verse column takes what is left.
	verseWidth := func(fixed int) int {
		return core.Clamp(m.tableWidth()-fixed, 12, 28)
	}

	switch m.view {
	case viewVerses:
		return []table.Column{
			{Title: "Verse", Width: verseWidth(18)},
			{Title: "Best", Width: 6},
			{Title: "Solved", Width: 8},
		}
	case viewHistory:
		return []table.Column{
			{Title: "#", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 18},
		}
	default:
		return []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Verse", Width: verseWidth(31)},
			{Title: "Date", Width: 14},
		}
	}
}

func (m ScoreboardModel) rows() []table.Row {
	switch m.view {
	case viewVerses:
		rows := make([]table.Row, len(m.verses))
		for i, v := range m.verses {
			rows[i] = table.Row{v.Reference, fmt.Sprintf("%d%%", v.Best), fmt.Sprintf("%d", v.Plays)}
		}
		return rows
	case viewHistory:
		rows := make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{
				fmt.Sprintf("%d", len(m.entries)-i),
				fmt.Sprintf("%d%%", e.Score),
				e.CreatedAt.Format("2006-01-02 15:04"),
			}
		}
		return rows
	default:
		rows := make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d%%", e.Score),
				e.Reference,
				e.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-11, 3)), // Title, view line, stats, help and borders
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

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.newTable()
		m.table.SetCursor(cursor)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.view == viewHistory {
			m.view = viewVerses
			m.reload()
			return m, nil
		}
		m.goingBack = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.PrevGame):
		if n := len(m.games); n > 0 {
			step := 1
			if key.Matches(msg, m.keys.PrevGame) {
				step = n - 1
			}
			m.gameCursor = (m.gameCursor + step) % n
			if m.view == viewHistory {
				m.view = viewVerses
			}
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.view == viewTop {
			m.view = viewVerses
		} else {
			m.view = viewTop
		}
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.view == viewVerses {
			if i := m.table.Cursor(); i >= 0 && i < len(m.verses) {
				m.verse = m.verses[i].Reference
				m.view = viewHistory
				m.reload()
			}
		}
		return m, nil
	}

	// Scrolling and the rest of the table keys
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(centerText(m.viewLine(), m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	board := boxStyle.Render(m.tableContent())

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText(m.tabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(board, m.width))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// viewLine names the current listing.
func (m ScoreboardModel) viewLine() string {
	if m.view == viewHistory {
		return fmt.Sprintf("%s - %s", m.view, m.verse)
	}
	return m.view.String()
}

// statsLine summarizes the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	return fmt.Sprintf("Solved: %d  |  Verses: %d  |  Best: %d%%  |  Average: %.0f%%",
		m.stats.GamesCount, m.stats.VersesCount, m.stats.HighScore, m.stats.AvgScore)
}

// sidebar lists the games with the selected one marked.
func (m ScoreboardModel) sidebar() string {
	var s strings.Builder
	s.WriteString("Games\n")
	s.WriteString(strings.Repeat("-", sidebarWidth-4))
	s.WriteString("\n")

	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-6)
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			line = "> " + truncate(g.Title, sidebarWidth-6)
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		s.WriteString(style.Render(line))
		s.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(s.String())
}

// tabs shows the games in one line, or only the current one when they do
// not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := tabStyle.Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		style := tabStyle
		if i == m.gameCursor {
			style = activeStyle
		}
		tabs[i] = style.Render(truncate(g.Title, 12))
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.table.Rows()) > 0 {
		return m.table.View()
	}

	msg := "No verses solved yet.\nSolve a puzzle to record a score!"
	if m.view == viewHistory {
		msg = fmt.Sprintf("No scores for %s.", m.verse)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render(msg)
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 2 {
		return s
	}
	return string(r[:n-1]) + "."
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
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

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
