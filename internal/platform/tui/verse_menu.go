package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcislaughter/bible-cryptogram/internal/core"
	"github.com/marcislaughter/bible-cryptogram/internal/games/session"
	"github.com/marcislaughter/bible-cryptogram/internal/puzzle"
)

// VerseSelection holds the user's choice of start verse and level.
// Zero values keep the package settings (random verse, configured level).
type VerseSelection struct {
	Reference string
	Level     int
}

// verseEntry is one row of the verse list.
type verseEntry struct {
	Label     string
	Reference string
}

// VerseSelectModel lets users choose where a game starts.
type VerseSelectModel struct {
	gameID     string
	title      string
	entries    []verseEntry
	cursor     int
	listCursor int
	listTop    int
	inList     bool
	hasLevel   bool
	level      int
	width      int
	height     int
	keyMapper  *KeyMapper
	selection  VerseSelection
	choosing   bool
	quitting   bool
	back       bool
}

// NewVerseSelectModel creates a start selector for a game. Dictation lists
// chapters; the other games list verses.
func NewVerseSelectModel(gameID, title string, width, height int) VerseSelectModel {
	opts := session.CurrentOptions()

	var entries []verseEntry
	if gameID == "dictation" {
		for _, ch := range opts.Corpus.Chapters() {
			verses := opts.Corpus.InChapter(ch)
			label := fmt.Sprintf("%s (%d verses)", ch, len(verses))
			if len(verses) == 1 {
				label = fmt.Sprintf("%s (1 verse)", ch)
			}
			entries = append(entries, verseEntry{Label: label, Reference: verses[0].Reference})
		}
	} else {
		for _, v := range opts.Corpus.All() {
			entries = append(entries, verseEntry{Label: v.Reference, Reference: v.Reference})
		}
	}

	level := opts.Games.FirstLetter.Level
	if opts.Level > 0 {
		level = opts.Level
	}

	return VerseSelectModel{
		gameID:    gameID,
		title:     title,
		entries:   entries,
		hasLevel:  gameID == "firstletter",
		level:     core.Clamp(level, puzzle.MinLevel, puzzle.MaxLevel),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m VerseSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m VerseSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrollList()
		return m, nil
	}
	return m, nil
}

func (m VerseSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inList {
		return m.handleListKey(action)
	}
	return m.handleOptionKey(action)
}

func (m VerseSelectModel) options() int {
	if m.hasLevel {
		return 3 // Random, Choose, Level
	}
	return 2
}

func (m VerseSelectModel) handleOptionKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.options()-1 {
			m.cursor++
		}
	case MenuActionLeft:
		if m.hasLevel && m.cursor == 2 && m.level > puzzle.MinLevel {
			m.level--
		}
	case MenuActionRight:
		if m.hasLevel && m.cursor == 2 && m.level < puzzle.MaxLevel {
			m.level++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 1: // Choose verse
			if len(m.entries) > 0 {
				m.inList = true
				m.scrollList()
			}
		default: // Random verse, or start from the level row
			return m.choose("")
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m VerseSelectModel) handleListKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case MenuActionDown:
		if m.listCursor < len(m.entries)-1 {
			m.listCursor++
		}
	case MenuActionSelect:
		return m.choose(m.entries[m.listCursor].Reference)
	case MenuActionBack:
		m.inList = false
	}

	m.scrollList()
	return m, nil
}

func (m VerseSelectModel) choose(reference string) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = VerseSelection{Reference: reference}
	if m.hasLevel {
		m.selection.Level = m.level
	}
	return m, tea.Quit
}

// listRows returns how many list entries fit on screen.
func (m VerseSelectModel) listRows() int {
	return max(m.height-8, 3)
}

// scrollList keeps the list cursor inside the visible window.
func (m *VerseSelectModel) scrollList() {
	rows := m.listRows()
	if m.listCursor < m.listTop {
		m.listTop = m.listCursor
	}
	if m.listCursor >= m.listTop+rows {
		m.listTop = m.listCursor - rows + 1
	}
}

// View renders the start selection.
func (m VerseSelectModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inList {
		return m.viewList()
	}
	return m.viewOptions()
}

func (m VerseSelectModel) viewOptions() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Where do you want to start?", m.width))
	b.WriteString("\n\n")

	choose := "Choose verse..."
	if m.gameID == "dictation" {
		choose = "Choose chapter..."
	}
	options := []string{"Random verse", choose}
	if m.hasLevel {
		options = append(options, fmt.Sprintf("Level: < %d >  (%d%% hidden)", m.level, m.level*25-25))
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "Enter: Select  |  Esc: Back  |  Q: Quit"
	if m.hasLevel {
		help = "Enter: Select  |  Left/Right: Level  |  Esc: Back  |  Q: Quit"
	}
	b.WriteString(centerText(help, m.width))

	return b.String()
}

func (m VerseSelectModel) viewList() string {
	var b strings.Builder

	b.WriteString("\n")
	title := "SELECT VERSE"
	if m.gameID == "dictation" {
		title = "SELECT CHAPTER"
	}
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	end := min(m.listTop+m.listRows(), len(m.entries))
	for i := m.listTop; i < end; i++ {
		cursor := "  "
		if i == m.listCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%3d. %s", cursor, i+1, m.entries[i].Label)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%d/%d  |  Enter: Select  |  Esc: Back", m.listCursor+1, len(m.entries)), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m VerseSelectModel) Selected() *VerseSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m VerseSelectModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m VerseSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m VerseSelectModel) WantsBack() bool {
	return m.back
}

// RunVerseSelector runs the start selection for a game and returns the
// selection, or nil when the user went back or quit.
func RunVerseSelector(gameID, title string, cfg core.RuntimeConfig) (*VerseSelection, core.RuntimeConfig, error) {
	model := NewVerseSelectModel(gameID, title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(VerseSelectModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
