package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func boardKeys(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(ScoreboardModel); !ok {
			t.Fatalf("expected ScoreboardModel, got %T", next)
		}
	}
	return m
}

var keyV = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}

func TestScoreboardViews(t *testing.T) {
	store := testStore(t)
	for _, s := range []struct {
		ref   string
		score int
	}{
		{"John 3:16", 60},
		{"John 3:16", 90},
		{"Psalm 23:1", 75},
	} {
		if _, err := store.SaveScore("cryptogram", s.ref, s.score); err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"Top scores", "> Verse Cryptogram", "John 3:16", "90%", "Solved: 3", "Verses: 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("top view missing %q:\n%s", want, view)
		}
	}

	m = boardKeys(t, m, keyV)
	if m.view != viewVerses {
		t.Fatalf("v should switch to the verse view, got %v", m.view)
	}
	want := []table.Row{{"John 3:16", "90%", "2"}, {"Psalm 23:1", "75%", "1"}}
	if diff := cmp.Diff(want, m.table.Rows()); diff != "" {
		t.Errorf("verse rows mismatch (-want +got):\n%s", diff)
	}

	m = boardKeys(t, m, enter)
	if m.view != viewHistory || m.verse != "John 3:16" {
		t.Fatalf("enter should open the history of the selected verse, got %v %q", m.view, m.verse)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "90%" || rows[1][1] != "60%" {
		t.Errorf("history should list newest first, got %v", rows)
	}
	if !strings.Contains(m.View(), "History - John 3:16") {
		t.Errorf("history view should name the verse:\n%s", m.View())
	}

	m = boardKeys(t, m, keyEsc)
	if m.view != viewVerses || m.IsGoingBack() {
		t.Error("esc in the history should return to the verse view")
	}

	m = boardKeys(t, m, keyV)
	if m.view != viewTop {
		t.Errorf("v should switch back to top scores, got %v", m.view)
	}

	next, cmd := m.Update(keyEsc)
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc in the top view should leave the scoreboard")
	}
}

func TestScoreboardSwitchGames(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveScore("cryptogram", "John 11:35", 100); err != nil {
		t.Fatalf("SaveScore() error: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.gameID() != "cryptogram" {
		t.Fatalf("first game = %q, want cryptogram", m.gameID())
	}

	m = boardKeys(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.gameID() != "dictation" {
		t.Errorf("tab should select the next game, got %q", m.gameID())
	}
	if !strings.Contains(m.View(), "No verses solved yet.") {
		t.Errorf("empty game should show the empty message:\n%s", m.View())
	}

	m = boardKeys(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.gameID() != "unscramble" {
		t.Errorf("left should wrap to the last game, got %q", m.gameID())
	}
}

func TestScoreboardNarrowShowsTabs(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 24)
	view := m.View()
	if strings.Contains(view, "> Verse Cryptogram") {
		t.Error("narrow layout should not draw the sidebar")
	}
	if !strings.Contains(view, "< Verse Cryptogram >") {
		t.Errorf("tabs that do not fit should collapse to the current game:\n%s", view)
	}
	if !strings.Contains(view, "HIGH SCORES - Verse Cryptogram") {
		t.Errorf("missing title:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Verse Cryptogram", 20, "Verse Cryptogram"},
		{"Verse Cryptogram", 8, "Verse C."},
		{"ab", 1, "ab"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
