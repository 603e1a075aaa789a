package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	m := NewSessionModel(func() Game { return t2048.New(t2048.DefaultOptions()) }, testOptions(t, store))
	m.Init()
	return m
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, nil)

	if !strings.Contains(ansi.Strip(m.View()), "New game") {
		t.Fatal("session should start at the menu")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %d, want game", m.screen)
	}
	if m.game.gen != 1 {
		t.Errorf("first game gen = %d, want 1", m.game.gen)
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %d", m.screen)
	}
	if m.menu.Choice() != MenuNone {
		t.Error("menu should be fresh after returning")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.gen != 2 {
		t.Errorf("second game gen = %d, want 2", m.game.gen)
	}
}

func TestSessionScores(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: t2048.ID, Player: "ann", Score: 4321, MaxTile: 256, Outcome: "loss"}); err != nil {
		t.Fatal(err)
	}

	m := newTestSession(t, store)
	if !strings.Contains(ansi.Strip(m.View()), "Best score: 4321") {
		t.Error("menu should show the stored best score")
	}

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenScores {
		t.Fatalf("screen = %d, want scores", m.screen)
	}

	out := ansi.Strip(m.View())
	for _, want := range []string{"HIGH SCORES", "4321", "ann"} {
		if !strings.Contains(out, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, out)
		}
	}

	m, _ = sessionStep(t, m, runeKey('b'))
	if m.screen != screenMenu {
		t.Error("b should return to the menu")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.quitting || cmd == nil {
		t.Error("Quit item should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession(t, nil)
	m, _ = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := sessionStep(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	sb := NewScoreboardModel(nil, t2048.ID, 80, 24)
	if !strings.Contains(ansi.Strip(sb.View()), "unavailable") {
		t.Error("scoreboard without a store should say so")
	}

	sb = NewScoreboardModel(openStore(t), t2048.ID, 80, 24)
	if !strings.Contains(ansi.Strip(sb.View()), "No scores recorded yet") {
		t.Error("empty scoreboard should invite the player to play")
	}
}

func TestScoreboardSwitchView(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{300, 100, 200} {
		if _, err := store.SaveResult(storage.Result{GameID: t2048.ID, Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	sb := NewScoreboardModel(store, t2048.ID, 100, 30)
	if sb.scores[0].Score != 300 {
		t.Errorf("top view first score = %d, want 300", sb.scores[0].Score)
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb = next.(ScoreboardModel)
	if sb.view != ViewRecent || sb.scores[0].Score != 200 {
		t.Errorf("recent view = %v, first score %d, want newest 200", sb.view, sb.scores[0].Score)
	}
	if !strings.Contains(ansi.Strip(sb.View()), "Games: 3") {
		t.Error("stats line missing")
	}
}
