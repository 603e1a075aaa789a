package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// GameFactory creates a fresh game for each "New game" pick.
type GameFactory func() Game

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for the menu command and for SSH sessions.
type SessionModel struct {
	newGame GameFactory
	gameID  string
	opts    Options
	seed    int64 // configured seed; 0 picks a new one per game

	screen   sessionScreen
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	gen      int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(newGame GameFactory, opts Options) SessionModel {
	seed := opts.Runtime.Seed
	opts = opts.withDefaults()
	opts.Runtime.Seed = seed

	m := SessionModel{
		newGame: newGame,
		gameID:  newGame().ID(),
		opts:    opts,
		seed:    seed,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.opts.Store != nil {
		if high, err := m.opts.Store.HighScore(m.gameID); err == nil {
			best = high
		}
	}
	return NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	m.opts.Logger.Info("session started", "session", m.opts.Session.ID, "player", m.opts.Session.Player)
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuQuit:
		return m.quit()

	case MenuNewGame:
		opts := m.opts
		opts.Runtime.Seed = m.seed
		m.gen++

		m.game = NewGameModel(m.newGame(), opts)
		m.game.allowBack = true
		m.game.gen = m.gen
		m.screen = screenGame
		return m, m.game.Init()

	case MenuScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.gameID, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		return m.quit()
	}

	if m.game.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		return m.quit()
	}

	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.opts.Logger.Info("session ended", "session", m.opts.Session.ID, "player", m.opts.Session.Player)
	return m, tea.Quit
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session until the user quits.
func RunSession(newGame GameFactory, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(newGame, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
