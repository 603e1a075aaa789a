package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Game is what the platform needs from a game. Games contain pure logic with
// no Bubble Tea dependency; the platform handles input, timing and drawing.
type Game interface {
	// ID returns the identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset seeds the game and starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts to a new terminal size without losing progress.
	Resize(w, h int)

	// SetBest seeds the best score shown by the game.
	SetBest(score int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Session identifies who is playing, for score records and logs.
type Session struct {
	ID     string
	Player string
}

// Options configures a game model. Only Runtime is required.
type Options struct {
	Store         *storage.Store // nil disables persistence
	Logger        *log.Logger    // nil discards logs
	Runtime       core.RuntimeConfig
	Session       Session
	ScreenshotDir string // empty means ~/.t2048/screenshots
}

// withDefaults fills the optional fields.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if o.Session.ID == "" {
		o.Session.ID = uuid.NewString()
	}
	if o.ScreenshotDir == "" {
		o.ScreenshotDir = filepath.Join(config.DataDir(), "screenshots")
	}
	return o
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game       Game
	screen     *core.Screen
	opts       Options
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // Esc/B returns to the menu
	gen        int  // tick chain owned by this model
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, opts Options) GameModel {
	opts = opts.withDefaults()

	return GameModel{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)

	if m.opts.Store != nil {
		best, err := m.opts.Store.HighScore(m.game.ID())
		if err != nil {
			m.opts.Logger.Warn("could not load high score", "error", err)
		}
		m.game.SetBest(best)
	}

	m.opts.Logger.Info("game started",
		"session", m.opts.Session.ID,
		"player", m.opts.Session.Player,
		"seed", m.opts.Runtime.Seed,
	)

	return tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the key as an action for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.allowBack {
			m.backToMenu = true
		}
	case core.ActionNone, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the board; the game only pauses while the window is too small.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Finished {
		m.recordResult(result.State)
	}
	if result.Restarted {
		m.opts.Logger.Debug("new game", "session", m.opts.Session.ID)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.opts.Runtime.TickRate, m.gen)
}

// recordResult logs a finished game and stores it. Storage failures are
// logged and otherwise ignored.
func (m GameModel) recordResult(st core.GameState) {
	m.opts.Logger.Info("game over",
		"session", m.opts.Session.ID,
		"outcome", st.Result,
		"score", st.Score,
		"max_tile", st.MaxTile,
		"moves", st.Moves,
	)

	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		GameID:    m.game.ID(),
		SessionID: m.opts.Session.ID,
		Player:    m.opts.Session.Player,
		Score:     st.Score,
		MaxTile:   st.MaxTile,
		Moves:     st.Moves,
		Outcome:   st.Result,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a single game until the user quits.
func Run(game Game, opts Options) error {
	model := NewGameModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
