package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// MenuChoice is what the user picked in the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuNewGame
	MenuScores
	MenuQuit
)

// MenuItem is one line of the start menu.
type MenuItem struct {
	Choice MenuChoice
	Label  string
}

// menuItems is the fixed start menu.
var menuItems = []MenuItem{
	{MenuNewGame, "New game"},
	{MenuScores, "High scores"},
	{MenuQuit, "Quit"},
}

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("178")).
			Padding(0, 3)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	menuSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	menuBestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor int
	width  int
	height int
	best   int
	keys   KeyMap
	help   help.Model
	choice MenuChoice
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		width:  width,
		height: height,
		best:   best,
		keys:   DefaultKeyMap(),
		help:   help.New(),
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
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.choice = MenuQuit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		m.choice = menuItems[m.cursor].Choice
	}

	return m, nil
}

// Choice returns the selection, or MenuNone while the user is still choosing.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.center(menuTitleStyle.Render("2 0 4 8")))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(m.center(menuBestStyle.Render("Best score: " + strconv.Itoa(m.best))))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.Label
		style := menuItemStyle
		if i == m.cursor {
			line = "> " + item.Label
			style = menuSelectedStyle
		}
		b.WriteString(m.center(style.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.center(helpStyle.Render(m.help.ShortHelpView([]key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Quit,
	}))))
	b.WriteString("\n")

	return b.String()
}

// center pads a rendered line to the middle of the terminal.
func (m MenuModel) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}
