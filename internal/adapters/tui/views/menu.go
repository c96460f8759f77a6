package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/tui/styles"
)

// MenuAction identifies one main-menu entry.
type MenuAction int

const (
	ActionContacts MenuAction = iota
	ActionCalls
	ActionBlocked
	ActionSearch
	ActionHistoryFor
	ActionHistoryBetween
	ActionLiveCall
	ActionSimulate
	ActionTop
	ActionQuit
)

var menuLabels = []string{
	"Show contacts",
	"Show calls",
	"Show blocked numbers",
	"Search phone book",
	"History for a number",
	"History between two numbers",
	"Start a live call",
	"Simulate calls from file",
	"Top incoming / outgoing numbers",
	"Quit",
}

// MenuSelectMsg reports the chosen menu entry
type MenuSelectMsg struct {
	Action MenuAction
}

// MenuKeyMap defines key bindings for the menu view
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// MenuModel is the model for the main menu
type MenuModel struct {
	ViewState
	cursor int
}

// NewMenuModel creates a new menu view model
func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

// Init initializes the menu view
func (m *MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view
func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, MenuKeys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, MenuKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, MenuKeys.Down):
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, MenuKeys.Select):
		action := MenuAction(m.cursor)
		if action == ActionQuit {
			return m, tea.Quit
		}
		return m, func() tea.Msg {
			return MenuSelectMsg{Action: action}
		}
	}
	return m, nil
}

// View renders the menu
func (m *MenuModel) View() string {
	v := NewViewBuilder().Title("Telephone Central")

	for i, label := range menuLabels {
		line := fmt.Sprintf("%d. %s", i+1, label)
		if i == m.cursor {
			line = styles.ItemSelected.Render(line)
		}
		v.Line(line)
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(MenuKeys.Up, MenuKeys.Down, MenuKeys.Select, MenuKeys.Quit).
		String()
}
