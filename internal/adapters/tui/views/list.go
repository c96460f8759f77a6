package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/tui/styles"
)

// ListKeyMap defines key bindings for the list view
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l", "pgdown"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h", "pgup"),
		key.WithHelp("←", "prev page"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// ListModel is a scrolling read-only list of pre-rendered lines, used for
// contacts, calls, blocked numbers, rankings and simulation reports.
type ListModel struct {
	ViewState
	title     string
	lines     []string
	paginator *Paginator
}

// NewListModel creates a new list view model
func NewListModel() *ListModel {
	return &ListModel{paginator: NewPaginator(15)}
}

// Show replaces the list content
func (m *ListModel) Show(title string, lines []string) {
	m.title = title
	m.lines = lines
	m.paginator.Reset()
	m.paginator.SetTotal(len(lines))
	m.ClearMessage()
}

// Init initializes the list view
func (m *ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, ListKeys.Back):
		return m, func() tea.Msg {
			return SwitchToMenuMsg{}
		}
	case key.Matches(keyMsg, ListKeys.Up):
		m.paginator.CursorUp()
	case key.Matches(keyMsg, ListKeys.Down):
		m.paginator.CursorDown()
	case key.Matches(keyMsg, ListKeys.NextPage):
		m.paginator.NextPage()
	case key.Matches(keyMsg, ListKeys.PrevPage):
		m.paginator.PrevPage()
	}
	return m, nil
}

// View renders the list
func (m *ListModel) View() string {
	v := NewViewBuilder().Title(m.title)

	if len(m.lines) == 0 {
		v.Muted("(nothing to show)")
	}

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		line := m.lines[i]
		if i == m.paginator.Cursor() {
			line = styles.ItemSelected.Render(line)
		}
		v.Line(line)
	}

	if m.paginator.TotalPages() > 1 {
		v.BlankLine().Muted(fmt.Sprintf("page %d/%d (%d entries)",
			m.paginator.CurrentPage(), m.paginator.TotalPages(), len(m.lines)))
	}

	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(ListKeys.Up, ListKeys.Down, ListKeys.PrevPage, ListKeys.NextPage, ListKeys.Back).
		String()
}
