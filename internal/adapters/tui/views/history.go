package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/tui/styles"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/ports"
)

// HistoryKind selects between single-number and pairwise history.
type HistoryKind int

const (
	HistoryForNumber HistoryKind = iota
	HistoryBetweenNumbers
)

// HistoryKeyMap defines key bindings for the history view
type HistoryKeyMap struct {
	Next   key.Binding
	Cancel key.Binding
}

var HistoryKeys = HistoryKeyMap{
	Next: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// HistoryModel prompts for one or two numbers and shows the matching
// chronological call history.
type HistoryModel struct {
	ViewState
	dir  ports.Directory
	kind HistoryKind

	inputs  []textinput.Model
	focused int
	lines   []string
	done    bool
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(dir ports.Directory) *HistoryModel {
	return &HistoryModel{dir: dir}
}

// Start prepares the view for a new query of the given kind
func (m *HistoryModel) Start(kind HistoryKind) tea.Cmd {
	m.kind = kind
	m.lines = nil
	m.done = false
	m.focused = 0
	m.ClearMessage()

	labels := []string{"Enter number"}
	if kind == HistoryBetweenNumbers {
		labels = []string{"Enter first number", "Enter second number"}
	}
	m.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		input := textinput.New()
		input.Placeholder = label
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	return textinput.Blink
}

// Init initializes the history view
func (m *HistoryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the history view
func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, HistoryKeys.Cancel) {
		return m, func() tea.Msg {
			return SwitchToMenuMsg{}
		}
	}

	if m.done {
		return m, nil
	}

	if key.Matches(keyMsg, HistoryKeys.Next) {
		if m.inputs[m.focused].Value() == "" {
			m.SetMessage("Empty input.", true)
			return m, nil
		}
		if m.focused < len(m.inputs)-1 {
			m.inputs[m.focused].Blur()
			m.focused++
			m.inputs[m.focused].Focus()
			return m, textinput.Blink
		}
		m.runQuery()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(keyMsg)
	return m, cmd
}

func (m *HistoryModel) runQuery() {
	m.ClearMessage()
	m.lines = nil

	ctx := context.Background()
	if m.kind == HistoryForNumber {
		history, err := commands.NewHistoryForCommand(m.dir, m.inputs[0].Value(), nil, nil).Execute(ctx)
		if err != nil {
			m.SetMessage(err.Error(), true)
			return
		}
		for _, entry := range history {
			tag := styles.DirectionIn.Render("[IN] ")
			if entry.Direction == commands.DirectionOut {
				tag = styles.DirectionOut.Render("[OUT]")
			}
			m.lines = append(m.lines, fmt.Sprintf("%s %s | %s | %s → %s",
				tag,
				entry.Call.Start.Format("02.01.2006 15:04:05"),
				entry.Call.FormatDuration(),
				entry.Call.Caller,
				entry.Call.Callee))
		}
	} else {
		calls, err := commands.NewHistoryBetweenCommand(m.dir, m.inputs[0].Value(), m.inputs[1].Value(), nil, nil).Execute(ctx)
		if err != nil {
			m.SetMessage(err.Error(), true)
			return
		}
		for _, call := range calls {
			m.lines = append(m.lines, fmt.Sprintf("%s | %s | %s → %s",
				call.Start.Format("02.01.2006 15:04:05"),
				call.FormatDuration(),
				call.Caller,
				call.Callee))
		}
	}
	m.done = true
}

// View renders the history view
func (m *HistoryModel) View() string {
	title := "History for a Number"
	if m.kind == HistoryBetweenNumbers {
		title = "History Between Two Numbers"
	}
	v := NewViewBuilder().Title(title)

	if !m.done {
		for i := range m.inputs {
			v.Line(m.inputs[i].View())
		}
		return v.BlankLine().
			Message(m.Message, m.MessageErr).
			Help(HistoryKeys.Next, HistoryKeys.Cancel).
			String()
	}

	if len(m.lines) == 0 {
		v.Muted("(no calls found)")
	}
	for _, line := range m.lines {
		v.Line(line)
	}
	return v.BlankLine().
		Help(HistoryKeys.Cancel).
		String()
}
