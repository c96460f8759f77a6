package views

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/tui/styles"
	"phonecentral/internal/application"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/ports"
)

// liveCallStage tracks the live-call flow.
type liveCallStage int

const (
	stageCaller liveCallStage = iota
	stageCallee
	stageRunning
	stageDone
)

// tickMsg advances the live-call timer once per second.
type tickMsg time.Time

// LiveCallKeyMap defines key bindings for the live call view
type LiveCallKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var LiveCallKeys = LiveCallKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm / end call"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// LiveCallModel runs a live call: prompt for both numbers, tick a timer
// until the user ends the call, then record it.
type LiveCallModel struct {
	ViewState
	dir ports.Directory
	log ports.CallLog

	stage   liveCallStage
	caller  textinput.Model
	callee  textinput.Model
	started time.Time
	elapsed int
	result  string
}

// NewLiveCallModel creates a new live call view model
func NewLiveCallModel(dir ports.Directory, log ports.CallLog) *LiveCallModel {
	caller := textinput.New()
	caller.Placeholder = "Caller number"
	callee := textinput.New()
	callee.Placeholder = "Callee number"
	return &LiveCallModel{dir: dir, log: log, caller: caller, callee: callee}
}

// Reset prepares the view for a new call
func (m *LiveCallModel) Reset() tea.Cmd {
	m.stage = stageCaller
	m.caller.SetValue("")
	m.callee.SetValue("")
	m.callee.Blur()
	m.elapsed = 0
	m.result = ""
	m.ClearMessage()
	m.caller.Focus()
	return textinput.Blink
}

// Init initializes the live call view
func (m *LiveCallModel) Init() tea.Cmd {
	return textinput.Blink
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages for the live call view
func (m *LiveCallModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.stage == stageRunning {
			m.elapsed = int(time.Since(m.started).Seconds())
			return m, tick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m *LiveCallModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, LiveCallKeys.Cancel) && m.stage != stageRunning {
		return m, func() tea.Msg {
			return SwitchToMenuMsg{}
		}
	}

	switch m.stage {
	case stageCaller:
		if key.Matches(msg, LiveCallKeys.Confirm) {
			if m.caller.Value() == "" {
				m.SetMessage("Empty input.", true)
				return m, nil
			}
			m.caller.Blur()
			m.stage = stageCallee
			m.callee.Focus()
			return m, textinput.Blink
		}
		var cmd tea.Cmd
		m.caller, cmd = m.caller.Update(msg)
		return m, cmd

	case stageCallee:
		if key.Matches(msg, LiveCallKeys.Confirm) {
			if m.callee.Value() == "" {
				m.SetMessage("Empty input.", true)
				return m, nil
			}
			return m.startCall()
		}
		var cmd tea.Cmd
		m.callee, cmd = m.callee.Update(msg)
		return m, cmd

	case stageRunning:
		if key.Matches(msg, LiveCallKeys.Confirm) {
			m.endCall()
		}
		return m, nil

	default:
		return m, nil
	}
}

func (m *LiveCallModel) startCall() (tea.Model, tea.Cmd) {
	m.ClearMessage()

	caller, err := application.NormalizePhone(m.caller.Value())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	callee, err := application.NormalizePhone(m.callee.Value())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return m, nil
	}
	if m.dir.IsBlocked(caller) || m.dir.IsBlocked(callee) {
		m.SetMessage(fmt.Sprintf("[BLOCKED] Cannot start call: %s → %s (blocked number)", caller, callee), true)
		return m, nil
	}

	m.callee.Blur()
	m.stage = stageRunning
	m.started = time.Now()
	m.elapsed = 0
	return m, tick()
}

func (m *LiveCallModel) endCall() {
	duration := int(time.Since(m.started).Seconds())
	if duration < 1 {
		duration = 1
	}

	call, err := commands.NewRecordCallCommand(
		m.dir, m.log, m.caller.Value(), m.callee.Value(), m.started, duration,
	).Execute(context.Background())
	if err != nil {
		m.stage = stageDone
		m.SetMessage(err.Error(), true)
		return
	}

	m.stage = stageDone
	m.result = fmt.Sprintf("[OK] %s", call)
}

// View renders the live call view
func (m *LiveCallModel) View() string {
	v := NewViewBuilder().Title("Live Call")

	switch m.stage {
	case stageCaller, stageCallee:
		v.Line(m.caller.View())
		if m.stage == stageCallee {
			v.Line(m.callee.View())
		}
		return v.BlankLine().
			Message(m.Message, m.MessageErr).
			Help(LiveCallKeys.Confirm, LiveCallKeys.Cancel).
			String()

	case stageRunning:
		return v.
			Line(fmt.Sprintf("Calling: %s → %s", m.caller.Value(), m.callee.Value())).
			BlankLine().
			Line("Duration: " + styles.Timer.Render(application.FormatMMSS(m.elapsed))).
			BlankLine().
			Muted("Press enter to end the call.").
			String()

	default:
		if m.result != "" {
			v.Line(styles.Success.Render(m.result))
		}
		return v.BlankLine().
			Message(m.Message, m.MessageErr).
			Help(LiveCallKeys.Cancel).
			String()
	}
}
