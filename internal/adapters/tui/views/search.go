package views

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/tui/styles"
	"phonecentral/internal/application"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/ports"
)

// searchField enumerates what the search input targets.
type searchField int

const (
	searchFirstName searchField = iota
	searchLastName
	searchPhone
)

func (f searchField) label() string {
	switch f {
	case searchLastName:
		return "last name"
	case searchPhone:
		return "phone number"
	default:
		return "first name"
	}
}

// searchMode tracks which stage of the search flow is active.
type searchMode int

const (
	modeChooseField searchMode = iota
	modeInput
	modeResults
	modeSuggest // "did you mean" picker after an empty phone search
)

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

// SearchModel is the model for the phone book search view
type SearchModel struct {
	ViewState
	dir ports.Directory

	mode        searchMode
	field       searchField
	fieldCursor int
	input       textinput.Model

	completions []application.Suggestion
	results     []application.ScoredContact
	suggestions []application.PhoneSuggestion
	cursor      int
}

// NewSearchModel creates a new search view model
func NewSearchModel(dir ports.Directory) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Prefix..."
	return &SearchModel{dir: dir, input: input}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Reset resets the search view to the field chooser
func (m *SearchModel) Reset() {
	m.mode = modeChooseField
	m.fieldCursor = 0
	m.cursor = 0
	m.completions = nil
	m.results = nil
	m.suggestions = nil
	m.input.SetValue("")
	m.ClearMessage()
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, SearchKeys.Cancel) {
		if m.mode == modeChooseField {
			return m, func() tea.Msg {
				return SwitchToMenuMsg{}
			}
		}
		m.Reset()
		return m, nil
	}

	switch m.mode {
	case modeChooseField:
		return m.updateChooseField(keyMsg)
	case modeInput:
		return m.updateInput(keyMsg)
	case modeResults:
		return m.updateResults(keyMsg)
	default:
		return m.updateSuggest(keyMsg)
	}
}

func (m *SearchModel) updateChooseField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SearchKeys.Up):
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case key.Matches(msg, SearchKeys.Down):
		if m.fieldCursor < int(searchPhone) {
			m.fieldCursor++
		}
	case key.Matches(msg, SearchKeys.Select):
		m.field = searchField(m.fieldCursor)
		m.mode = modeInput
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *SearchModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, SearchKeys.Select) {
		prefix := m.input.Value()
		if prefix == "" {
			m.SetMessage("Empty input.", true)
			return m, nil
		}
		m.runSearch(prefix, false)
		return m, nil
	}

	// Number keys pick an autocomplete suggestion directly
	if len(m.completions) > 0 && len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "4" {
		idx := int(msg.String()[0] - '1')
		if idx < len(m.completions) {
			m.runSearch(m.completions[idx].Key, true)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshCompletions()
	return m, cmd
}

func (m *SearchModel) refreshCompletions() {
	m.completions = nil
	prefix := m.input.Value()
	if prefix == "" || m.field == searchPhone {
		return
	}
	m.completions, _ = commands.NewAutocompleteCommand(m.dir, m.nameField(), prefix).Execute(context.Background())
}

func (m *SearchModel) nameField() application.NameField {
	if m.field == searchLastName {
		return application.FieldLastName
	}
	return application.FieldFirstName
}

func (m *SearchModel) runSearch(prefix string, exact bool) {
	m.ClearMessage()
	m.cursor = 0

	if m.field == searchPhone {
		outcome, _ := commands.NewPhoneSearchCommand(m.dir, prefix).Execute(context.Background())
		m.results = outcome.Results
		m.suggestions = outcome.Suggestions
		if len(m.results) > 0 {
			m.mode = modeResults
		} else if len(m.suggestions) > 0 {
			m.mode = modeSuggest
		} else {
			m.SetMessage(fmt.Sprintf("No results found for %q.", prefix), true)
		}
		return
	}

	m.results, _ = commands.NewNameSearchCommand(m.dir, m.nameField(), prefix, exact).Execute(context.Background())
	if len(m.results) == 0 {
		m.SetMessage("No results found matching your search.", true)
		return
	}
	m.mode = modeResults
}

func (m *SearchModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SearchKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, SearchKeys.Down):
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case key.Matches(msg, SearchKeys.Select):
		if m.cursor >= 0 && m.cursor < len(m.results) {
			// Copy the number to the clipboard
			phone := m.results[m.cursor].Contact.Phone
			clipboard.WriteAll(phone)
			m.SetMessage(fmt.Sprintf("Copied %s to clipboard.", phone), false)
		}
	}
	return m, nil
}

func (m *SearchModel) updateSuggest(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, SearchKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, SearchKeys.Down):
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
	case key.Matches(msg, SearchKeys.Select):
		if m.cursor >= 0 && m.cursor < len(m.suggestions) {
			m.runSearch(m.suggestions[m.cursor].Phone, false)
		}
	}
	return m, nil
}

// View renders the search view
func (m *SearchModel) View() string {
	switch m.mode {
	case modeChooseField:
		return m.viewChooseField()
	case modeInput:
		return m.viewInput()
	case modeResults:
		return m.viewResults()
	default:
		return m.viewSuggest()
	}
}

func (m *SearchModel) viewChooseField() string {
	v := NewViewBuilder().Title("Search Phone Book")
	for i := searchFirstName; i <= searchPhone; i++ {
		line := fmt.Sprintf("%d. Search by %s", i+1, i.label())
		if int(i) == m.fieldCursor {
			line = styles.ItemSelected.Render(line)
		}
		v.Line(line)
	}
	return v.BlankLine().
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel).
		String()
}

func (m *SearchModel) viewInput() string {
	v := NewViewBuilder().
		Title("Search Phone Book").
		Line(styles.InputLabel.Render("Search by "+m.field.label()+":")).
		Line(m.input.View()).
		BlankLine()

	if len(m.completions) > 0 {
		v.Muted("Autocomplete suggestions (press 1-4 for exact search):")
		for i, s := range m.completions {
			v.Line(fmt.Sprintf("%d. %s (%d contacts, total popularity: %.2f)",
				i+1, s.Key, s.ContactCount, s.TotalScore))
		}
		v.BlankLine()
	}

	return v.Message(m.Message, m.MessageErr).
		Help(SearchKeys.Select, SearchKeys.Cancel).
		String()
}

func (m *SearchModel) viewResults() string {
	v := NewViewBuilder().Title("Search Results")
	for i, r := range m.results {
		line := fmt.Sprintf("%d. %s: %s (popularity: %.2f)",
			i+1, r.Contact.FullName(), r.Contact.Phone, r.Score)
		if i == m.cursor {
			line = styles.ItemSelected.Render(line)
		}
		v.Line(line)
	}
	return v.BlankLine().
		Message(m.Message, m.MessageErr).
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel).
		String()
}

func (m *SearchModel) viewSuggest() string {
	v := NewViewBuilder().
		Title("Search Results").
		Line("No results found. Did you mean:").
		BlankLine()
	for i, s := range m.suggestions {
		line := fmt.Sprintf("%d. %s (%s, popularity: %.2f)",
			i+1, s.Phone, s.Contact.FullName(), s.Score)
		if i == m.cursor {
			line = styles.ItemSelected.Render(line)
		}
		v.Line(line)
	}
	return v.BlankLine().
		Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel).
		String()
}
