package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/adapters/tui/views"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewMenu ViewState = iota
	ViewList
	ViewSearch
	ViewHistory
	ViewLiveCall
)

// App is the main TUI application model
type App struct {
	dir     ports.Directory
	log     ports.CallLog
	simPath string

	state    ViewState
	menu     *views.MenuModel
	list     *views.ListModel
	search   *views.SearchModel
	history  *views.HistoryModel
	liveCall *views.LiveCallModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(dir ports.Directory, log ports.CallLog, simPath string) *App {
	return &App{
		dir:      dir,
		log:      log,
		simPath:  simPath,
		state:    ViewMenu,
		menu:     views.NewMenuModel(),
		list:     views.NewListModel(),
		search:   views.NewSearchModel(dir),
		history:  views.NewHistoryModel(dir),
		liveCall: views.NewLiveCallModel(dir, log),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(msg.Width, msg.Height)
		a.list.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.history.SetSize(msg.Width, msg.Height)
		a.liveCall.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToMenuMsg:
		a.state = ViewMenu
		return a, nil

	case views.MenuSelectMsg:
		return a.handleMenuSelect(msg.Action)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewMenu:
		_, cmd = a.menu.Update(msg)
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHistory:
		_, cmd = a.history.Update(msg)
	case ViewLiveCall:
		_, cmd = a.liveCall.Update(msg)
	}
	return a, cmd
}

func (a *App) handleMenuSelect(action views.MenuAction) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch action {
	case views.ActionContacts:
		contacts, _ := commands.NewListContactsCommand(a.dir).Execute(ctx)
		lines := make([]string, 0, len(contacts))
		for _, c := range contacts {
			lines = append(lines, fmt.Sprintf("%s: %s", c.FullName(), c.Phone))
		}
		a.showList("Contacts", lines)

	case views.ActionCalls:
		calls, _ := commands.NewListCallsCommand(a.dir).Execute(ctx)
		lines := make([]string, 0, len(calls))
		for _, c := range calls {
			lines = append(lines, c.String())
		}
		a.showList("Calls", lines)

	case views.ActionBlocked:
		blocked, _ := commands.NewListBlockedCommand(a.dir).Execute(ctx)
		a.showList("Blocked Numbers", blocked)

	case views.ActionSearch:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.ActionHistoryFor:
		a.state = ViewHistory
		return a, a.history.Start(views.HistoryForNumber)

	case views.ActionHistoryBetween:
		a.state = ViewHistory
		return a, a.history.Start(views.HistoryBetweenNumbers)

	case views.ActionLiveCall:
		a.state = ViewLiveCall
		return a, a.liveCall.Reset()

	case views.ActionSimulate:
		a.showList("Call Simulation", a.runSimulation(ctx))

	case views.ActionTop:
		a.showList("Top Numbers", a.topLines(ctx))
	}

	return a, nil
}

func (a *App) runSimulation(ctx context.Context) []string {
	calls, skipped, err := textfile.ReadCallFile(a.simPath)
	if err != nil {
		return []string{fmt.Sprintf("Error reading %s: %v", a.simPath, err)}
	}

	result, err := commands.NewReplayCommand(a.dir, a.log, calls).Execute(ctx)
	if err != nil {
		return []string{fmt.Sprintf("Simulation failed: %v", err)}
	}

	return []string{
		fmt.Sprintf("Processed %d calls", result.Processed),
		fmt.Sprintf("Skipped %d blocked calls", result.Blocked),
		fmt.Sprintf("Skipped %d invalid lines", skipped),
		fmt.Sprintf("Total calls in file: %d", result.Total),
	}
}

func (a *App) topLines(ctx context.Context) []string {
	var lines []string

	incoming, _ := commands.NewTopCommand(a.dir, commands.TopIncoming, 5).Execute(ctx)
	lines = append(lines, "Top incoming:")
	for i, r := range incoming {
		lines = append(lines, fmt.Sprintf("  %d. %s (%d calls received)", i+1, r.Number, r.Stats.IncomingCount))
	}

	outgoing, _ := commands.NewTopCommand(a.dir, commands.TopOutgoing, 5).Execute(ctx)
	lines = append(lines, "Top outgoing:")
	for i, r := range outgoing {
		lines = append(lines, fmt.Sprintf("  %d. %s (%d calls placed)", i+1, r.Number, r.Stats.OutgoingCount))
	}

	return lines
}

func (a *App) showList(title string, lines []string) {
	a.state = ViewList
	a.list.Show(title, lines)
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewList:
		return a.list.View()
	case ViewSearch:
		return a.search.View()
	case ViewHistory:
		return a.history.View()
	case ViewLiveCall:
		return a.liveCall.View()
	default:
		return a.menu.View()
	}
}
