package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/adapters/tui"
	"phonecentral/internal/config"
	"phonecentral/internal/domain"
)

func main() {
	dataDir := config.DataDir()

	loader := textfile.NewLoader(
		config.PhonesPath(dataDir),
		config.CallsPath(dataDir),
		config.BlockedPath(dataDir),
	)

	snap, stats, err := loader.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load data files")
	}
	logrus.WithFields(logrus.Fields{
		"contacts": stats.Contacts,
		"calls":    stats.Calls,
		"blocked":  stats.Blocked,
	}).Info("data loaded")

	central := domain.BuildCentral(snap.Contacts, snap.Calls, snap.Blocked)
	writer := textfile.NewCallWriter(config.CallsPath(dataDir))

	app := tui.NewApp(central, writer, config.SimulationPath(dataDir))

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
