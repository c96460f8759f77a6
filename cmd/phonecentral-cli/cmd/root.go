package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/config"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

var (
	dataDir string
	dir     ports.Directory
	callLog ports.CallLog
)

var rootCmd = &cobra.Command{
	Use:   "phonecentral-cli",
	Short: "CLI for the phone central call directory",
	Long: `phonecentral-cli is a command-line interface for a small telephone
exchange: a phone book, a chronological call ledger, and a popularity
graph over the observed traffic.

It provides commands to list contacts and calls, search the phone book,
inspect call histories, rank numbers by traffic, and feed new calls in.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loader := textfile.NewLoader(
			config.PhonesPath(dataDir),
			config.CallsPath(dataDir),
			config.BlockedPath(dataDir),
		)
		snap, stats, err := loader.Load()
		if err != nil {
			return err
		}
		if stats.SkippedLines > 0 {
			logrus.WithField("lines", stats.SkippedLines).Warn("skipped malformed input lines")
		}

		dir = domain.BuildCentral(snap.Contacts, snap.Calls, snap.Blocked)
		callLog = textfile.NewCallWriter(config.CallsPath(dataDir))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", config.DataDir(), "path to the data directory")
}

// GetDirectory returns the initialized directory
func GetDirectory() ports.Directory {
	return dir
}

// GetCallLog returns the call log appender
func GetCallLog() ports.CallLog {
	return callLog
}

// GetDataDir returns the resolved data directory
func GetDataDir() string {
	return dataDir
}
