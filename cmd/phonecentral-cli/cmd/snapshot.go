package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"phonecentral/internal/adapters/sqlite"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/config"
	"phonecentral/internal/domain"
	"phonecentral/internal/ports"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [save|show]",
	Short: "Manage the sqlite snapshot of the exchange",
	Long: `Persist the exchange state (contacts, calls, blocked numbers) into a
single sqlite file, or inspect what a saved snapshot contains.

Examples:
  phonecentral-cli snapshot save
  phonecentral-cli snapshot show`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current state to the snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.SnapshotPath(GetDataDir())

		store := sqlite.NewStore()
		if err := store.Open(path); err != nil {
			return err
		}
		defer store.Close()

		ctx := context.Background()
		d := GetDirectory()
		contacts, _ := commands.NewListContactsCommand(d).Execute(ctx)
		calls, _ := commands.NewListCallsCommand(d).Execute(ctx)
		blocked, _ := commands.NewListBlockedCommand(d).Execute(ctx)

		snap := &ports.Snapshot{Contacts: contacts, Calls: calls, Blocked: blocked}
		if err := store.Save(snap); err != nil {
			return err
		}

		fmt.Printf("Saved %d contacts, %d calls, %d blocked numbers to %s\n",
			len(snap.Contacts), len(snap.Calls), len(snap.Blocked), path)
		return nil
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the saved snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.SnapshotPath(GetDataDir())

		store := sqlite.NewStore()
		if err := store.Open(path); err != nil {
			return err
		}
		defer store.Close()

		if !store.HasSnapshot() {
			fmt.Println("No snapshot saved")
			return nil
		}

		snap, err := store.Load()
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d contacts, %d calls, %d blocked numbers\n",
			path, len(snap.Contacts), len(snap.Calls), len(snap.Blocked))

		// Rebuild the rankings from the snapshot to sanity-check it.
		central := domain.BuildCentral(snap.Contacts, snap.Calls, snap.Blocked)
		for _, r := range central.TopIncoming(3) {
			fmt.Printf("  top incoming: %s (%d calls)\n", r.Number, r.Stats.IncomingCount)
		}
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	rootCmd.AddCommand(snapshotCmd)
}
