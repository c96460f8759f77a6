package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"phonecentral/internal/application/commands"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "List all contacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListContactsCommand(GetDirectory())
		contacts, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range contacts {
			fmt.Printf("%s: %s\n", c.FullName(), c.Phone)
		}
		return nil
	},
}

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "List all recorded calls in chronological order",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListCallsCommand(GetDirectory())
		calls, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		for _, c := range calls {
			fmt.Println(c)
		}
		return nil
	},
}

var blockedCmd = &cobra.Command{
	Use:   "blocked",
	Short: "List blocked numbers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		listCmd := commands.NewListBlockedCommand(GetDirectory())
		blocked, err := listCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(blocked) == 0 {
			fmt.Println("No blocked numbers")
			return nil
		}
		for _, n := range blocked {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(callsCmd)
	rootCmd.AddCommand(blockedCmd)
}
