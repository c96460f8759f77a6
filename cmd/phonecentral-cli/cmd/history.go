package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/application/commands"
)

var (
	historyFrom string
	historyTo   string
)

var historyCmd = &cobra.Command{
	Use:   "history <number>",
	Short: "Show the call history of a number",
	Long: `Show every call a number took part in, oldest first, with the
direction of each call relative to that number.

The window flags take timestamps in the DD.MM.YYYY HH:MM:SS format
used by the call files.

Examples:
  phonecentral-cli history 3331234567
  phonecentral-cli history 3331234567 --from "01.01.2024 00:00:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := parseWindow()
		if err != nil {
			return err
		}

		ctx := context.Background()
		histCmd := commands.NewHistoryForCommand(GetDirectory(), args[0], from, to)
		calls, err := histCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(calls) == 0 {
			fmt.Println("No calls found")
			return nil
		}
		for _, dc := range calls {
			fmt.Printf("[%s] %s\n", dc.Direction, dc.Call)
		}
		return nil
	},
}

var betweenCmd = &cobra.Command{
	Use:   "between <number-a> <number-b>",
	Short: "Show calls between two numbers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to, err := parseWindow()
		if err != nil {
			return err
		}

		ctx := context.Background()
		histCmd := commands.NewHistoryBetweenCommand(GetDirectory(), args[0], args[1], from, to)
		calls, err := histCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(calls) == 0 {
			fmt.Println("No calls found")
			return nil
		}
		for _, c := range calls {
			fmt.Println(c)
		}
		return nil
	},
}

func parseWindow() (from, to *time.Time, err error) {
	if historyFrom != "" {
		t, err := time.Parse(textfile.TimestampLayout, historyFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("bad --from timestamp: %w", err)
		}
		from = &t
	}
	if historyTo != "" {
		t, err := time.Parse(textfile.TimestampLayout, historyTo)
		if err != nil {
			return nil, nil, fmt.Errorf("bad --to timestamp: %w", err)
		}
		to = &t
	}
	return from, to, nil
}

func init() {
	for _, c := range []*cobra.Command{historyCmd, betweenCmd} {
		c.Flags().StringVar(&historyFrom, "from", "", "window start (DD.MM.YYYY HH:MM:SS)")
		c.Flags().StringVar(&historyTo, "to", "", "window end (DD.MM.YYYY HH:MM:SS)")
		rootCmd.AddCommand(c)
	}
}
