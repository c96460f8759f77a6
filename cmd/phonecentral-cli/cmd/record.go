package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/application/commands"
)

var recordStart string

var recordCmd = &cobra.Command{
	Use:   "record <caller> <callee> <duration-seconds>",
	Short: "Record a single call",
	Long: `Record one call in the ledger and append it to the call file.
The start time defaults to now; pass --start to backdate it.

Examples:
  phonecentral-cli record 3331234567 3207654321 95
  phonecentral-cli record 333 320 60 --start "15.03.2024 10:00:00"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, err := strconv.Atoi(args[2])
		if err != nil || duration < 0 {
			return fmt.Errorf("bad duration %q: want a non-negative number of seconds", args[2])
		}

		start := time.Now()
		if recordStart != "" {
			start, err = time.Parse(textfile.TimestampLayout, recordStart)
			if err != nil {
				return fmt.Errorf("bad --start timestamp: %w", err)
			}
		}

		ctx := context.Background()
		recCmd := commands.NewRecordCallCommand(GetDirectory(), GetCallLog(), args[0], args[1], start, duration)
		call, err := recCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Recorded %s\n", call)
		return nil
	},
}

func init() {
	recordCmd.Flags().StringVar(&recordStart, "start", "", "call start (DD.MM.YYYY HH:MM:SS), defaults to now")
	rootCmd.AddCommand(recordCmd)
}
