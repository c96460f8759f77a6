package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"phonecentral/internal/adapters/textfile"
	"phonecentral/internal/application/commands"
	"phonecentral/internal/config"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [file]",
	Short: "Replay a batch of calls from a simulation file",
	Long: `Read a call file and feed every call through the exchange, skipping
calls that touch a blocked number. Defaults to the call_simulation.txt
file inside the data directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.SimulationPath(GetDataDir())
		if len(args) == 1 {
			path = args[0]
		}

		calls, skipped, err := textfile.ReadCallFile(path)
		if err != nil {
			return err
		}

		ctx := context.Background()
		repCmd := commands.NewReplayCommand(GetDirectory(), GetCallLog(), calls)
		result, err := repCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Processed %d of %d calls (%d blocked, %d malformed lines)\n",
			result.Processed, result.Total, result.Blocked, skipped)
		return nil
	},
}

var (
	overloadCalls int
	overloadSeed  int64
)

var overloadCmd = &cobra.Command{
	Use:   "overload",
	Short: "Generate random call traffic between known contacts",
	Long: `Generate a burst of random calls between the numbers in the phone
book and record them all, starting now. Useful for stress-testing the
ledger and the popularity rankings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		ovlCmd := commands.NewOverloadCommand(GetDirectory(), GetCallLog(), overloadCalls, time.Now(), overloadSeed)
		result, err := ovlCmd.Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d calls, recorded %d (%d blocked)\n",
			result.Generated, result.Recorded, result.Blocked)
		return nil
	},
}

func init() {
	overloadCmd.Flags().IntVarP(&overloadCalls, "count", "n", 100, "number of calls to generate")
	overloadCmd.Flags().Int64Var(&overloadSeed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(overloadCmd)
}
