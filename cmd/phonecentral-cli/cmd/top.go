package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"phonecentral/internal/application/commands"
	"phonecentral/internal/domain"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top [incoming|outgoing]",
	Short: "Rank numbers by call traffic",
	Long: `Rank numbers by the amount of calls they receive or place.
Ties are broken by ascending number.

Examples:
  phonecentral-cli top incoming
  phonecentral-cli top outgoing -n 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var direction commands.TopDirection
		switch args[0] {
		case "incoming":
			direction = commands.TopIncoming
		case "outgoing":
			direction = commands.TopOutgoing
		default:
			return fmt.Errorf("unknown direction %q (want incoming or outgoing)", args[0])
		}

		ctx := context.Background()
		topCmd := commands.NewTopCommand(GetDirectory(), direction, topN)
		ranked, err := topCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(ranked) == 0 {
			fmt.Println("No calls recorded")
			return nil
		}
		for i, r := range ranked {
			fmt.Printf("%d. %s  %s\n", i+1, r.Number, describeTraffic(direction, r.Stats))
		}
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <number>",
	Short: "Show the popularity score of a number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := domain.NormalizePhone(args[0])
		if err != nil {
			return err
		}

		d := GetDirectory()
		stats, ok := d.Stats(number)
		if !ok {
			fmt.Printf("%s: no calls recorded\n", number)
			return nil
		}
		fmt.Printf("%s: score %.2f\n", number, d.Score(number))
		fmt.Printf("  received %d calls (%s), placed %d calls (%s)\n",
			stats.IncomingCount, domain.FormatMMSS(stats.IncomingDuration),
			stats.OutgoingCount, domain.FormatMMSS(stats.OutgoingDuration))
		return nil
	},
}

func describeTraffic(direction commands.TopDirection, stats domain.NodeStats) string {
	if direction == commands.TopOutgoing {
		return fmt.Sprintf("%d calls placed, %s total", stats.OutgoingCount, domain.FormatMMSS(stats.OutgoingDuration))
	}
	return fmt.Sprintf("%d calls received, %s total", stats.IncomingCount, domain.FormatMMSS(stats.IncomingDuration))
}

func init() {
	topCmd.Flags().IntVarP(&topN, "count", "n", 5, "number of entries to show")
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(scoreCmd)
}
