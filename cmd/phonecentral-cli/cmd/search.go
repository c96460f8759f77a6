package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"phonecentral/internal/application/commands"
	"phonecentral/internal/domain"
)

var searchExact bool

var searchCmd = &cobra.Command{
	Use:   "search [first|last|phone] <prefix>",
	Short: "Search the phone book",
	Long: `Search contacts by first name, last name, or phone number prefix.

Results are ranked by popularity. A phone search that finds nothing
falls back to "did you mean" suggestions over similar numbers.

Examples:
  phonecentral-cli search first Mar
  phonecentral-cli search last Rossi --exact
  phonecentral-cli search phone 333`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if args[0] == "phone" {
			searchCmd := commands.NewPhoneSearchCommand(GetDirectory(), args[1])
			result, err := searchCmd.Execute(ctx)
			if err != nil {
				return err
			}

			if len(result.Results) == 0 {
				if len(result.Suggestions) == 0 {
					fmt.Println("No results found")
					return nil
				}
				fmt.Println("No results found. Did you mean:")
				for _, s := range result.Suggestions {
					fmt.Printf("  %s (%s, score %.2f)\n", s.Phone, s.Contact.FullName(), s.Score)
				}
				return nil
			}
			printScored(result.Results)
			return nil
		}

		field, err := parseNameField(args[0])
		if err != nil {
			return err
		}

		searchCmd := commands.NewNameSearchCommand(GetDirectory(), field, args[1], searchExact)
		results, err := searchCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}
		printScored(results)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete [first|last] <prefix>",
	Short: "Suggest name completions for a prefix",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		field, err := parseNameField(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		acCmd := commands.NewAutocompleteCommand(GetDirectory(), field, args[1])
		suggestions, err := acCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if len(suggestions) == 0 {
			fmt.Println("No completions found")
			return nil
		}
		for _, s := range suggestions {
			fmt.Printf("%s (%d contacts, score %.2f)\n", s.Key, s.ContactCount, s.TotalScore)
		}
		return nil
	},
}

func parseNameField(arg string) (domain.NameField, error) {
	switch arg {
	case "first":
		return domain.FieldFirstName, nil
	case "last":
		return domain.FieldLastName, nil
	default:
		return 0, fmt.Errorf("unknown search field %q (want first, last or phone)", arg)
	}
}

func printScored(results []domain.ScoredContact) {
	for _, r := range results {
		fmt.Printf("%s: %s (score %.2f)\n", r.Contact.FullName(), r.Contact.Phone, r.Score)
	}
}

func init() {
	searchCmd.Flags().BoolVar(&searchExact, "exact", false, "match the whole name, not just the prefix")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(completeCmd)
}
