package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/export"
	"github.com/skinledger/skinledger/internal/report"
)

func newSearchCommand(g *globalFlags) *cobra.Command {
	var typeName, format string

	cmd := &cobra.Command{
		Use:   "search [item name]",
		Short: "Search completed transactions by item name",
		Long:  "Search completed transactions whose item names contain the query, ignoring case. With --type payouts every completed withdrawal is listed and the query is ignored.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			filter, ok := report.ParseTypeFilter(typeName)
			if !ok {
				return fmt.Errorf("unknown type %q: want all, purchase, sold or payouts", typeName)
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			a, err := newApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if err := a.store.Load(cmd.Context()); err != nil {
				return fmt.Errorf("loading transactions: %w", err)
			}

			matches := report.Search(a.store.All(), query, filter)
			if len(matches) == 0 && f == export.FormatTable {
				fmt.Fprintf(cmd.ErrOrStderr(), "No transactions found containing '%s'.\n", query)
				return nil
			}
			return export.WriteMatches(cmd.OutOrStdout(), f, matches)
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "all", "transaction type: all, purchase, sold or payouts")
	registerFormat(cmd, &format)

	return cmd
}
