package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/export"
	"github.com/skinledger/skinledger/internal/report"
)

func newCountriesCommand(g *globalFlags) *cobra.Command {
	var rng rangeFlags
	var format string
	var excludeFees bool

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Total sales per buyer country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			a, err := newApp(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			start, end, err := rng.resolve(a.cfg.Report)
			if err != nil {
				return err
			}

			if err := a.store.Load(cmd.Context()); err != nil {
				return fmt.Errorf("loading transactions: %w", err)
			}

			totals := report.ByCountry(a.store.Sold(), start, end, feeFlag(cmd, excludeFees, a.cfg.Report))
			return export.WriteCountries(cmd.OutOrStdout(), f, report.SortCountries(totals))
		},
	}

	rng.register(cmd)
	cmd.Flags().BoolVar(&excludeFees, "exclude-fees", false, "show sale amounts after Skinport fees")
	registerFormat(cmd, &format)

	return cmd
}
