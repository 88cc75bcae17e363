package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/export"
	"github.com/skinledger/skinledger/internal/report"
)

func newDailyCommand(g *globalFlags) *cobra.Command {
	var rng rangeFlags
	var smoothing, format string
	var excludeFees bool

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Sold and purchased amounts per day, optionally smoothed",
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

			if !cmd.Flags().Changed("smoothing") {
				smoothing = a.cfg.Report.Smoothing
			}
			window, err := report.ParseSmoothing(smoothing)
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

			daily := report.Daily(a.store.All(), start, end, feeFlag(cmd, excludeFees, a.cfg.Report))
			return export.WriteSeries(cmd.OutOrStdout(), f, report.Rolling(daily, window))
		},
	}

	rng.register(cmd)
	cmd.Flags().StringVar(&smoothing, "smoothing", "nothing", "rolling average: nothing, weekly, monthly or a number of days")
	cmd.Flags().BoolVar(&excludeFees, "exclude-fees", false, "show sale amounts after Skinport fees")
	registerFormat(cmd, &format)

	return cmd
}
