package commands

import (
	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/skinledger/skinledger/internal/config"
	"github.com/skinledger/skinledger/internal/dates"
	"github.com/skinledger/skinledger/internal/export"
)

// rangeFlags selects the reporting period.
type rangeFlags struct {
	from string
	to   string
	last int
}

func (r *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&r.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&r.to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&r.last, "last", 0, "report the last N days up to today (e.g. 7, 30, 365)")
}

func (r *rangeFlags) resolve(cfg config.ReportConfig) (civil.Date, civil.Date, error) {
	return dates.Window(dates.Today(), r.from, r.to, r.last, cfg.RangeDays)
}

// feeFlag returns --exclude-fees if set, else the config default.
func feeFlag(cmd *cobra.Command, flag bool, cfg config.ReportConfig) bool {
	if cmd.Flags().Changed("exclude-fees") {
		return flag
	}
	return cfg.ExcludeFees
}

func registerFormat(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", string(export.FormatTable), "output format: table, csv or json")
}
