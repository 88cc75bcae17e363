// Package report derives daily totals, rolling averages, per-country sales and
// item searches from a loaded transaction history. Every function here is
// pure: it reads the transactions it is given and allocates fresh results.
package report

import "github.com/shopspring/decimal"

// AdjustFee returns amount minus fee when excludeFees is set, otherwise
// amount unchanged. An absent fee counts as zero.
func AdjustFee(amount decimal.Decimal, fee decimal.NullDecimal, excludeFees bool) decimal.Decimal {
	if !excludeFees || !fee.Valid {
		return amount
	}
	return amount.Sub(fee.Decimal)
}
