package report

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/skinledger/skinledger/internal/dates"
	"github.com/skinledger/skinledger/internal/model"
)

// CountryTotal is one row of the per-country sales breakdown.
type CountryTotal struct {
	Country string
	Total   decimal.Decimal
}

// ByCountry sums line-item amounts per buyer country for completed
// transactions with items, dated within [start, end]. Callers pass sold
// transactions; items without a buyer country are skipped.
func ByCountry(txns []model.Transaction, start, end civil.Date, excludeFees bool) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)

	for _, txn := range txns {
		if !txn.IsComplete() || !txn.HasItems() {
			continue
		}
		day, ok := dates.ParseDate(txn.UpdatedAt)
		if !ok || !dates.InRange(day, start, end) {
			continue
		}
		for _, item := range txn.Items {
			if item.BuyerCountry == "" {
				continue
			}
			totals[item.BuyerCountry] = totals[item.BuyerCountry].Add(AdjustFee(item.Amount, item.Fee, excludeFees))
		}
	}
	return totals
}

// SortCountries orders totals by amount descending, then country code.
func SortCountries(totals map[string]decimal.Decimal) []CountryTotal {
	rows := make([]CountryTotal, 0, len(totals))
	for c, t := range totals {
		rows = append(rows, CountryTotal{Country: c, Total: t})
	}
	sort.Slice(rows, func(i, j int) bool {
		if cmp := rows[i].Total.Cmp(rows[j].Total); cmp != 0 {
			return cmp > 0
		}
		return rows[i].Country < rows[j].Country
	})
	return rows
}
