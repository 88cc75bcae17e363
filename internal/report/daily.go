package report

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/skinledger/skinledger/internal/dates"
	"github.com/skinledger/skinledger/internal/model"
)

// DayTotals holds the sold and purchased amounts for one calendar day.
type DayTotals struct {
	Credit   decimal.Decimal
	Purchase decimal.Decimal
}

// Daily buckets credit and purchase amounts by the UTC day of updated_at.
// The result has exactly one entry for every day in [start, end], zero-filled
// where nothing happened. Transactions with an unparseable date or one outside
// the range are skipped. Fees are only ever deducted from credits.
func Daily(txns []model.Transaction, start, end civil.Date, excludeFees bool) map[civil.Date]DayTotals {
	totals := make(map[civil.Date]DayTotals)

	for _, txn := range txns {
		day, ok := dates.ParseDate(txn.UpdatedAt)
		if !ok || !dates.InRange(day, start, end) {
			continue
		}

		t := totals[day]
		switch txn.Type {
		case model.TypeCredit:
			t.Credit = t.Credit.Add(AdjustFee(txn.Amount, txn.Fee, excludeFees))
		case model.TypePurchase:
			t.Purchase = t.Purchase.Add(txn.Amount)
		case model.TypeWithdraw:
			// Payouts are not part of the trading series.
		}
		totals[day] = t
	}

	for _, day := range dates.Range(start, end) {
		if _, ok := totals[day]; !ok {
			totals[day] = DayTotals{}
		}
	}
	return totals
}

// SortedDays returns the keys of daily in ascending order.
func SortedDays(daily map[civil.Date]DayTotals) []civil.Date {
	days := make([]civil.Date, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
