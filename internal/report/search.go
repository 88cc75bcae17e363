package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skinledger/skinledger/internal/dates"
	"github.com/skinledger/skinledger/internal/model"
	"github.com/skinledger/skinledger/internal/slug"
)

// Match is one search hit: a line item whose name matched the query, or a
// whole withdrawal when searching payouts.
type Match struct {
	Date    time.Time
	HasDate bool
	Item    string // empty for withdrawals
	Amount  decimal.Decimal
	Type    model.Type
	SaleID  int64
	URL     string
}

// Search finds completed transactions matching query.
//
// With filter set to withdraw every completed withdrawal matches regardless of
// query, since payouts carry no items. Otherwise transactions of the filter
// type (any type when filter is nil) contribute one match per line item whose
// display name contains query, ignoring case. Results are ordered newest
// first; undated matches sort last.
func Search(txns []model.Transaction, query string, filter *model.Type) []Match {
	needle := strings.ToLower(query)
	var matches []Match

	for _, txn := range txns {
		if !txn.IsComplete() {
			continue
		}
		at, hasDate := dates.Parse(txn.UpdatedAt)

		if filter != nil && *filter == model.TypeWithdraw && txn.Type == model.TypeWithdraw {
			matches = append(matches, Match{
				Date:    at,
				HasDate: hasDate,
				Amount:  txn.Amount,
				Type:    txn.Type,
			})
			continue
		}

		if filter != nil && txn.Type != *filter {
			continue
		}
		for _, item := range txn.Items {
			name := item.DisplayName()
			if name == "" || !strings.Contains(strings.ToLower(name), needle) {
				continue
			}
			matches = append(matches, Match{
				Date:    at,
				HasDate: hasDate,
				Item:    name,
				Amount:  item.Amount,
				Type:    txn.Type,
				SaleID:  item.SaleID,
				URL:     slug.ItemURL(name, strconv.FormatInt(item.SaleID, 10)),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.HasDate != b.HasDate {
			return a.HasDate
		}
		return a.Date.After(b.Date)
	})
	return matches
}

// ParseTypeFilter maps the search type names onto a filter. "all" and the
// empty string match any type.
func ParseTypeFilter(name string) (*model.Type, bool) {
	var t model.Type
	switch strings.ToLower(name) {
	case "", "all":
		return nil, true
	case "purchase", "purchases", "bought":
		t = model.TypePurchase
	case "sold", "credit", "sales":
		t = model.TypeCredit
	case "payouts", "payout", "withdraw", "withdrawals":
		t = model.TypeWithdraw
	default:
		return nil, false
	}
	return &t, true
}
