package report

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinledger/skinledger/internal/model"
)

func TestDaily_ExampleScenario(t *testing.T) {
	d1, d2, d3 := day(2024, 3, 1), day(2024, 3, 2), day(2024, 3, 3)
	txns := []model.Transaction{
		credit(d1, "100", "5"),
		purchase(d1, "40"),
		credit(d3, "60", "0"),
	}

	got := Daily(txns, d1, d3, true)
	require.Len(t, got, 3)

	assert.True(t, got[d1].Credit.Equal(dec("95")))
	assert.True(t, got[d1].Purchase.Equal(dec("40")))
	assert.True(t, got[d2].Credit.IsZero())
	assert.True(t, got[d2].Purchase.IsZero())
	assert.True(t, got[d3].Credit.Equal(dec("60")))
	assert.True(t, got[d3].Purchase.IsZero())
}

func TestDaily_GrossKeepsFees(t *testing.T) {
	d := day(2024, 3, 1)
	got := Daily([]model.Transaction{credit(d, "100", "5"), credit(d, "20", "")}, d, d, false)
	assert.True(t, got[d].Credit.Equal(dec("120")))
}

func TestDaily_OneEntryPerDay(t *testing.T) {
	tests := []struct {
		start, end civil.Date
	}{
		{day(2024, 1, 1), day(2024, 1, 1)},
		{day(2024, 1, 1), day(2024, 1, 31)},
		{day(2023, 12, 30), day(2024, 3, 2)},
		{day(2024, 1, 1), day(2024, 12, 31)},
	}
	txns := []model.Transaction{
		credit(day(2024, 1, 1), "1", ""),
		credit(day(2024, 1, 1), "1", ""),
		purchase(day(2024, 2, 10), "3"),
		purchase(day(2025, 1, 1), "3"),
	}
	for _, tt := range tests {
		got := Daily(txns, tt.start, tt.end, false)
		assert.Len(t, got, tt.end.DaysSince(tt.start)+1, "%s..%s", tt.start, tt.end)
		for d := tt.start; !d.After(tt.end); d = d.AddDays(1) {
			assert.Contains(t, got, d)
		}
	}
}

func TestDaily_SkipsOutOfRangeAndBadDates(t *testing.T) {
	start, end := day(2024, 3, 1), day(2024, 3, 2)
	bad := credit(start, "500", "")
	bad.UpdatedAt = "not-a-date"
	missing := purchase(start, "500")
	missing.UpdatedAt = ""

	txns := []model.Transaction{
		credit(day(2024, 2, 29), "10", ""),
		credit(day(2024, 3, 3), "10", ""),
		bad,
		missing,
		purchase(end, "7"),
	}

	got := Daily(txns, start, end, false)
	require.Len(t, got, 2)
	assert.True(t, got[start].Credit.IsZero())
	assert.True(t, got[start].Purchase.IsZero())
	assert.True(t, got[end].Purchase.Equal(dec("7")))
}

func TestDaily_IgnoresOtherTypes(t *testing.T) {
	d := day(2024, 3, 1)
	withdraw := purchase(d, "300")
	withdraw.Type = model.TypeWithdraw
	other := purchase(d, "300")
	other.Type = model.Type("refund")

	got := Daily([]model.Transaction{withdraw, other}, d, d, false)
	assert.True(t, got[d].Credit.IsZero())
	assert.True(t, got[d].Purchase.IsZero())
}

func TestDaily_PurchaseFeesNeverApply(t *testing.T) {
	d := day(2024, 3, 1)
	p := purchase(d, "40")
	p.Fee = fee("4")

	got := Daily([]model.Transaction{p}, d, d, true)
	assert.True(t, got[d].Purchase.Equal(dec("40")))
}

func TestDaily_EmptyInput(t *testing.T) {
	got := Daily(nil, day(2024, 1, 1), day(2024, 1, 7), true)
	assert.Len(t, got, 7)
	for _, totals := range got {
		assert.True(t, totals.Credit.IsZero())
		assert.True(t, totals.Purchase.IsZero())
	}
}

func TestSortedDays(t *testing.T) {
	daily := map[civil.Date]DayTotals{
		day(2024, 3, 2):  {},
		day(2023, 12, 1): {},
		day(2024, 1, 15): {},
	}
	assert.Equal(t, []civil.Date{day(2023, 12, 1), day(2024, 1, 15), day(2024, 3, 2)}, SortedDays(daily))
}
