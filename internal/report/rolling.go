package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Series is a rolling-averaged view of daily totals. Credit and Purchase are
// aligned with Dates; an invalid entry marks a warm-up day with no average.
type Series struct {
	Dates    []civil.Date
	Credit   []decimal.NullDecimal
	Purchase []decimal.NullDecimal
}

// Rolling computes trailing simple moving averages of window days.
//
// The first window days of the sorted series are dropped from the output.
// For retained index i the average covers the raw totals of retained days
// i-window+1..i, so it always ends on the day it is reported for. Retained
// indices below window-1 yield no value. With window 1 every retained day
// carries its raw totals.
func Rolling(daily map[civil.Date]DayTotals, window int) Series {
	if window < 1 {
		window = 1
	}

	all := SortedDays(daily)
	var s Series
	if len(all) <= window {
		return s
	}

	s.Dates = all[window:]
	s.Credit = make([]decimal.NullDecimal, len(s.Dates))
	s.Purchase = make([]decimal.NullDecimal, len(s.Dates))

	n := decimal.NewFromInt(int64(window))
	for i := range s.Dates {
		if i < window-1 {
			continue
		}
		var credit, purchase decimal.Decimal
		for j := i - window + 1; j <= i; j++ {
			t := daily[s.Dates[j]]
			credit = credit.Add(t.Credit)
			purchase = purchase.Add(t.Purchase)
		}
		s.Credit[i] = decimal.NewNullDecimal(credit.Div(n))
		s.Purchase[i] = decimal.NewNullDecimal(purchase.Div(n))
	}
	return s
}

// Smoothing presets offered for the daily chart, in window days.
var smoothingPresets = map[string]int{
	"nothing": 1,
	"weekly":  7,
	"monthly": 30,
}

// SmoothingNames lists the preset names in increasing window order.
func SmoothingNames() []string {
	names := make([]string, 0, len(smoothingPresets))
	for name := range smoothingPresets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return smoothingPresets[names[i]] < smoothingPresets[names[j]] })
	return names
}

// ParseSmoothing resolves a preset name (case-insensitive) or a positive
// integer into a window length.
func ParseSmoothing(s string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if w, ok := smoothingPresets[key]; ok {
		return w, nil
	}
	w, err := strconv.Atoi(key)
	if err != nil || w < 1 {
		return 0, fmt.Errorf("invalid smoothing %q: want one of %s or a positive number of days", s, strings.Join(SmoothingNames(), ", "))
	}
	return w, nil
}
