// Package export renders report results as CSV, JSON or aligned text tables.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/skinledger/skinledger/internal/report"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q: want table, csv or json", s)
	}
}

// Header rows for each report.
const (
	SeriesHeader  = "date,sold,purchased"
	CountryHeader = "country,total"
	MatchHeader   = "date,item,amount,type,link"
)

const matchDateFormat = "2006-01-02 15:04:05"

// MarshalSeriesRow converts the i-th day of s to a row. Warm-up days have
// empty amount cells.
func MarshalSeriesRow(s report.Series, i int) []string {
	return []string{
		s.Dates[i].String(),
		nullAmount(s.Credit[i]),
		nullAmount(s.Purchase[i]),
	}
}

// MarshalCountryRow converts a country total to a row.
func MarshalCountryRow(c report.CountryTotal) []string {
	return []string{c.Country, c.Total.StringFixed(2)}
}

// MarshalMatchRow converts a search match to a row.
func MarshalMatchRow(m report.Match) []string {
	date := ""
	if m.HasDate {
		date = m.Date.Format(matchDateFormat)
	}
	return []string{date, m.Item, m.Amount.StringFixed(2), string(m.Type), m.URL}
}

func nullAmount(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}

// WriteSeries writes a rolling-average series in format f.
func WriteSeries(w io.Writer, f Format, s report.Series) error {
	if f == FormatJSON {
		return writeJSON(w, SeriesPoints(s))
	}
	rows := make([][]string, len(s.Dates))
	for i := range s.Dates {
		rows[i] = MarshalSeriesRow(s, i)
	}
	return writeRows(w, f, SeriesHeader, rows)
}

// WriteCountries writes country totals in format f, in the given order.
func WriteCountries(w io.Writer, f Format, totals []report.CountryTotal) error {
	if f == FormatJSON {
		out := make([]CountryRow, len(totals))
		for i, c := range totals {
			out[i] = CountryRow{Country: c.Country, Total: c.Total}
		}
		return writeJSON(w, out)
	}
	rows := make([][]string, len(totals))
	for i, c := range totals {
		rows[i] = MarshalCountryRow(c)
	}
	return writeRows(w, f, CountryHeader, rows)
}

// WriteMatches writes search matches in format f.
func WriteMatches(w io.Writer, f Format, matches []report.Match) error {
	if f == FormatJSON {
		out := make([]MatchRow, len(matches))
		for i, m := range matches {
			out[i] = NewMatchRow(m)
		}
		return writeJSON(w, out)
	}
	rows := make([][]string, len(matches))
	for i, m := range matches {
		rows[i] = MarshalMatchRow(m)
	}
	return writeRows(w, f, MatchHeader, rows)
}

// SeriesPoint is the JSON shape of one rolling-average day.
type SeriesPoint struct {
	Date      string           `json:"date"`
	Sold      *decimal.Decimal `json:"sold"`
	Purchased *decimal.Decimal `json:"purchased"`
}

// CountryRow is the JSON shape of one country total.
type CountryRow struct {
	Country string          `json:"country"`
	Total   decimal.Decimal `json:"total"`
}

// MatchRow is the JSON shape of one search match.
type MatchRow struct {
	Date   *time.Time      `json:"date"`
	Item   string          `json:"item,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
	Link   string          `json:"link,omitempty"`
}

// NewMatchRow converts m to its JSON shape.
func NewMatchRow(m report.Match) MatchRow {
	row := MatchRow{Item: m.Item, Amount: m.Amount, Type: string(m.Type), Link: m.URL}
	if m.HasDate {
		d := m.Date
		row.Date = &d
	}
	return row
}

// SeriesPoints converts s to its JSON shape.
func SeriesPoints(s report.Series) []SeriesPoint {
	out := make([]SeriesPoint, len(s.Dates))
	for i, d := range s.Dates {
		out[i] = SeriesPoint{Date: d.String(), Sold: nullPtr(s.Credit[i]), Purchased: nullPtr(s.Purchase[i])}
	}
	return out
}

func nullPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeRows(w io.Writer, f Format, header string, rows [][]string) error {
	switch f {
	case FormatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(strings.Split(header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for i, row := range rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row %d: %w", i+2, err)
			}
		}
		cw.Flush()
		return cw.Error()
	case FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.ToUpper(strings.ReplaceAll(header, ",", "\t")))
		for _, row := range rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
