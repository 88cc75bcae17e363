package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skinledger/skinledger/internal/model"
	"github.com/skinledger/skinledger/internal/report"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleSeries() report.Series {
	return report.Series{
		Dates:    []civil.Date{{Year: 2024, Month: 1, Day: 8}, {Year: 2024, Month: 1, Day: 9}},
		Credit:   []decimal.NullDecimal{{}, decimal.NewNullDecimal(dec("12.345"))},
		Purchase: []decimal.NullDecimal{{}, decimal.NewNullDecimal(dec("4"))},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"table", "CSV", "json"} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestMarshalSeriesRow(t *testing.T) {
	s := sampleSeries()
	assert.Equal(t, []string{"2024-01-08", "", ""}, MarshalSeriesRow(s, 0))
	assert.Equal(t, []string{"2024-01-09", "12.35", "4.00"}, MarshalSeriesRow(s, 1))
}

func TestMarshalMatchRow(t *testing.T) {
	m := report.Match{
		Date:    time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
		HasDate: true,
		Item:    "AWP | Asiimov",
		Amount:  dec("80"),
		Type:    model.TypeCredit,
		URL:     "https://skinport.com/item/awp-asiimov/2",
	}
	assert.Equal(t, []string{"2024-01-05 10:00:00", "AWP | Asiimov", "80.00", "credit", "https://skinport.com/item/awp-asiimov/2"}, MarshalMatchRow(m))

	m.HasDate = false
	assert.Equal(t, "", MarshalMatchRow(m)[0])
}

func TestWriteSeries_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, FormatCSV, sampleSeries()))
	assert.Equal(t, "date,sold,purchased\n2024-01-08,,\n2024-01-09,12.35,4.00\n", buf.String())
}

func TestWriteSeries_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, FormatJSON, sampleSeries()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Nil(t, got[0]["sold"])
	assert.Equal(t, "12.345", got[1]["sold"])
	assert.Equal(t, "2024-01-09", got[1]["date"])
}

func TestWriteCountries_Table(t *testing.T) {
	var buf bytes.Buffer
	rows := []report.CountryTotal{{Country: "DE", Total: dec("75")}, {Country: "FR", Total: dec("1.5")}}
	require.NoError(t, WriteCountries(&buf, FormatTable, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"COUNTRY", "TOTAL"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"DE", "75.00"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"FR", "1.50"}, strings.Fields(lines[2]))
}

func TestWriteMatches_JSON(t *testing.T) {
	var buf bytes.Buffer
	matches := []report.Match{
		{Amount: dec("100"), Type: model.TypeWithdraw, Date: time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC), HasDate: true},
		{Item: "AWP | Asiimov", Amount: dec("80"), Type: model.TypeCredit},
	}
	require.NoError(t, WriteMatches(&buf, FormatJSON, matches))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-20T12:00:00Z", got[0]["date"])
	assert.NotContains(t, got[0], "item")
	assert.Nil(t, got[1]["date"])
	assert.Equal(t, "AWP | Asiimov", got[1]["item"])
}

func TestWriteMatches_EmptyCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMatches(&buf, FormatCSV, nil))
	assert.Equal(t, MatchHeader+"\n", buf.String())
}
