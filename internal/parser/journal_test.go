package parser

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
)

const sampleJournal = `Veloce Journal Report
123  7/5/25  18:30  #456  John Doe
Club Sandwich 12.50
Iced Tea 2.50
Page 1 of 3 xx
456  7/6/25  12:00  #457  Alice
Poutine 9.75
`

func TestExtractRecords(t *testing.T) {
	records, stats := ExtractRecords(strings.NewReader(sampleJournal))

	require.Len(t, records, 3)
	assert.Equal(t, 3, stats.Records)

	first := records[0]
	assert.Equal(t, "123", first.ClientCode)
	assert.Equal(t, "2025-07-05", first.Date)
	assert.Equal(t, "18:30", first.Time)
	assert.Equal(t, "456", first.Reference)
	assert.Equal(t, "John Doe", first.Employee)
	assert.Equal(t, "Club Sandwich", first.Description)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("12.50")))

	// Both details of the first header share its context.
	assert.Equal(t, first.ClientCode, records[1].ClientCode)
	assert.Equal(t, "Iced Tea", records[1].Description)

	// The second header replaces the first entirely.
	assert.Equal(t, "456", records[2].ClientCode)
	assert.Equal(t, "2025-07-06", records[2].Date)
	assert.Equal(t, "Poutine", records[2].Description)
}

func TestExtractRecordsPreservesSourceOrder(t *testing.T) {
	records, _ := ExtractRecords(strings.NewReader(sampleJournal))

	descriptions := make([]string, len(records))
	for i, r := range records {
		descriptions[i] = r.Description
	}
	assert.Equal(t, []string{"Club Sandwich", "Iced Tea", "Poutine"}, descriptions)
}

func TestExtractRecordsDropsOrphanDetails(t *testing.T) {
	in := "Espresso 3.00\n123  7/5/25  18:30  #456  John Doe\nLatte 4.50\n"
	records, stats := ExtractRecords(strings.NewReader(in))

	require.Len(t, records, 1)
	assert.Equal(t, "Latte", records[0].Description)
	assert.Equal(t, 1, stats.OrphanLines)
}

func TestExtractRecordsEmptyInput(t *testing.T) {
	records, stats := ExtractRecords(strings.NewReader(""))

	assert.Empty(t, records)
	assert.Zero(t, stats.Records)
}

func TestParseJournalMissingFile(t *testing.T) {
	_, _, err := ParseJournal("does/not/exist.txt")

	var notFound *etlerror.InputNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "does/not/exist.txt", notFound.Path)
}
