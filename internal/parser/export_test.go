package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecordsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "client_code,date,time,reference,employee,description,price\n" +
		"123,2025-07-05,18:30,456,John Doe,Club Sandwich,12.5\n" +
		"123,2025-07-05,18:30,456,John Doe,Mystery,oops\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	records, stats, err := ReadRecordsCSV(path)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Club Sandwich", records[0].Description)
	assert.True(t, records[0].Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 1, stats.BadCells)
}

func TestReadRecordsCSVMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte("description,price\nBurger,10.00\n"), 0o644))

	_, _, err := ReadRecordsCSV(path)
	assert.Error(t, err)
}
