package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
)

func TestLoadReportRows(t *testing.T) {
	rows := [][]string{
		{"Code", "Balance"},
		{"123", "50.00"},
		{"456", "12.25"},
	}
	report, err := loadReportRows(rows)

	require.NoError(t, err)
	require.Len(t, report, 2)
	assert.True(t, report["123"].Equal(decimal.RequireFromString("50.00")))
	assert.True(t, report["456"].Equal(decimal.RequireFromString("12.25")))
}

func TestLoadReportRowsSumsDuplicateCodes(t *testing.T) {
	rows := [][]string{
		{"Client Code", "Amount Owed"},
		{"123", "10.00"},
		{"123", "5.00"},
	}
	report, err := loadReportRows(rows)

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.True(t, report["123"].Equal(decimal.RequireFromString("15.00")))
}

func TestLoadReportRowsSkipsDirtyRows(t *testing.T) {
	rows := [][]string{
		{"Code", "Balance"},
		{"", "10.00"},
		{"nan", "10.00"},
		{"456", "not a number"},
		{"123", "$1,000.00"},
	}
	report, err := loadReportRows(rows)

	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.True(t, report["123"].Equal(decimal.RequireFromString("1000.00")))
	_, present := report["456"]
	assert.False(t, present)
}

func TestLoadReportRowsBannerAboveHeader(t *testing.T) {
	rows := [][]string{
		{"Monthly Balances, July 2025"},
		{"Code", "Balance"},
		{"123", "42.00"},
	}
	report, err := loadReportRows(rows)

	require.NoError(t, err)
	assert.True(t, report["123"].Equal(decimal.RequireFromString("42.00")))
}

func TestLoadReportRowsMissingColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Phone"},
		{"Fred", "555-0100"},
	}
	_, err := loadReportRows(rows)

	var schemaErr *etlerror.SchemaDetectionError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "code")
	assert.Contains(t, schemaErr.Missing, "balance")
}

func TestLoadReportRowsEmptyInput(t *testing.T) {
	_, err := loadReportRows(nil)
	assert.Error(t, err)
}
