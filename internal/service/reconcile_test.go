package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDiffFlagsDifferenceBeyondTolerance(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	report := map[string]decimal.Decimal{"123": money("50.00")}
	totals := map[string]decimal.Decimal{"123": money("12.50")}
	out := svc.Diff(report, totals)

	require.Len(t, out, 1)
	d := out[0]
	assert.Equal(t, "123", d.ClientCode)
	assert.True(t, d.ExpectedBalance.Equal(money("50.00")))
	assert.True(t, d.ActualTotal.Equal(money("12.50")))
	assert.True(t, d.Difference.Equal(money("-37.50")))
}

func TestDiffToleranceBoundaryIsExclusive(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	report := map[string]decimal.Decimal{
		"at":    money("10.00"),
		"over":  money("10.00"),
		"exact": money("10.00"),
	}
	totals := map[string]decimal.Decimal{
		"at":    money("10.01"),
		"over":  money("10.011"),
		"exact": money("10.00"),
	}
	out := svc.Diff(report, totals)

	require.Len(t, out, 1)
	assert.Equal(t, "over", out[0].ClientCode)
}

func TestDiffIsOneDirectional(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	// Billed internally but absent from the report: never flagged.
	report := map[string]decimal.Decimal{}
	totals := map[string]decimal.Decimal{"999": money("75.00")}

	assert.Empty(t, svc.Diff(report, totals))
}

func TestDiffReportedClientWithNoVisits(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	report := map[string]decimal.Decimal{"123": money("25.00")}
	out := svc.Diff(report, map[string]decimal.Decimal{})

	require.Len(t, out, 1)
	assert.True(t, out[0].ActualTotal.IsZero())
	assert.True(t, out[0].Difference.Equal(money("-25.00")))
}

func TestDiffOutputSortedByClientCode(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	report := map[string]decimal.Decimal{
		"300": money("10.00"),
		"100": money("10.00"),
		"200": money("10.00"),
	}
	out := svc.Diff(report, map[string]decimal.Decimal{})

	require.Len(t, out, 3)
	assert.Equal(t, "100", out[0].ClientCode)
	assert.Equal(t, "200", out[1].ClientCode)
	assert.Equal(t, "300", out[2].ClientCode)
}

func TestNewReconcileServiceDefaultsTolerance(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, decimal.Zero)

	report := map[string]decimal.Decimal{"123": money("10.00")}
	totals := map[string]decimal.Decimal{"123": money("10.005")}

	// Half a cent sits inside the default one-cent tolerance.
	assert.Empty(t, svc.Diff(report, totals))
}

func TestNewReconcileServiceCustomTolerance(t *testing.T) {
	svc := NewReconcileService(&stubVisitRepo{}, money("1.00"))

	report := map[string]decimal.Decimal{"123": money("10.00")}
	totals := map[string]decimal.Decimal{"123": money("10.50")}

	assert.Empty(t, svc.Diff(report, totals))
}
