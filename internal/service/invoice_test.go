package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

func visit(code, date, tm, ref string, prices ...string) model.Visit {
	id := uuid.New()
	total := decimal.Zero
	var items []model.VisitItem
	for _, p := range prices {
		price := decimal.RequireFromString(p)
		total = total.Add(price)
		items = append(items, model.VisitItem{VisitID: id, Description: "Item " + p, Price: price})
	}
	return model.Visit{
		ID: id, ClientCode: code, Date: date, Time: tm, Reference: ref,
		Subtotal: total, Total: total, Period: "2025-07", Items: items,
	}
}

func TestGenerateOneInvoicePerClient(t *testing.T) {
	visits := &stubVisitRepo{fetched: []model.Visit{
		visit("100", "2025-07-05", "18:30", "1", "10.00", "2.50"),
		visit("100", "2025-07-12", "12:00", "2", "9.75"),
		visit("200", "2025-07-06", "19:00", "3", "45.00"),
	}}
	invoices := &stubInvoiceRepo{}
	clients := &stubClientRepo{clients: map[string]*model.Client{
		"100": {Code: "100", Name: "Fred's Garage"},
	}}

	svc := NewInvoiceService(visits, clients, invoices, "Bistro 54")
	outDir := t.TempDir()
	results, err := svc.Generate(context.Background(), july(), outDir)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "100", results[0].ClientCode)
	assert.True(t, results[0].Total.Equal(decimal.RequireFromString("22.25")))
	assert.Equal(t, "200", results[1].ClientCode)
	assert.True(t, results[1].Total.Equal(decimal.RequireFromString("45.00")))

	// One stored invoice per client, keyed by code and period.
	require.Len(t, invoices.replaced, 2)
	first := invoices.replaced[0]
	assert.Equal(t, "100_2025-07", first.ID)
	assert.Equal(t, "2025-07-01", first.PeriodStart)
	assert.Equal(t, "2025-07-31", first.PeriodEnd)
	assert.Len(t, first.Items, 3)

	// PDFs land on disk next to each other.
	for _, r := range results {
		info, err := os.Stat(r.Path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, outDir, filepath.Dir(r.Path))
	}
}

func TestGenerateNoVisits(t *testing.T) {
	svc := NewInvoiceService(&stubVisitRepo{}, &stubClientRepo{}, &stubInvoiceRepo{}, "Bistro 54")

	results, err := svc.Generate(context.Background(), july(), t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGenerateFallsBackToCodeWhenClientUnknown(t *testing.T) {
	visits := &stubVisitRepo{fetched: []model.Visit{
		visit("999", "2025-07-05", "18:30", "1", "5.00"),
	}}
	svc := NewInvoiceService(visits, &stubClientRepo{}, &stubInvoiceRepo{}, "Bistro 54")

	results, err := svc.Generate(context.Background(), july(), t.TempDir())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, filepath.Base(results[0].Path), "999_2025-07.pdf")
}
