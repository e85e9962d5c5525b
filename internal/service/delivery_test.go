package service

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

type stubInvoiceRepo struct {
	replaced []model.Invoice
	listed   []model.Invoice
}

func (s *stubInvoiceRepo) Replace(ctx context.Context, tx *gorm.DB, invoice *model.Invoice) error {
	s.replaced = append(s.replaced, *invoice)
	return nil
}

func (s *stubInvoiceRepo) ListByPeriod(ctx context.Context, period model.Period) ([]model.Invoice, error) {
	return s.listed, nil
}

func (s *stubInvoiceRepo) DB() *gorm.DB { return nil }

type stubClientRepo struct {
	clients map[string]*model.Client
	upserts []model.Client
}

func (s *stubClientRepo) Upsert(ctx context.Context, clients []model.Client) error {
	s.upserts = append(s.upserts, clients...)
	return nil
}

func (s *stubClientRepo) FindByCode(ctx context.Context, code string) (*model.Client, error) {
	if c, ok := s.clients[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubMailer struct {
	sent    []string
	failFor map[string]bool
}

func (s *stubMailer) Send(to, subject, body, attachmentPath string) error {
	if s.failFor[to] {
		return errors.New("smtp refused")
	}
	s.sent = append(s.sent, to)
	return nil
}

func TestDeliverStatuses(t *testing.T) {
	invoices := &stubInvoiceRepo{listed: []model.Invoice{
		{ID: "100_2025-07", ClientCode: "100"},
		{ID: "200_2025-07", ClientCode: "200"},
		{ID: "300_2025-07", ClientCode: "300"},
	}}
	clients := &stubClientRepo{clients: map[string]*model.Client{
		"100": {Code: "100", Email: "one@example.com"},
		"200": {Code: "200", Email: "two@example.com"},
		"300": {Code: "300"}, // no email on file
	}}
	mailer := &stubMailer{failFor: map[string]bool{"two@example.com": true}}

	svc := NewDeliveryService(invoices, clients, mailer, "Bistro 54")
	manifest := filepath.Join(t.TempDir(), "manifest.csv")
	results, err := svc.Deliver(context.Background(), july(), "out", manifest)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, StatusSent, results[0].Status)
	assert.Equal(t, StatusFailed, results[1].Status)
	assert.Equal(t, StatusSkipped, results[2].Status)
	assert.Equal(t, []string{"one@example.com"}, mailer.sent)
	assert.Equal(t, filepath.Join("out", "100_2025-07.pdf"), results[0].InvoiceFile)
}

func TestDeliverNilMailerSkipsEverything(t *testing.T) {
	invoices := &stubInvoiceRepo{listed: []model.Invoice{
		{ID: "100_2025-07", ClientCode: "100"},
	}}
	clients := &stubClientRepo{clients: map[string]*model.Client{
		"100": {Code: "100", Email: "one@example.com"},
	}}

	svc := NewDeliveryService(invoices, clients, nil, "Bistro 54")
	manifest := filepath.Join(t.TempDir(), "manifest.csv")
	results, err := svc.Deliver(context.Background(), july(), "out", manifest)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, StatusSkipped, results[0].Status)
}

func TestDeliverWritesManifest(t *testing.T) {
	invoices := &stubInvoiceRepo{listed: []model.Invoice{
		{ID: "100_2025-07", ClientCode: "100"},
	}}
	clients := &stubClientRepo{clients: map[string]*model.Client{
		"100": {Code: "100", Email: "one@example.com"},
	}}
	mailer := &stubMailer{}

	svc := NewDeliveryService(invoices, clients, mailer, "Bistro 54")
	manifest := filepath.Join(t.TempDir(), "manifest.csv")
	_, err := svc.Deliver(context.Background(), july(), "out", manifest)
	require.NoError(t, err)

	f, err := os.Open(manifest)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"client_code", "invoice_file", "email", "status"}, rows[0])
	assert.Equal(t, "100", rows[1][0])
	assert.Equal(t, StatusSent, rows[1][3])
}
