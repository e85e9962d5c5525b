package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
)

// Mailer sends one invoice email with a PDF attachment. infra.Mailer
// satisfies it; tests substitute a stub.
type Mailer interface {
	Send(to, subject, body, attachmentPath string) error
}

// Delivery statuses recorded in the manifest.
const (
	StatusSent    = "SENT"
	StatusFailed  = "FAILED"
	StatusSkipped = "SKIPPED"
)

type DeliveryResult struct {
	ClientCode  string
	InvoiceFile string
	Email       string
	Status      string
}

type DeliveryService interface {
	Deliver(ctx context.Context, period model.Period, inDir, manifestPath string) ([]DeliveryResult, error)
}

type deliveryService struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	mailer   Mailer // nil when SMTP is not configured; everything is SKIPPED
	business string
}

func NewDeliveryService(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	mailer Mailer,
	business string,
) DeliveryService {
	return &deliveryService{invoices: invoices, clients: clients, mailer: mailer, business: business}
}

// Deliver emails each of the period's invoices to its client and writes a
// manifest CSV of per-client outcomes. A send failure marks that row FAILED
// and moves on; delivery is best-effort per client, never all-or-nothing.
func (s *deliveryService) Deliver(ctx context.Context, period model.Period, inDir, manifestPath string) ([]DeliveryResult, error) {
	invoices, err := s.invoices.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	results := make([]DeliveryResult, 0, len(invoices))
	for _, inv := range invoices {
		file := filepath.Join(inDir, fmt.Sprintf("%s_%s.pdf", inv.ClientCode, period))
		email := ""
		if client, err := s.clients.FindByCode(ctx, inv.ClientCode); err == nil {
			email = client.Email
		}

		status := StatusSkipped
		if email != "" && s.mailer != nil {
			subject := fmt.Sprintf("%s Invoice for %s", s.business, period)
			body := fmt.Sprintf(
				"Dear %s,\n\nPlease find your invoice for %s attached.\n\nRegards,\n%s",
				inv.ClientCode, period, s.business)
			if err := s.mailer.Send(email, subject, body, file); err != nil {
				log.Warn().Err(err).Str("client", inv.ClientCode).Msg("invoice email failed")
				status = StatusFailed
			} else {
				status = StatusSent
			}
		}
		log.Info().Str("client", inv.ClientCode).Str("status", status).Msg("delivery")
		results = append(results, DeliveryResult{
			ClientCode:  inv.ClientCode,
			InvoiceFile: file,
			Email:       email,
			Status:      status,
		})
	}

	if err := writeManifest(manifestPath, results); err != nil {
		return results, err
	}
	return results, nil
}

func writeManifest(path string, results []DeliveryResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"client_code", "invoice_file", "email", "status"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.ClientCode, r.InvoiceFile, r.Email, r.Status}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
