package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TarekElTayeh/bistroAR/internal/infra"
	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
)

// GeneratedInvoice reports one rendered invoice.
type GeneratedInvoice struct {
	ClientCode string
	Path       string
	Total      decimal.Decimal
}

type InvoiceService interface {
	Generate(ctx context.Context, period model.Period, outDir string) ([]GeneratedInvoice, error)
}

type invoiceService struct {
	visits   repository.VisitRepository
	clients  repository.ClientRepository
	invoices repository.InvoiceRepository
	business string
}

func NewInvoiceService(
	visits repository.VisitRepository,
	clients repository.ClientRepository,
	invoices repository.InvoiceRepository,
	business string,
) InvoiceService {
	return &invoiceService{visits: visits, clients: clients, invoices: invoices, business: business}
}

// Generate produces one invoice per client with visits in the period: an
// upserted invoices/invoice_items row set keyed by "<code>_<period>", plus a
// rendered PDF named the same way. Regenerating a period replaces both.
func (s *invoiceService) Generate(ctx context.Context, period model.Period, outDir string) ([]GeneratedInvoice, error) {
	visits, err := s.visits.FetchByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir: %w", err)
	}

	// Visits arrive ordered by client code; walk them into per-client runs.
	var (
		results []GeneratedInvoice
		now     = time.Now().UTC()
		i       = 0
	)
	for i < len(visits) {
		code := visits[i].ClientCode
		j := i
		for j < len(visits) && visits[j].ClientCode == code {
			j++
		}
		result, err := s.generateOne(ctx, period, outDir, code, visits[i:j], now)
		if err != nil {
			return results, err
		}
		results = append(results, *result)
		i = j
	}
	return results, nil
}

func (s *invoiceService) generateOne(
	ctx context.Context,
	period model.Period,
	outDir, code string,
	visits []model.Visit,
	now time.Time,
) (*GeneratedInvoice, error) {
	total := decimal.Zero
	var items []model.InvoiceItem
	var lines []infra.InvoiceLine
	for _, v := range visits {
		for _, item := range v.Items {
			total = total.Add(item.Price)
			items = append(items, model.InvoiceItem{
				VisitID:     v.ID,
				Description: item.Description,
				Amount:      item.Price,
			})
			lines = append(lines, infra.InvoiceLine{
				Date:        v.Date,
				Time:        v.Time,
				Reference:   v.Reference,
				Description: item.Description,
				Amount:      item.Price,
			})
		}
	}

	invoice := model.Invoice{
		ID:          fmt.Sprintf("%s_%s", code, period),
		ClientCode:  code,
		PeriodStart: period.Start(),
		PeriodEnd:   period.End(),
		Subtotal:    total,
		TaxTPS:      decimal.Zero,
		TaxTVQ:      decimal.Zero,
		Total:       total,
		CreatedAt:   now,
		Items:       items,
	}
	err := runTx(ctx, s.invoices.DB(), func(tx *gorm.DB) error {
		return s.invoices.Replace(ctx, tx, &invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("store invoice %s: %w", invoice.ID, err)
	}

	name := code
	if client, err := s.clients.FindByCode(ctx, code); err == nil && client.Name != "" {
		name = client.Name
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s_%s.pdf", code, period))
	err = infra.RenderInvoicePDF(path, infra.InvoiceData{
		BusinessName: s.business,
		ClientName:   name,
		Period:       period.Display(),
		Lines:        lines,
		Total:        total,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("client", code).Str("path", path).Msg("generated invoice")
	return &GeneratedInvoice{ClientCode: code, Path: path, Total: total}, nil
}
