package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/TarekElTayeh/bistroAR/internal/etlerror"
	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/parser"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
)

type ClientService interface {
	ImportFile(ctx context.Context, path string) (int, error)
}

type clientService struct {
	clients repository.ClientRepository
}

func NewClientService(clients repository.ClientRepository) ClientService {
	return &clientService{clients: clients}
}

// Column spellings seen across client list exports, keyed by logical field.
var clientColumns = map[string][]string{
	"code":            {"code"},
	"name":            {"name"},
	"phone":           {"phone"},
	"address1":        {"address1", "adress1"},
	"address2":        {"address2", "adress2"},
	"prepaid_balance": {"prepaid_balance"},
	"owed_amount":     {"owed_amount"},
	"email":           {"e_mail", "email"},
}

// ImportFile upserts clients from an XLSX or CSV list. Only the code column
// is mandatory; rows without a code are skipped and unparseable balances
// import as zero.
func (s *clientService) ImportFile(ctx context.Context, path string) (int, error) {
	rows, err := parser.ReadTabular(path)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = normalizeClientColumn(h)
	}
	cols := make(map[string]int, len(clientColumns))
	for field, candidates := range clientColumns {
		for _, candidate := range candidates {
			for i, h := range headers {
				if h == candidate {
					cols[field] = i
					break
				}
			}
			if _, ok := cols[field]; ok {
				break
			}
		}
	}
	if _, ok := cols["code"]; !ok {
		return 0, etlerror.NewSchemaDetection([]string{"code"})
	}

	var clients []model.Client
	for _, row := range rows[1:] {
		code := strings.TrimSpace(clientCell(row, cols, "code"))
		if code == "" {
			continue
		}
		clients = append(clients, model.Client{
			Code:           code,
			Name:           strings.TrimSpace(clientCell(row, cols, "name")),
			Phone:          strings.TrimSpace(clientCell(row, cols, "phone")),
			Address1:       strings.TrimSpace(clientCell(row, cols, "address1")),
			Address2:       strings.TrimSpace(clientCell(row, cols, "address2")),
			PrepaidBalance: lenientAmount(clientCell(row, cols, "prepaid_balance")),
			OwedAmount:     lenientAmount(clientCell(row, cols, "owed_amount")),
			Email:          strings.TrimSpace(clientCell(row, cols, "email")),
		})
	}
	if err := s.clients.Upsert(ctx, clients); err != nil {
		return 0, err
	}
	return len(clients), nil
}

// normalizeClientColumn extends the usual header normalization by stripping
// parentheses and hyphens, so "Address(1)" and "E-Mail" resolve.
func normalizeClientColumn(c string) string {
	c = parser.NormalizeColumn(c)
	c = strings.NewReplacer("(", "", ")", "", "-", "_").Replace(c)
	return c
}

func clientCell(row []string, cols map[string]int, field string) string {
	idx, ok := cols[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func lenientAmount(raw string) decimal.Decimal {
	amount, err := parser.ParseAmount(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
