package service

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/parser"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
)

// DefaultTolerance is the reconciliation threshold: differences at or below
// one cent are noise, anything strictly above is a discrepancy.
var DefaultTolerance = decimal.New(1, -2)

type ReconcileService interface {
	Reconcile(ctx context.Context, reportPath string, period model.Period) ([]model.Discrepancy, error)
	Diff(report map[string]decimal.Decimal, totals map[string]decimal.Decimal) []model.Discrepancy
}

type reconcileService struct {
	visits    repository.VisitRepository
	tolerance decimal.Decimal
}

// NewReconcileService builds a differ. A zero tolerance selects
// DefaultTolerance.
func NewReconcileService(visits repository.VisitRepository, tolerance decimal.Decimal) ReconcileService {
	if tolerance.IsZero() {
		tolerance = DefaultTolerance
	}
	return &reconcileService{visits: visits, tolerance: tolerance}
}

// Reconcile loads the monthly report, sums stored visit totals for the
// period, and returns every per-client difference beyond tolerance.
// Discrepancies are designed output, not failures.
func (s *reconcileService) Reconcile(ctx context.Context, reportPath string, period model.Period) ([]model.Discrepancy, error) {
	report, err := parser.LoadMonthlyReport(reportPath)
	if err != nil {
		return nil, err
	}
	totals, err := s.visits.TotalsByClient(ctx, period)
	if err != nil {
		return nil, err
	}
	return s.Diff(report, totals), nil
}

// Diff compares computed totals against the report, one-directionally: the
// report drives the iteration, so a client that was billed internally but
// never reported is NOT flagged. A reported client with no visits compares
// against 0.00, which usually surfaces as "billed but no visit recorded".
// Output is ordered by client code for determinism.
func (s *reconcileService) Diff(report, totals map[string]decimal.Decimal) []model.Discrepancy {
	codes := make([]string, 0, len(report))
	for code := range report {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var discrepancies []model.Discrepancy
	for _, code := range codes {
		expected := report[code]
		actual := totals[code] // absent => zero
		difference := actual.Sub(expected)
		if difference.Abs().Cmp(s.tolerance) > 0 {
			discrepancies = append(discrepancies, model.Discrepancy{
				ClientCode:      code,
				ExpectedBalance: expected,
				ActualTotal:     actual,
				Difference:      difference,
			})
		}
	}
	return discrepancies
}
