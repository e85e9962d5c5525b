package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TarekElTayeh/bistroAR/internal/model"
	"github.com/TarekElTayeh/bistroAR/internal/repository"
)

// LoadSummary reports what one load run wrote.
type LoadSummary struct {
	Visits int
	Items  int
}

type LoaderService interface {
	Load(ctx context.Context, records []model.TransactionRecord, period model.Period) (*LoadSummary, error)
}

type loaderService struct {
	visits repository.VisitRepository
}

func NewLoaderService(visits repository.VisitRepository) LoaderService {
	return &loaderService{visits: visits}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Aggregate groups records by visit key and synthesizes one Visit per key.
// Keys keep first-encounter order and members keep insertion order, so item
// display order mirrors the source document. Subtotal equals Total until the
// export grows a tax/tip breakdown.
func Aggregate(records []model.TransactionRecord, period model.Period) []model.Visit {
	var order []model.VisitKey
	groups := make(map[model.VisitKey][]model.TransactionRecord)
	for _, r := range records {
		key := r.Key()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	visits := make([]model.Visit, 0, len(order))
	for _, key := range order {
		members := groups[key]
		id := uuid.New()

		subtotal := decimal.Zero
		items := make([]model.VisitItem, 0, len(members))
		for _, m := range members {
			subtotal = subtotal.Add(m.Price)
			items = append(items, model.VisitItem{
				VisitID:     id,
				Description: m.Description,
				Price:       m.Price,
			})
		}

		visits = append(visits, model.Visit{
			ID:         id,
			ClientCode: key.ClientCode,
			Date:       key.Date,
			Time:       key.Time,
			Reference:  key.Reference,
			Employee:   members[0].Employee,
			Subtotal:   subtotal,
			TaxTPS:     decimal.Zero,
			TaxTVQ:     decimal.Zero,
			Tip:        decimal.Zero,
			Discount:   decimal.Zero,
			Total:      subtotal,
			Period:     period.String(),
			Items:      items,
		})
	}
	return visits
}

// Load replaces the period's stored visits with the aggregate of records, all
// inside one transaction: the previous rows for the period are deleted, then
// every Visit and VisitItem is inserted, or nothing is. An empty record set
// writes nothing and leaves prior rows untouched; the caller reports it.
func (s *loaderService) Load(ctx context.Context, records []model.TransactionRecord, period model.Period) (*LoadSummary, error) {
	summary := &LoadSummary{}
	if len(records) == 0 {
		return summary, nil
	}

	visits := Aggregate(records, period)
	err := runTx(ctx, s.visits.DB(), func(tx *gorm.DB) error {
		if err := s.visits.DeleteByPeriod(ctx, tx, period.String()); err != nil {
			return err
		}
		return s.visits.CreateBatch(ctx, tx, visits)
	})
	if err != nil {
		return nil, err
	}

	summary.Visits = len(visits)
	for _, v := range visits {
		summary.Items += len(v.Items)
	}
	return summary, nil
}
