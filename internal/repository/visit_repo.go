package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

type VisitRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, visits []model.Visit) error
	DeleteByPeriod(ctx context.Context, tx *gorm.DB, period string) error
	TotalsByClient(ctx context.Context, period model.Period) (map[string]decimal.Decimal, error)
	FetchByPeriod(ctx context.Context, period model.Period) ([]model.Visit, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type visitRepo struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) VisitRepository { return &visitRepo{db: db} }

func (r *visitRepo) DB() *gorm.DB { return r.db }

func (r *visitRepo) CreateBatch(ctx context.Context, tx *gorm.DB, visits []model.Visit) error {
	if len(visits) == 0 {
		return nil
	}
	// Items ride along via the association, inside the caller's transaction.
	return tx.WithContext(ctx).Create(&visits).Error
}

func (r *visitRepo) DeleteByPeriod(ctx context.Context, tx *gorm.DB, period string) error {
	sub := tx.Model(&model.Visit{}).Select("id").Where("period = ?", period)
	if err := tx.WithContext(ctx).Where("visit_id IN (?)", sub).Delete(&model.VisitItem{}).Error; err != nil {
		return err
	}
	return tx.WithContext(ctx).Where("period = ?", period).Delete(&model.Visit{}).Error
}

// TotalsByClient sums Visit.total per client for every visit whose date falls
// in the period. Summation happens in Go on decimals, not in SQL, so SQLite's
// float arithmetic never touches the money.
func (r *visitRepo) TotalsByClient(ctx context.Context, period model.Period) (map[string]decimal.Decimal, error) {
	var rows []struct {
		ClientCode string
		Total      decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Visit{}).
		Select("client_code", "total").
		Where("date LIKE ?", period.String()+"-%").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.ClientCode] = totals[row.ClientCode].Add(row.Total)
	}
	return totals, nil
}

func (r *visitRepo) FetchByPeriod(ctx context.Context, period model.Period) ([]model.Visit, error) {
	var visits []model.Visit
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("visit_items.id") }).
		Where("date BETWEEN ? AND ?", period.Start(), period.End()).
		Order("client_code, date, time").
		Find(&visits).Error
	return visits, err
}
