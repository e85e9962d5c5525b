package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

type InvoiceRepository interface {
	Replace(ctx context.Context, tx *gorm.DB, invoice *model.Invoice) error
	ListByPeriod(ctx context.Context, period model.Period) ([]model.Invoice, error)
	DB() *gorm.DB
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

// Replace upserts the invoice row keyed by its derived id and rewrites its
// items, so regenerating a period is repeatable.
func (r *invoiceRepo) Replace(ctx context.Context, tx *gorm.DB, invoice *model.Invoice) error {
	items := invoice.Items
	invoice.Items = nil
	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(invoice).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).
		Where("invoice_id = ?", invoice.ID).
		Delete(&model.InvoiceItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].InvoiceID = invoice.ID
	}
	invoice.Items = items
	if len(items) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *invoiceRepo) ListByPeriod(ctx context.Context, period model.Period) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("period_start LIKE ?", period.String()+"-%").
		Order("client_code").
		Find(&invoices).Error
	return invoices, err
}
