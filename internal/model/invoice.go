package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice summarizes one client's visits for one billing period. The ID is
// derived as "<client_code>_<period>" so regenerating a period's invoices
// replaces the previous rows instead of duplicating them.
type Invoice struct {
	ID          string `gorm:"primaryKey"`
	ClientCode  string `gorm:"index;not null"`
	PeriodStart string `gorm:"not null"` // YYYY-MM-DD
	PeriodEnd   string `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxTPS      decimal.Decimal `gorm:"column:tax_tps;type:decimal(12,2);not null"`
	TaxTVQ      decimal.Decimal `gorm:"column:tax_tvq;type:decimal(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// InvoiceItem links an invoice line back to the visit item it bills.
type InvoiceItem struct {
	ID          uint      `gorm:"primaryKey"`
	InvoiceID   string    `gorm:"index;not null"`
	VisitID     uuid.UUID `gorm:"type:uuid;not null"`
	Description string
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
