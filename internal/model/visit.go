package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Visit aggregates all transaction records sharing one visit key. Tax, tip and
// discount columns are zero-filled placeholders; the Veloce export carries no
// breakdown, so Total always equals Subtotal today. A visit is immutable once
// written; re-loading a period replaces its visits wholesale.
type Visit struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientCode string    `gorm:"index;not null"`
	Date       string    `gorm:"index;not null"` // YYYY-MM-DD
	Time       string    // HH:MM, may be empty
	Reference  string
	Employee   string
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxTPS     decimal.Decimal `gorm:"column:tax_tps;type:decimal(12,2);not null"`
	TaxTVQ     decimal.Decimal `gorm:"column:tax_tvq;type:decimal(12,2);not null"`
	Tip        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Period records which load run produced this visit (YYYY-MM) so a re-run
	// can replace exactly the rows it owns.
	Period string `gorm:"index;not null"`

	Items []VisitItem `gorm:"foreignKey:VisitID"`
}

// VisitItem is one line item of a visit, in ring-up order.
type VisitItem struct {
	ID          uint      `gorm:"primaryKey"`
	VisitID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
