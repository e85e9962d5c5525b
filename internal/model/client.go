package model

import "github.com/shopspring/decimal"

// Client is one house-account holder imported from the client list export.
type Client struct {
	Code           string `gorm:"primaryKey"`
	Name           string
	Phone          string
	Address1       string
	Address2       string
	PrepaidBalance decimal.Decimal `gorm:"type:decimal(12,2)"`
	OwedAmount     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Email          string
}
