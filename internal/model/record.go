package model

import "github.com/shopspring/decimal"

// TransactionRecord is the canonical record shape every parser variant emits:
// one priced line item tied to the client visit it was rung up under.
// Date is always YYYY-MM-DD; Time is HH:MM and may be empty for sources that
// do not carry a time-of-day.
type TransactionRecord struct {
	ClientCode  string          `json:"client_code"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Reference   string          `json:"reference"`
	Employee    string          `json:"employee"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// VisitKey groups records into billable visits. Two records with the same key
// belong to the same table sitting / check.
type VisitKey struct {
	ClientCode string
	Date       string
	Time       string
	Reference  string
}

func (r TransactionRecord) Key() VisitKey {
	return VisitKey{
		ClientCode: r.ClientCode,
		Date:       r.Date,
		Time:       r.Time,
		Reference:  r.Reference,
	}
}

// JournalEntry is one accounts-receivable posting extracted from a multi-day
// ledger journal TXT (the account-filter export, not the per-visit journal).
type JournalEntry struct {
	Date    string          `json:"date"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
}
