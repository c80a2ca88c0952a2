package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a line item is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Journal is the header row of a posted journal.
type Journal struct {
	JournalID   string    `db:"journal_id"`
	CompanyID   string    `db:"company_id"`
	JournalDate time.Time `db:"journal_date"`
	Description string    `db:"description"`
	AuditFields
}

// LedgerLineItem is one posting of a journal against an account.
type LedgerLineItem struct {
	ID              string          `db:"id"`
	CompanyID       string          `db:"company_id"`
	JournalID       string          `db:"journal_id"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType TransactionType `db:"transaction_type"`
	PostedAt        time.Time       `db:"posted_at"`
	Description     string          `db:"description"`
}
