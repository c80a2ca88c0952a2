package domain

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

// LedgerLineItem is a single posting against one account.
type LedgerLineItem struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"companyID"`
	AccountID       string          `json:"accountID"`
	JournalID       string          `json:"journalID"`
	Amount          decimal.Decimal `json:"amount"` // always positive
	TransactionType TransactionType `json:"transactionType"`
	PostedAt        time.Time       `json:"postedAt"`
	Description     string          `json:"description"`
}

// IsDebit reports whether the line item posts to the debit side.
func (l LedgerLineItem) IsDebit() bool {
	return l.TransactionType == Debit
}

// DebitAmount returns the amount if the line is a debit, zero otherwise.
func (l LedgerLineItem) DebitAmount() decimal.Decimal {
	if l.IsDebit() {
		return l.Amount
	}
	return decimal.Zero
}

// CreditAmount returns the amount if the line is a credit, zero otherwise.
func (l LedgerLineItem) CreditAmount() decimal.Decimal {
	if l.IsDebit() {
		return decimal.Zero
	}
	return l.Amount
}
