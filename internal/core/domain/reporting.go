package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebitCredit holds independent debit and credit sums.
type DebitCredit struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// PeriodTotals is one sub-period of a trial balance row.
// Balance is the net on the account's natural side.
type PeriodTotals struct {
	Balance decimal.Decimal `json:"balance"`
	Summary DebitCredit     `json:"summary"`
}

// TrialBalanceRow represents a single account in a trial balance report.
type TrialBalanceRow struct {
	AccountID   string       `json:"accountID"`
	Code        string       `json:"code"`
	AccountName string       `json:"accountName"`
	AccountType AccountType  `json:"accountType"`
	Debit       bool         `json:"debit"`
	Level       int          `json:"level"`
	Beginning   PeriodTotals `json:"beginning"`
	Midterm     PeriodTotals `json:"midterm"`
	Ending      PeriodTotals `json:"ending"`
}

// LedgerRow is one posted line item with the running balance of its account.
type LedgerRow struct {
	AccountID    string          `json:"accountID"`
	Code         string          `json:"code"`
	AccountName  string          `json:"accountName"`
	LineItemID   string          `json:"lineItemID"`
	JournalID    string          `json:"journalID"`
	PostedAt     time.Time       `json:"postedAt"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Balance      decimal.Decimal `json:"balance"`
}
