package accountbook

import (
	"slices"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Ledger returns the window's line items grouped by account (code order) and
// chronological within each account, with a running balance per account.
func (b *AccountBook) Ledger() []domain.LedgerRow {
	var rows []domain.LedgerRow
	for _, n := range b.Nodes() {
		rows = append(rows, b.accountLedger(n)...)
	}
	return rows
}

// AccountLedger returns the ledger rows of a single account. The boolean is
// false when the account is not in the book.
func (b *AccountBook) AccountLedger(id string) ([]domain.LedgerRow, bool) {
	n := b.FindNode(id)
	if n == nil {
		return nil, false
	}
	return b.accountLedger(n), true
}

// OpeningBalance is the natural-side balance of an account from items posted
// before the window start.
func (b *AccountBook) OpeningBalance(n *domain.AccountBookNode) decimal.Decimal {
	balance := decimal.Zero
	for _, item := range n.Datas {
		if item.PostedAt.Before(b.start) {
			balance = balance.Add(accounting.SignedAmount(item, n.Debit))
		}
	}
	return balance
}

func (b *AccountBook) accountLedger(n *domain.AccountBookNode) []domain.LedgerRow {
	var window []domain.LedgerLineItem
	for _, item := range n.Datas {
		if !item.PostedAt.Before(b.start) && !item.PostedAt.After(b.end) {
			window = append(window, item)
		}
	}
	if len(window) == 0 {
		return nil
	}
	slices.SortStableFunc(window, func(x, y domain.LedgerLineItem) int {
		return x.PostedAt.Compare(y.PostedAt)
	})

	balance := b.OpeningBalance(n)
	rows := make([]domain.LedgerRow, 0, len(window))
	for _, item := range window {
		balance = balance.Add(accounting.SignedAmount(item, n.Debit))
		rows = append(rows, domain.LedgerRow{
			AccountID:    n.ID,
			Code:         n.Code,
			AccountName:  n.Name,
			LineItemID:   item.ID,
			JournalID:    item.JournalID,
			PostedAt:     item.PostedAt,
			Description:  item.Description,
			Amount:       item.Amount,
			DebitAmount:  item.DebitAmount(),
			CreditAmount: item.CreditAmount(),
			Balance:      balance,
		})
	}
	return rows
}
