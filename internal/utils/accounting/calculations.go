package accounting

import (
	"fmt"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the sign a line item has on an account's running balance.
// Postings on the account's natural side increase the balance, the opposite side decreases it.
//
//	DEBIT  to a debit-natured account  -> +
//	CREDIT to a debit-natured account  -> -
//	CREDIT to a credit-natured account -> +
//	DEBIT  to a credit-natured account -> -
func SignedAmount(line domain.LedgerLineItem, debitNatural bool) decimal.Decimal {
	if line.IsDebit() == debitNatural {
		return line.Amount
	}
	return line.Amount.Neg()
}

// NaturalBalance nets debit and credit sums onto the account's natural side.
func NaturalBalance(sums domain.DebitCredit, debitNatural bool) decimal.Decimal {
	if debitNatural {
		return sums.Debit.Sub(sums.Credit)
	}
	return sums.Credit.Sub(sums.Debit)
}

// AddLine adds a line item to the matching side of sums.
func AddLine(sums domain.DebitCredit, line domain.LedgerLineItem) domain.DebitCredit {
	return domain.DebitCredit{
		Debit:  sums.Debit.Add(line.DebitAmount()),
		Credit: sums.Credit.Add(line.CreditAmount()),
	}
}

// AddSums adds two debit/credit pairs side by side.
func AddSums(a, b domain.DebitCredit) domain.DebitCredit {
	return domain.DebitCredit{
		Debit:  a.Debit.Add(b.Debit),
		Credit: a.Credit.Add(b.Credit),
	}
}

// ValidateJournalBalance checks that a journal's lines are well formed and that
// total debits equal total credits.
func ValidateJournalBalance(lines []domain.LedgerLineItem) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal must have at least two line items")
	}

	totals := domain.DebitCredit{Debit: decimal.Zero, Credit: decimal.Zero}
	for i, line := range lines {
		if !line.Amount.IsPositive() {
			return fmt.Errorf("line %d: amount must be positive, got %s", i+1, line.Amount.String())
		}
		if line.TransactionType != domain.Debit && line.TransactionType != domain.Credit {
			return fmt.Errorf("line %d: unknown transaction type %q", i+1, line.TransactionType)
		}
		totals = AddLine(totals, line)
	}

	if !totals.Debit.Equal(totals.Credit) {
		return fmt.Errorf("journal does not balance: debits %s != credits %s", totals.Debit.StringFixed(2), totals.Credit.StringFixed(2))
	}
	return nil
}
