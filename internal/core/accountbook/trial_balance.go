package accountbook

import (
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TrialBalanceTotals are the column sums of a trial balance.
type TrialBalanceTotals struct {
	Beginning domain.DebitCredit `json:"beginning"`
	Midterm   domain.DebitCredit `json:"midterm"`
	Ending    domain.DebitCredit `json:"ending"`
}

// Balanced reports whether ending debits equal ending credits.
func (t TrialBalanceTotals) Balanced() bool {
	return t.Ending.Debit.Equal(t.Ending.Credit)
}

func zeroSums() domain.DebitCredit {
	return domain.DebitCredit{Debit: decimal.Zero, Credit: decimal.Zero}
}

func periodTotals(sums domain.DebitCredit, debitNatural bool) domain.PeriodTotals {
	return domain.PeriodTotals{
		Balance: accounting.NaturalBalance(sums, debitNatural),
		Summary: sums,
	}
}

// TrialBalance returns one row per account, ordered by code. Line items before
// the window start are beginning, items inside the window are midterm, and
// ending is their per-side sum. Items after the window end are ignored.
func (b *AccountBook) TrialBalance() []domain.TrialBalanceRow {
	nodes := b.Nodes()
	rows := make([]domain.TrialBalanceRow, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, b.trialBalanceRow(n))
	}
	return rows
}

func (b *AccountBook) trialBalanceRow(n *domain.AccountBookNode) domain.TrialBalanceRow {
	beginning, midterm := zeroSums(), zeroSums()
	for _, item := range n.Datas {
		switch {
		case item.PostedAt.Before(b.start):
			beginning = accounting.AddLine(beginning, item)
		case !item.PostedAt.After(b.end):
			midterm = accounting.AddLine(midterm, item)
		}
	}
	ending := accounting.AddSums(beginning, midterm)

	return domain.TrialBalanceRow{
		AccountID:   n.ID,
		Code:        n.Code,
		AccountName: n.Name,
		AccountType: n.Type,
		Debit:       n.Debit,
		Level:       n.Level,
		Beginning:   periodTotals(beginning, n.Debit),
		Midterm:     periodTotals(midterm, n.Debit),
		Ending:      periodTotals(ending, n.Debit),
	}
}

// SumTrialBalance adds up the summary columns of rows.
func SumTrialBalance(rows []domain.TrialBalanceRow) TrialBalanceTotals {
	totals := TrialBalanceTotals{Beginning: zeroSums(), Midterm: zeroSums(), Ending: zeroSums()}
	for _, r := range rows {
		totals.Beginning = accounting.AddSums(totals.Beginning, r.Beginning.Summary)
		totals.Midterm = accounting.AddSums(totals.Midterm, r.Midterm.Summary)
		totals.Ending = accounting.AddSums(totals.Ending, r.Ending.Summary)
	}
	return totals
}
