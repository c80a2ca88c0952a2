package accountbook

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

var (
	windowStart = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 9, 0, 0, 0, time.UTC)
}

func node(id, parentID, code, name string, typ domain.AccountType, debit bool) domain.AccountBookNode {
	return domain.AccountBookNode{
		ID: id, CompanyID: companyID, System: "IFRS", Code: code, Name: name,
		Type: typ, Debit: debit, Liquidity: true, ParentID: parentID,
	}
}

func fixtureNodes() []domain.AccountBookNode {
	return []domain.AccountBookNode{
		node("exp", "exp", "6000", "Expenses", domain.Expense, true),
		node("cash", "assets", "1100", "Cash", domain.Asset, true),
		node("assets", "assets", "1000", "Assets", domain.Asset, true),
		node("liab", "liab", "2000", "Current liability", domain.Liability, false),
		node("equity", "equity", "3000", "Equity", domain.Equity, false),
		node("rev", "rev", "4000", "Revenue", domain.Revenue, false),
	}
}

// journal returns a balanced two-line posting.
func journal(id string, at time.Time, debitAcct, creditAcct string, amount int64) []domain.LedgerLineItem {
	amt := decimal.NewFromInt(amount)
	return []domain.LedgerLineItem{
		{ID: id + "-d", CompanyID: companyID, JournalID: id, AccountID: debitAcct, Amount: amt, TransactionType: domain.Debit, PostedAt: at},
		{ID: id + "-c", CompanyID: companyID, JournalID: id, AccountID: creditAcct, Amount: amt, TransactionType: domain.Credit, PostedAt: at},
	}
}

func fixtureItems() []domain.LedgerLineItem {
	var items []domain.LedgerLineItem
	items = append(items, journal("j1", day(time.January, 15), "cash", "equity", 1000)...)
	items = append(items, journal("j2", day(time.February, 10), "cash", "rev", 500)...)
	items = append(items, journal("j3", day(time.February, 5), "exp", "cash", 200)...)
	items = append(items, journal("j4", day(time.March, 10), "cash", "rev", 50)...)
	items = append(items, journal("j5", day(time.February, 20), "cash", "liab", 300)...)
	return items
}

func fixtureBook() *AccountBook {
	b := New(companyID, windowStart, windowEnd)
	b.Load(fixtureNodes(), fixtureItems())
	return b
}

type stubSource struct {
	nodes    []domain.AccountBookNode
	items    []domain.LedgerLineItem
	nodesErr error
	itemsErr error
	until    time.Time
}

func (s *stubSource) ListAccountBookNodes(_ context.Context, _ string) ([]domain.AccountBookNode, error) {
	return s.nodes, s.nodesErr
}

func (s *stubSource) ListLedgerLineItems(_ context.Context, _ string, until time.Time) ([]domain.LedgerLineItem, error) {
	s.until = until
	return s.items, s.itemsErr
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDec(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s want %d got %s", fmt.Sprint(msgAndArgs...), want, got.String())
}

func TestBuild(t *testing.T) {
	src := &stubSource{nodes: fixtureNodes(), items: fixtureItems()}
	b := New(companyID, windowStart, windowEnd)

	require.NoError(t, b.Build(context.Background(), src))
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, windowEnd, src.until, "line items are fetched up to the window end")
	assert.Equal(t, companyID, b.CompanyID())
}

func TestBuild_PropagatesSourceErrors(t *testing.T) {
	readErr := errors.New("connection reset")

	b := New(companyID, windowStart, windowEnd)
	err := b.Build(context.Background(), &stubSource{nodesErr: readErr})
	assert.ErrorIs(t, err, readErr)

	err = b.Build(context.Background(), &stubSource{nodes: fixtureNodes(), itemsErr: readErr})
	assert.ErrorIs(t, err, readErr)
}

func TestLoad_LinksParentsAndChildren(t *testing.T) {
	b := fixtureBook()

	assets := b.FindNode("assets")
	cash := b.FindNode("cash")
	require.NotNil(t, assets)
	require.NotNil(t, cash)

	assert.Nil(t, assets.Parent)
	assert.Same(t, assets, cash.Parent)
	require.Len(t, assets.Children, 1)
	assert.Same(t, cash, assets.Children[0])
	assert.Len(t, cash.Datas, 5)
}

func TestLoad_RootIdentity(t *testing.T) {
	b := fixtureBook()
	for _, n := range b.Nodes() {
		assert.Equal(t, n.ParentID == n.ID, n.Parent == nil, "node %s", n.ID)
	}
	assert.Len(t, b.Roots(), 5)
	assert.Empty(t, b.Orphans())
}

func TestLoad_OrphansAndUnassignedItems(t *testing.T) {
	nodes := append(fixtureNodes(), node("lost", "missing-parent", "9000", "Suspense", domain.Other, true))
	items := append(fixtureItems(), journal("j9", day(time.February, 2), "ghost", "cash", 10)...)

	b := New(companyID, windowStart, windowEnd)
	b.Load(nodes, items)

	lost := b.FindNode("lost")
	require.NotNil(t, lost)
	assert.Nil(t, lost.Parent)
	orphans := b.Orphans()
	require.Len(t, orphans, 1)
	assert.Equal(t, "lost", orphans[0].ID)

	unassigned := b.UnassignedItems()
	require.Len(t, unassigned, 1)
	assert.Equal(t, "ghost", unassigned[0].AccountID)

	// Aggregation still completes.
	assert.Len(t, b.TrialBalance(), 7)
}

func TestLoad_DoesNotAliasInput(t *testing.T) {
	nodes := fixtureNodes()
	b := New(companyID, windowStart, windowEnd)
	b.Load(nodes, nil)

	nodes[1].Name = "mutated"
	assert.Equal(t, "Cash", b.FindNode("cash").Name)
}

func TestFindNode_Missing(t *testing.T) {
	b := fixtureBook()
	assert.Nil(t, b.FindNode("nope"))
	assert.Nil(t, New(companyID, windowStart, windowEnd).FindNode("cash"))
}

func TestFindNodes(t *testing.T) {
	b := fixtureBook()

	assets := b.FindNodes(func(n *domain.AccountBookNode) bool { return n.Type == domain.Asset })
	require.Len(t, assets, 2)
	assert.Equal(t, "1000", assets[0].Code)
	assert.Equal(t, "1100", assets[1].Code)

	none := b.FindNodes(func(n *domain.AccountBookNode) bool { return n.Type == domain.CashFlow })
	assert.Empty(t, none)
}

func TestDeleteNode(t *testing.T) {
	b := fixtureBook()

	b.DeleteNode("cash")
	assert.Nil(t, b.FindNode("cash"))
	assert.Empty(t, b.FindNode("assets").Children)
	assert.Equal(t, 5, b.Len())

	assert.NotPanics(t, func() { b.DeleteNode("does-not-exist") })
	assert.Equal(t, 5, b.Len())
}

func TestDeleteNode_OrphansChildren(t *testing.T) {
	b := fixtureBook()
	b.DeleteNode("assets")

	cash := b.FindNode("cash")
	require.NotNil(t, cash)
	assert.Nil(t, cash.Parent)
	require.Len(t, b.Orphans(), 1)
}

func TestTrialBalance(t *testing.T) {
	rows := fixtureBook().TrialBalance()
	require.Len(t, rows, 6)

	byCode := make(map[string]domain.TrialBalanceRow)
	for _, r := range rows {
		byCode[r.Code] = r
	}
	assert.Equal(t, "1000", rows[0].Code, "rows are ordered by code")

	cash := byCode["1100"]
	assertDec(t, 1000, cash.Beginning.Summary.Debit)
	assertDec(t, 0, cash.Beginning.Summary.Credit)
	assertDec(t, 1000, cash.Beginning.Balance)
	assertDec(t, 800, cash.Midterm.Summary.Debit)
	assertDec(t, 200, cash.Midterm.Summary.Credit)
	assertDec(t, 600, cash.Midterm.Balance)
	assertDec(t, 1800, cash.Ending.Summary.Debit)
	assertDec(t, 200, cash.Ending.Summary.Credit)
	assertDec(t, 1600, cash.Ending.Balance, "March posting is outside the window")

	equity := byCode["3000"]
	assertDec(t, 1000, equity.Beginning.Summary.Credit)
	assertDec(t, 1000, equity.Beginning.Balance, "credit-natured balance is positive")
	assertDec(t, 0, equity.Midterm.Balance)
	assertDec(t, 1000, equity.Ending.Balance)

	rev := byCode["4000"]
	assertDec(t, 500, rev.Midterm.Summary.Credit)
	assertDec(t, 500, rev.Ending.Balance)

	exp := byCode["6000"]
	assertDec(t, 200, exp.Ending.Summary.Debit)
	assertDec(t, 200, exp.Ending.Balance)

	empty := byCode["1000"]
	assertDec(t, 0, empty.Ending.Summary.Debit)
	assertDec(t, 0, empty.Ending.Summary.Credit)
}

func TestTrialBalance_Balances(t *testing.T) {
	totals := SumTrialBalance(fixtureBook().TrialBalance())
	assertDec(t, 2000, totals.Ending.Debit)
	assertDec(t, 2000, totals.Ending.Credit)
	assert.True(t, totals.Balanced())
	assert.True(t, totals.Beginning.Debit.Equal(totals.Beginning.Credit))
	assert.True(t, totals.Midterm.Debit.Equal(totals.Midterm.Credit))
}

func TestTrialBalance_RandomBalancedLedgers(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	ids := []string{"assets", "cash", "liab", "equity", "rev", "exp"}

	for round := 0; round < 25; round++ {
		var items []domain.LedgerLineItem
		for j := 0; j < 40; j++ {
			debitAcct := ids[r.Intn(len(ids))]
			creditAcct := ids[r.Intn(len(ids))]
			at := time.Date(2024, time.Month(1+r.Intn(4)), 1+r.Intn(28), 0, 0, 0, 0, time.UTC)
			items = append(items, journal("j", at, debitAcct, creditAcct, int64(1+r.Intn(10000)))...)
		}

		b := New(companyID, windowStart, windowEnd)
		b.Load(fixtureNodes(), items)
		assert.True(t, SumTrialBalance(b.TrialBalance()).Balanced(), "round %d", round)
	}
}

func TestLedger(t *testing.T) {
	rows := fixtureBook().Ledger()
	require.Len(t, rows, 6)

	cash := rows[:3]
	for _, r := range cash {
		assert.Equal(t, "cash", r.AccountID)
	}
	assert.Equal(t, "j3", cash[0].JournalID, "rows are chronological")
	assert.Equal(t, "j2", cash[1].JournalID)
	assert.Equal(t, "j5", cash[2].JournalID)

	assertDec(t, 200, cash[0].CreditAmount)
	assertDec(t, 0, cash[0].DebitAmount)
	assertDec(t, 200, cash[0].Amount)
	assertDec(t, 800, cash[0].Balance, "running balance starts from the opening balance")
	assertDec(t, 1300, cash[1].Balance)
	assertDec(t, 1600, cash[2].Balance)

	assert.Equal(t, "liab", rows[3].AccountID)
	assertDec(t, 300, rows[3].Balance)
	assert.Equal(t, "rev", rows[4].AccountID)
	assertDec(t, 500, rows[4].Balance)
	assert.Equal(t, "exp", rows[5].AccountID)
	assertDec(t, 200, rows[5].Balance)
}

func TestLedger_DebitToCreditAccountDecreases(t *testing.T) {
	b := New(companyID, windowStart, windowEnd)
	items := append(journal("a", day(time.February, 1), "cash", "rev", 100),
		journal("b", day(time.February, 3), "rev", "cash", 30)...)
	b.Load(fixtureNodes(), items)

	rows, ok := b.AccountLedger("rev")
	require.True(t, ok)
	require.Len(t, rows, 2)
	assertDec(t, 100, rows[0].Balance)
	assertDec(t, 70, rows[1].Balance)
	assertDec(t, 30, rows[1].DebitAmount)
}

func TestLedger_StableForSameTimestamp(t *testing.T) {
	at := day(time.February, 7)
	b := New(companyID, windowStart, windowEnd)
	items := append(journal("first", at, "cash", "rev", 1), journal("second", at, "cash", "rev", 2)...)
	b.Load(fixtureNodes(), items)

	rows, ok := b.AccountLedger("cash")
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, "first", rows[0].JournalID)
	assert.Equal(t, "second", rows[1].JournalID)

	_, ok = b.AccountLedger("nope")
	assert.False(t, ok)
}

func TestOpeningBalance(t *testing.T) {
	b := fixtureBook()
	assertDec(t, 1000, b.OpeningBalance(b.FindNode("cash")))
	assertDec(t, 1000, b.OpeningBalance(b.FindNode("equity")))
	assertDec(t, 0, b.OpeningBalance(b.FindNode("rev")))
}
