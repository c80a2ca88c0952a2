// Package accountbook rebuilds a company's account tree from persisted rows and
// derives trial balance and ledger views over a date window.
package accountbook

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Source supplies the persisted rows an AccountBook is built from.
type Source interface {
	// ListAccountBookNodes returns every account of the company.
	ListAccountBookNodes(ctx context.Context, companyID string) ([]domain.AccountBookNode, error)
	// ListLedgerLineItems returns the company's line items posted at or before until.
	ListLedgerLineItems(ctx context.Context, companyID string, until time.Time) ([]domain.LedgerLineItem, error)
}

// AccountBook is a per-request, read-only view of one company's accounts and postings.
// It is not safe for concurrent mutation and is not meant to be shared between requests.
type AccountBook struct {
	companyID string
	start     time.Time
	end       time.Time

	nodes      map[string]*domain.AccountBookNode
	unassigned []domain.LedgerLineItem
}

// New creates an empty account book for the inclusive window [start, end].
func New(companyID string, start, end time.Time) *AccountBook {
	return &AccountBook{
		companyID: companyID,
		start:     start,
		end:       end,
		nodes:     make(map[string]*domain.AccountBookNode),
	}
}

// CompanyID returns the company the book was built for.
func (b *AccountBook) CompanyID() string { return b.companyID }

// Window returns the inclusive reporting window.
func (b *AccountBook) Window() (time.Time, time.Time) { return b.start, b.end }

// Build fetches node rows and line items concurrently and links them into a tree.
// Collaborator errors are returned as-is.
func (b *AccountBook) Build(ctx context.Context, src Source) error {
	var (
		nodes []domain.AccountBookNode
		items []domain.LedgerLineItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		nodes, err = src.ListAccountBookNodes(gctx, b.companyID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = src.ListLedgerLineItems(gctx, b.companyID, b.end)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	b.Load(nodes, items)
	return nil
}

// Load replaces the book's contents with the given rows.
// A node whose parent id is unknown becomes an orphan with a nil Parent.
// Line items for unknown accounts are kept aside, see UnassignedItems.
func (b *AccountBook) Load(nodes []domain.AccountBookNode, items []domain.LedgerLineItem) {
	b.nodes = make(map[string]*domain.AccountBookNode, len(nodes))
	b.unassigned = nil

	for i := range nodes {
		n := nodes[i]
		n.Parent = nil
		n.Children = nil
		n.Datas = nil
		b.nodes[n.ID] = &n
	}

	for _, n := range b.Nodes() {
		if n.IsRoot() {
			continue
		}
		parent, ok := b.nodes[n.ParentID]
		if !ok {
			continue
		}
		n.Parent = parent
		parent.Children = append(parent.Children, n)
	}

	for _, item := range items {
		n, ok := b.nodes[item.AccountID]
		if !ok {
			b.unassigned = append(b.unassigned, item)
			continue
		}
		n.Datas = append(n.Datas, item)
	}
}

// FindNode returns the node with the given id, or nil.
func (b *AccountBook) FindNode(id string) *domain.AccountBookNode {
	return b.nodes[id]
}

// FindNodes returns every node matching pred, ordered by code.
func (b *AccountBook) FindNodes(pred func(*domain.AccountBookNode) bool) []*domain.AccountBookNode {
	var out []*domain.AccountBookNode
	for _, n := range b.Nodes() {
		if pred(n) {
			out = append(out, n)
		}
	}
	return out
}

// DeleteNode removes a node from the book. Unknown ids are ignored.
// The node is detached from its parent and its children become orphans.
func (b *AccountBook) DeleteNode(id string) {
	n, ok := b.nodes[id]
	if !ok {
		return
	}
	delete(b.nodes, id)

	if n.Parent != nil {
		n.Parent.Children = slices.DeleteFunc(n.Parent.Children, func(c *domain.AccountBookNode) bool {
			return c.ID == id
		})
		n.Parent = nil
	}
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
}

// Len returns the number of accounts in the book.
func (b *AccountBook) Len() int { return len(b.nodes) }

// Nodes returns all nodes ordered by code, then id.
func (b *AccountBook) Nodes() []*domain.AccountBookNode {
	out := make([]*domain.AccountBookNode, 0, len(b.nodes))
	for _, n := range b.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(x, y *domain.AccountBookNode) int {
		return cmp.Or(cmp.Compare(x.Code, y.Code), cmp.Compare(x.ID, y.ID))
	})
	return out
}

// Roots returns the nodes that declare themselves as forest roots.
func (b *AccountBook) Roots() []*domain.AccountBookNode {
	return b.FindNodes(func(n *domain.AccountBookNode) bool { return n.IsRoot() })
}

// Orphans returns non-root nodes whose parent could not be resolved.
// Callers that require a fully rooted tree can reject the book when this is non-empty.
func (b *AccountBook) Orphans() []*domain.AccountBookNode {
	return b.FindNodes(func(n *domain.AccountBookNode) bool { return !n.IsRoot() && n.Parent == nil })
}

// UnassignedItems returns line items that referenced an account not in the book.
func (b *AccountBook) UnassignedItems() []domain.LedgerLineItem {
	return b.unassigned
}
