package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	"github.com/SscSPs/accountbook_service/internal/models"
	"github.com/SscSPs/accountbook_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountBookNodeColumns = `id, company_id, system, code, name, COALESCE(c_name, '') AS c_name, type,
	debit, liquidity, for_user, level, parent_id`

var accountBookNodeCopyColumns = []string{
	"id", "company_id", "system", "code", "name", "c_name", "type",
	"debit", "liquidity", "for_user", "level", "parent_id",
}

type PgxAccountBookRepository struct {
	BaseRepository
}

func newPgxAccountBookRepository(pool *pgxpool.Pool) portsrepo.AccountBookRepositoryWithTx {
	return &PgxAccountBookRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountBookRepositoryWithTx = (*PgxAccountBookRepository)(nil)

// ListAccountBookNodes returns every account of the company ordered by code.
func (r *PgxAccountBookRepository) ListAccountBookNodes(ctx context.Context, companyID string) ([]domain.AccountBookNode, error) {
	query := `SELECT ` + accountBookNodeColumns + `
		FROM account_book_nodes
		WHERE company_id = $1
		ORDER BY code;`
	return r.queryNodes(ctx, query, "list accounts of company "+companyID, companyID)
}

// FindAccountBookNodesByIDs returns the company's accounts among ids, keyed by id.
func (r *PgxAccountBookRepository) FindAccountBookNodesByIDs(ctx context.Context, companyID string, ids []string) (map[string]domain.AccountBookNode, error) {
	found := make(map[string]domain.AccountBookNode, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	query := `SELECT ` + accountBookNodeColumns + `
		FROM account_book_nodes
		WHERE company_id = $1 AND id = ANY($2);`
	nodes, err := r.queryNodes(ctx, query, "find accounts of company "+companyID, companyID, ids)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		found[n.ID] = n
	}
	return found, nil
}

func (r *PgxAccountBookRepository) queryNodes(ctx context.Context, query, what string, args ...any) ([]domain.AccountBookNode, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "%s", what)
	}
	modelNodes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AccountBookNode])
	if err != nil {
		return nil, translateError(err, "%s", what)
	}
	return mapping.ToDomainAccountBookNodeSlice(modelNodes), nil
}

// CountAccountBookNodes returns how many accounts the company has.
func (r *PgxAccountBookRepository) CountAccountBookNodes(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM account_book_nodes WHERE company_id = $1;`, companyID).Scan(&count)
	if err != nil {
		return 0, translateError(err, "count accounts of company %s", companyID)
	}
	return count, nil
}

// SaveAccountBookNodes bulk loads nodes with COPY inside a transaction.
func (r *PgxAccountBookRepository) SaveAccountBookNodes(ctx context.Context, nodes []domain.AccountBookNode) error {
	if len(nodes) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"account_book_nodes"},
		accountBookNodeCopyColumns,
		pgx.CopyFromSlice(len(nodes), func(i int) ([]any, error) {
			m := mapping.ToModelAccountBookNode(nodes[i])
			return []any{
				m.ID, m.CompanyID, m.System, m.Code, m.Name, m.CName, string(m.Type),
				m.Debit, m.Liquidity, m.ForUser, m.Level, m.ParentID,
			}, nil
		}),
	)
	if err != nil {
		return translateError(err, "copy %d accounts of company %s", len(nodes), nodes[0].CompanyID)
	}

	return r.Commit(ctx, tx)
}

// ListLedgerLineItems returns the company's line items posted at or before until,
// in posting order.
func (r *PgxAccountBookRepository) ListLedgerLineItems(ctx context.Context, companyID string, until time.Time) ([]domain.LedgerLineItem, error) {
	query := `
		SELECT id, company_id, journal_id, account_id, amount, transaction_type, posted_at,
		       COALESCE(description, '') AS description
		FROM ledger_line_items
		WHERE company_id = $1 AND posted_at <= $2
		ORDER BY posted_at, id;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, until)
	if err != nil {
		return nil, translateError(err, "list line items of company %s", companyID)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerLineItem])
	if err != nil {
		return nil, translateError(err, "scan line items of company %s", companyID)
	}
	return mapping.ToDomainLedgerLineItemSlice(items), nil
}
