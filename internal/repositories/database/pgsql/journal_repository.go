package pgsql

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	"github.com/SscSPs/accountbook_service/internal/models"
	"github.com/SscSPs/accountbook_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournal inserts the journal header and its line items in one database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelJournal := mapping.ToModelJournal(journal)
	_, err = tx.Exec(ctx, `
		INSERT INTO journals (journal_id, company_id, journal_date, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		modelJournal.JournalID,
		modelJournal.CompanyID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
	)
	if err != nil {
		return translateError(err, "insert journal %s", modelJournal.JournalID)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO ledger_line_items (id, company_id, journal_id, account_id, amount, transaction_type, posted_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, line := range journal.Lines {
		m := mapping.ToModelLedgerLineItem(line)
		batch.Queue(lineQuery, m.ID, m.CompanyID, m.JournalID, m.AccountID, m.Amount, string(m.TransactionType), m.PostedAt, m.Description)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "insert line items of journal %s", modelJournal.JournalID)
	}

	return r.Commit(ctx, tx)
}

// FindJournalByID retrieves a journal header and its line items.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	var j models.Journal
	err := r.Pool.QueryRow(ctx, `
		SELECT journal_id, company_id, journal_date, COALESCE(description, ''), created_at, created_by
		FROM journals
		WHERE company_id = $1 AND journal_id = $2;`,
		companyID, journalID,
	).Scan(&j.JournalID, &j.CompanyID, &j.JournalDate, &j.Description, &j.CreatedAt, &j.CreatedBy)
	if err != nil {
		return nil, translateError(err, "find journal %s", journalID)
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT id, company_id, journal_id, account_id, amount, transaction_type, posted_at,
		       COALESCE(description, '') AS description
		FROM ledger_line_items
		WHERE journal_id = $1
		ORDER BY id;`, journalID)
	if err != nil {
		return nil, translateError(err, "list line items of journal %s", journalID)
	}
	lines, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerLineItem])
	if err != nil {
		return nil, translateError(err, "scan line items of journal %s", journalID)
	}

	journal := mapping.ToDomainJournal(j, lines)
	return &journal, nil
}
