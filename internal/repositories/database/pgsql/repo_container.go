package pgsql

import (
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ChartRepo:       newPgxChartRepository(dbPool),
		AccountBookRepo: newPgxAccountBookRepository(dbPool),
		JournalRepo:     newPgxJournalRepository(dbPool),
	}
}
