package repositories

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/accountbook"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// AccountBookReader defines read operations for a company's accounts and postings.
type AccountBookReader interface {
	accountbook.Source

	// FindAccountBookNodesByIDs returns the company's accounts keyed by id.
	// Unknown ids are absent from the result.
	FindAccountBookNodesByIDs(ctx context.Context, companyID string, ids []string) (map[string]domain.AccountBookNode, error)

	// CountAccountBookNodes returns how many accounts the company has.
	CountAccountBookNodes(ctx context.Context, companyID string) (int, error)
}

// AccountBookWriter defines write operations for account book nodes.
type AccountBookWriter interface {
	// SaveAccountBookNodes bulk inserts nodes in a single transaction.
	SaveAccountBookNodes(ctx context.Context, nodes []domain.AccountBookNode) error
}

// AccountBookRepositoryFacade combines all account book repository interfaces
type AccountBookRepositoryFacade interface {
	AccountBookReader
	AccountBookWriter
}

// AccountBookRepositoryWithTx extends AccountBookRepositoryFacade with transaction capabilities
type AccountBookRepositoryWithTx interface {
	AccountBookRepositoryFacade
	TransactionManager
}
