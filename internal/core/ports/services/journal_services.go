package services

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalByID retrieves a specific journal with its line items.
	GetJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// PostJournal validates and persists a balanced journal.
	PostJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
