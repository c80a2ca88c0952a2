package services

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/dto"
)

// AccountReaderSvc defines read operations for a company's accounts.
type AccountReaderSvc interface {
	// FindAccount retrieves a single account of the company.
	FindAccount(ctx context.Context, companyID, accountID string) (*domain.AccountBookNode, error)

	// ListAccounts returns the company's accounts in code order, optionally filtered.
	ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.AccountBookNode, error)
}

// ReportingSvc defines the account book reports.
type ReportingSvc interface {
	// TrialBalance generates the trial balance for an inclusive date window.
	TrialBalance(ctx context.Context, companyID string, params dto.ReportWindowParams) (*dto.TrialBalanceResponse, error)

	// Ledger generates one page of the ledger for an inclusive date window.
	Ledger(ctx context.Context, companyID string, params dto.LedgerParams) (*dto.LedgerResponse, error)
}

// AccountBookSvcFacade combines all account book service interfaces
type AccountBookSvcFacade interface {
	AccountReaderSvc
	ReportingSvc
}
