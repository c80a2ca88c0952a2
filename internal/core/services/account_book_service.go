package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/accountbook_service/internal/apperrors"
	"github.com/SscSPs/accountbook_service/internal/core/accountbook"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
	"github.com/SscSPs/accountbook_service/internal/dto"
	"github.com/SscSPs/accountbook_service/internal/utils/pagination"
)

const defaultLedgerPageSize = 100

// accountBookService serves account lookups and the trial balance and ledger reports.
type accountBookService struct {
	BaseService
	repo portsrepo.AccountBookRepositoryFacade
}

// NewAccountBookService creates a new account book service.
func NewAccountBookService(repo portsrepo.AccountBookRepositoryFacade) portssvc.AccountBookSvcFacade {
	return &accountBookService{repo: repo}
}

var _ portssvc.AccountBookSvcFacade = (*accountBookService)(nil)

// FindAccount retrieves a single account of the company.
func (s *accountBookService) FindAccount(ctx context.Context, companyID, accountID string) (*domain.AccountBookNode, error) {
	found, err := s.repo.FindAccountBookNodesByIDs(ctx, companyID, []string{accountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to find account",
			slog.String("company_id", companyID),
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	node, ok := found[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &node, nil
}

// ListAccounts returns the company's accounts in code order, filtered by type and forUser.
func (s *accountBookService) ListAccounts(ctx context.Context, companyID string, params dto.ListAccountsParams) ([]domain.AccountBookNode, error) {
	if params.Type != "" && !params.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, params.Type)
	}

	nodes, err := s.repo.ListAccountBookNodes(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	book := accountbook.New(companyID, time.Time{}, time.Time{})
	book.Load(nodes, nil)
	matches := book.FindNodes(func(n *domain.AccountBookNode) bool {
		if params.Type != "" && n.Type != params.Type {
			return false
		}
		return params.ForUser == nil || n.ForUser == *params.ForUser
	})

	accounts := make([]domain.AccountBookNode, len(matches))
	for i, n := range matches {
		accounts[i] = *n
		accounts[i].Parent, accounts[i].Children, accounts[i].Datas = nil, nil, nil
	}
	return accounts, nil
}

// TrialBalance generates the trial balance for the inclusive window of params.
func (s *accountBookService) TrialBalance(ctx context.Context, companyID string, params dto.ReportWindowParams) (*dto.TrialBalanceResponse, error) {
	book, err := s.buildBook(ctx, companyID, params)
	if err != nil {
		return nil, err
	}

	resp := dto.ToTrialBalanceResponse(companyID, book.TrialBalance(), params)
	if !resp.Balanced {
		s.LogWarn(ctx, "Trial balance does not balance",
			slog.String("company_id", companyID),
			slog.String("debit", resp.Totals.Ending.Debit.String()),
			slog.String("credit", resp.Totals.Ending.Credit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(resp.Rows)))
	return &resp, nil
}

// Ledger generates one page of the ledger. Rows are grouped by account in code
// order; the page token points at the last row returned.
func (s *accountBookService) Ledger(ctx context.Context, companyID string, params dto.LedgerParams) (*dto.LedgerResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	book, err := s.buildBook(ctx, companyID, params.ReportWindowParams)
	if err != nil {
		return nil, err
	}

	var rows []domain.LedgerRow
	if params.AccountID != "" {
		var ok bool
		rows, ok = book.AccountLedger(params.AccountID)
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, params.AccountID)
		}
	} else {
		rows = book.Ledger()
	}

	if params.NextToken != nil && *params.NextToken != "" {
		rows, err = rowsAfterToken(rows, *params.NextToken)
		if err != nil {
			return nil, err
		}
	}

	resp := &dto.LedgerResponse{
		CompanyID: companyID,
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
		Rows:      rows,
	}
	if len(rows) > limit {
		resp.Rows = rows[:limit]
		last := resp.Rows[limit-1]
		token := pagination.EncodeLedgerToken(last.AccountID, last.LineItemID)
		resp.NextToken = &token
	}
	if resp.Rows == nil {
		resp.Rows = []domain.LedgerRow{}
	}

	s.LogInfo(ctx, "Ledger report generated successfully",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(resp.Rows)))
	return resp, nil
}

func rowsAfterToken(rows []domain.LedgerRow, token string) ([]domain.LedgerRow, error) {
	accountID, lineItemID, err := pagination.DecodeLedgerToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	for i, r := range rows {
		if r.AccountID == accountID && r.LineItemID == lineItemID {
			return rows[i+1:], nil
		}
	}
	return nil, fmt.Errorf("%w: pagination token does not match this report", apperrors.ErrValidation)
}

// buildBook validates the window and loads the company's account book for it.
func (s *accountBookService) buildBook(ctx context.Context, companyID string, params dto.ReportWindowParams) (*accountbook.AccountBook, error) {
	if params.StartDate.After(params.EndDate) {
		return nil, fmt.Errorf("%w: startDate %s is after endDate %s", apperrors.ErrValidation,
			params.StartDate.Format(time.DateOnly), params.EndDate.Format(time.DateOnly))
	}

	book := accountbook.New(companyID, params.StartDate, params.WindowEnd())
	if err := book.Build(ctx, s.repo); err != nil {
		s.LogError(ctx, err, "Failed to build account book", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to build account book: %w", err)
	}

	for _, n := range book.Orphans() {
		s.LogWarn(ctx, "Account references a missing parent",
			slog.String("company_id", companyID),
			slog.String("account_id", n.ID),
			slog.String("parent_id", n.ParentID))
	}
	if unassigned := book.UnassignedItems(); len(unassigned) > 0 {
		s.LogWarn(ctx, "Line items reference unknown accounts",
			slog.String("company_id", companyID),
			slog.Int("count", len(unassigned)))
	}
	return book, nil
}
