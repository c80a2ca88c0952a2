package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/accountbook_service/internal/apperrors"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
	"github.com/SscSPs/accountbook_service/internal/dto"
	"github.com/SscSPs/accountbook_service/internal/utils/accounting"
)

// journalService validates and posts journals.
type journalService struct {
	BaseService
	journalRepo     portsrepo.JournalRepositoryFacade
	accountBookRepo portsrepo.AccountBookReader
	now             func() time.Time
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountBookRepo portsrepo.AccountBookReader) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:     journalRepo,
		accountBookRepo: accountBookRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// PostJournal validates and persists a balanced journal. Every line must post to
// an account of the same company.
func (s *journalService) PostJournal(ctx context.Context, companyID string, req dto.CreateJournalRequest, userID string) (*domain.Journal, error) {
	journalID := uuid.NewString()
	lines := make([]domain.LedgerLineItem, len(req.Lines))
	for i, l := range req.Lines {
		description := strings.TrimSpace(l.Description)
		if description == "" {
			description = req.Description
		}
		lines[i] = domain.LedgerLineItem{
			ID:              uuid.NewString(),
			CompanyID:       companyID,
			AccountID:       l.AccountID,
			JournalID:       journalID,
			Amount:          l.Amount,
			TransactionType: l.TransactionType,
			PostedAt:        req.Date,
			Description:     description,
		}
	}

	if err := accounting.ValidateJournalBalance(lines); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.checkAccounts(ctx, companyID, lines); err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:   journalID,
		CompanyID:   companyID,
		JournalDate: req.Date,
		Description: req.Description,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt: s.now(),
			CreatedBy: userID,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		s.LogError(ctx, err, "Failed to save journal",
			slog.String("company_id", companyID),
			slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	s.LogInfo(ctx, "Journal posted",
		slog.String("company_id", companyID),
		slog.String("journal_id", journalID),
		slog.Int("lines", len(lines)))
	return &journal, nil
}

func (s *journalService) checkAccounts(ctx context.Context, companyID string, lines []domain.LedgerLineItem) error {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		if _, ok := seen[l.AccountID]; ok {
			continue
		}
		seen[l.AccountID] = struct{}{}
		ids = append(ids, l.AccountID)
	}

	found, err := s.accountBookRepo.FindAccountBookNodesByIDs(ctx, companyID, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up journal accounts", slog.String("company_id", companyID))
		return fmt.Errorf("failed to look up accounts: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: account %s does not exist in company %s", apperrors.ErrValidation, id, companyID)
		}
	}
	return nil
}

// GetJournalByID retrieves a journal with its line items.
func (s *journalService) GetJournalByID(ctx context.Context, companyID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, companyID, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal %s: %w", journalID, err)
	}
	return journal, nil
}
