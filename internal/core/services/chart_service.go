package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/accountbook_service/internal/apperrors"
	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accountbook_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
)

// chartService turns standard charts of accounts into classified seed data.
type chartService struct {
	BaseService
	chartRepo       portsrepo.ChartRepositoryFacade
	accountBookRepo portsrepo.AccountBookRepositoryFacade
	defaultStrategy chart.Strategy
	newID           func() string
}

// ChartServiceOption is a functional option for configuring the chart service
type ChartServiceOption func(*chartService)

// WithDefaultStrategy sets the traversal used when a caller does not pick one.
func WithDefaultStrategy(strategy chart.Strategy) ChartServiceOption {
	return func(s *chartService) {
		s.defaultStrategy = strategy
	}
}

// WithIDGenerator replaces the uuid generator used for new account ids.
func WithIDGenerator(newID func() string) ChartServiceOption {
	return func(s *chartService) {
		s.newID = newID
	}
}

// NewChartService creates a new chart service with the provided options
func NewChartService(chartRepo portsrepo.ChartRepositoryFacade, accountBookRepo portsrepo.AccountBookRepositoryFacade, options ...ChartServiceOption) portssvc.ChartSvcFacade {
	svc := &chartService{
		chartRepo:       chartRepo,
		accountBookRepo: accountBookRepo,
		defaultStrategy: chart.BreadthFirst,
		newID:           uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// ListChartSystems returns the accounting systems a chart is available for.
func (s *chartService) ListChartSystems(ctx context.Context) ([]string, error) {
	systems, err := s.chartRepo.ListChartSystems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chart systems")
		return nil, fmt.Errorf("failed to list chart systems: %w", err)
	}
	return systems, nil
}

// GenerateSeed flattens the chart of system. Duplicate codes are reported in the
// result and logged, never treated as failures.
func (s *chartService) GenerateSeed(ctx context.Context, system string, strategy chart.Strategy) (*chart.FlattenResult, error) {
	system = strings.TrimSpace(system)
	if system == "" {
		return nil, fmt.Errorf("%w: accounting system is required", apperrors.ErrValidation)
	}
	if strategy == "" {
		strategy = s.defaultStrategy
	}

	root, err := s.chartRepo.LoadChartForest(ctx, system)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart", slog.String("system", system))
		return nil, fmt.Errorf("failed to load chart for %s: %w", system, err)
	}
	if root == nil || !root.HasChildren() {
		return nil, fmt.Errorf("%w: no chart of accounts for system %s", apperrors.ErrNotFound, system)
	}

	res := chart.Flatten(root, strategy)
	for _, dup := range res.Duplicates {
		s.LogWarn(ctx, "Duplicate account code in chart, keeping first occurrence",
			slog.String("system", system),
			slog.String("code", dup.Code),
			slog.String("name", dup.Name),
			slog.String("parent_code", dup.ParentCode))
	}

	s.LogInfo(ctx, "Chart seed generated",
		slog.String("system", system),
		slog.String("strategy", string(strategy)),
		slog.Int("elements", len(res.Elements)),
		slog.Int("duplicates", len(res.Duplicates)))
	return &res, nil
}

// SeedCompany creates the company's account book from the chart of system.
func (s *chartService) SeedCompany(ctx context.Context, companyID, system string, strategy chart.Strategy) ([]domain.AccountBookNode, error) {
	if strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}

	existing, err := s.accountBookRepo.CountAccountBookNodes(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: company %s already has %d accounts", apperrors.ErrDuplicate, companyID, existing)
	}

	res, err := s.GenerateSeed(ctx, system, strategy)
	if err != nil {
		return nil, err
	}

	nodes := s.toAccountBookNodes(companyID, strings.TrimSpace(system), res.Elements)
	if err := s.accountBookRepo.SaveAccountBookNodes(ctx, nodes); err != nil {
		s.LogError(ctx, err, "Failed to save seeded accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to save seeded accounts: %w", err)
	}

	s.LogInfo(ctx, "Company account book seeded",
		slog.String("company_id", companyID),
		slog.String("system", system),
		slog.Int("accounts", len(nodes)))
	return nodes, nil
}

// toAccountBookNodes assigns ids and resolves parent ids by code. Elements arrive
// parents first, and first-generation accounts are their own parents.
func (s *chartService) toAccountBookNodes(companyID, system string, elements []domain.AccountElement) []domain.AccountBookNode {
	idByCode := make(map[string]string, len(elements))
	for _, el := range elements {
		idByCode[el.Code] = s.newID()
	}

	nodes := make([]domain.AccountBookNode, 0, len(elements))
	for _, el := range elements {
		id := idByCode[el.Code]
		parentID, ok := idByCode[el.ParentCode]
		if !ok {
			parentID = id
		}
		nodes = append(nodes, domain.AccountBookNode{
			ID:        id,
			CompanyID: companyID,
			System:    system,
			Code:      el.Code,
			Name:      el.Name,
			CName:     el.CName,
			Type:      el.Type,
			Debit:     el.Debit,
			Liquidity: el.Liquidity,
			ForUser:   el.ForUser,
			Level:     el.Level,
			ParentID:  parentID,
		})
	}
	return nodes
}
