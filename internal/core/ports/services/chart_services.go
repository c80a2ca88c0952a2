package services

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// ChartReaderSvc defines read operations over the standard charts of accounts.
type ChartReaderSvc interface {
	// ListChartSystems returns the accounting systems a chart is available for.
	ListChartSystems(ctx context.Context) ([]string, error)

	// GenerateSeed flattens and classifies the chart of an accounting system.
	GenerateSeed(ctx context.Context, system string, strategy chart.Strategy) (*chart.FlattenResult, error)
}

// ChartSeederSvc defines operations that turn a chart into company accounts.
type ChartSeederSvc interface {
	// SeedCompany creates the company's account book from a chart. It fails with
	// apperrors.ErrDuplicate when the company already has accounts.
	SeedCompany(ctx context.Context, companyID, system string, strategy chart.Strategy) ([]domain.AccountBookNode, error)
}

// ChartSvcFacade combines all chart-related service interfaces
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartSeederSvc
}
