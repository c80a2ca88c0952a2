package repositories

import (
	"context"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// ChartReader reads the standard charts of accounts used as seed sources.
type ChartReader interface {
	// LoadChartForest returns the synthetic root of the chart for an accounting system.
	// The root's children are the first-generation accounts.
	LoadChartForest(ctx context.Context, system string) (*domain.ChartNode, error)

	// ListChartSystems returns the accounting systems that have a chart.
	ListChartSystems(ctx context.Context) ([]string, error)
}

// ChartRepositoryFacade combines all chart-related repository interfaces
type ChartRepositoryFacade interface {
	ChartReader
}
