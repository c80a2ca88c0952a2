package dto

import (
	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// ChartSeedParams are the query parameters of the seed preview endpoint.
type ChartSeedParams struct {
	Strategy string `form:"strategy" binding:"omitempty,oneof=bfs dfs"`
}

// SeedChartRequest defines the body for seeding a company's account book.
type SeedChartRequest struct {
	System   string `json:"system" binding:"required"`
	Strategy string `json:"strategy" binding:"omitempty,oneof=bfs dfs"`
}

// ChartSeedResponse is the flattened, classified chart of one accounting system.
type ChartSeedResponse struct {
	System     string                  `json:"system"`
	Strategy   chart.Strategy          `json:"strategy"`
	Count      int                     `json:"count"`
	Elements   []domain.AccountElement `json:"elements"`
	Duplicates []chart.Duplicate       `json:"duplicates"`
}

// SeedCompanyResponse lists the accounts created for a company.
type SeedCompanyResponse struct {
	CompanyID string            `json:"companyID"`
	Count     int               `json:"count"`
	Accounts  []AccountResponse `json:"accounts"`
}

// ListChartSystemsResponse lists the accounting systems a chart is available for.
type ListChartSystemsResponse struct {
	Systems []string `json:"systems"`
}

// ToChartSeedResponse converts a flatten result to its response DTO.
func ToChartSeedResponse(system string, res *chart.FlattenResult) ChartSeedResponse {
	resp := ChartSeedResponse{
		System:     system,
		Strategy:   res.Strategy,
		Elements:   res.Elements,
		Duplicates: res.Duplicates,
	}
	if resp.Elements == nil {
		resp.Elements = []domain.AccountElement{}
	}
	if resp.Duplicates == nil {
		resp.Duplicates = []chart.Duplicate{}
	}
	resp.Count = len(resp.Elements)
	return resp
}
