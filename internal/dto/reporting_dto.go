package dto

import (
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/accountbook"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// ReportWindowParams are the inclusive date bounds of a report.
type ReportWindowParams struct {
	StartDate time.Time `form:"startDate" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02" binding:"required"`
}

// WindowEnd returns the last instant of EndDate's day.
func (p ReportWindowParams) WindowEnd() time.Time {
	return p.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// LedgerParams are the query parameters of the ledger report.
type LedgerParams struct {
	ReportWindowParams
	AccountID string  `form:"accountId"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=1000"`
	NextToken *string `form:"nextToken"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	CompanyID string                         `json:"companyID"`
	StartDate string                         `json:"startDate"`
	EndDate   string                         `json:"endDate"`
	Rows      []domain.TrialBalanceRow       `json:"rows"`
	Totals    accountbook.TrialBalanceTotals `json:"totals"`
	Balanced  bool                           `json:"balanced"`
}

// LedgerResponse represents one page of the ledger report.
type LedgerResponse struct {
	CompanyID string             `json:"companyID"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Rows      []domain.LedgerRow `json:"rows"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToTrialBalanceResponse converts trial balance rows to a DTO response with totals.
func ToTrialBalanceResponse(companyID string, rows []domain.TrialBalanceRow, params ReportWindowParams) TrialBalanceResponse {
	if rows == nil {
		rows = []domain.TrialBalanceRow{}
	}
	totals := accountbook.SumTrialBalance(rows)
	return TrialBalanceResponse{
		CompanyID: companyID,
		StartDate: params.StartDate.Format(time.DateOnly),
		EndDate:   params.EndDate.Format(time.DateOnly),
		Rows:      rows,
		Totals:    totals,
		Balanced:  totals.Balanced(),
	}
}
