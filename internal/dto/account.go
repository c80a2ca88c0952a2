package dto

import (
	"github.com/SscSPs/accountbook_service/internal/core/domain"
)

// ListAccountsParams filters the account listing.
type ListAccountsParams struct {
	Type    domain.AccountType `form:"type"`
	ForUser *bool              `form:"forUser"`
}

// AccountResponse defines the data returned for an account book node.
type AccountResponse struct {
	AccountID string             `json:"accountID"`
	CompanyID string             `json:"companyID"`
	System    string             `json:"system"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	CName     string             `json:"cName,omitempty"`
	Type      domain.AccountType `json:"type"`
	Debit     bool               `json:"debit"`
	Liquidity bool               `json:"liquidity"`
	ForUser   bool               `json:"forUser"`
	Level     int                `json:"level"`
	ParentID  string             `json:"parentID"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.AccountBookNode to AccountResponse DTO.
func ToAccountResponse(n *domain.AccountBookNode) AccountResponse {
	return AccountResponse{
		AccountID: n.ID,
		CompanyID: n.CompanyID,
		System:    n.System,
		Code:      n.Code,
		Name:      n.Name,
		CName:     n.CName,
		Type:      n.Type,
		Debit:     n.Debit,
		Liquidity: n.Liquidity,
		ForUser:   n.ForUser,
		Level:     n.Level,
		ParentID:  n.ParentID,
	}
}

// ToAccountResponses converts a slice of domain.AccountBookNode to []AccountResponse.
func ToAccountResponses(nodes []domain.AccountBookNode) []AccountResponse {
	responses := make([]AccountResponse, len(nodes))
	for i := range nodes {
		responses[i] = ToAccountResponse(&nodes[i])
	}
	return responses
}
