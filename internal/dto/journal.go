package dto

import (
	"time"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest defines one posting of a new journal.
type CreateLineItemRequest struct {
	AccountID       string                 `json:"accountID" binding:"required"`
	Amount          decimal.Decimal        `json:"amount" binding:"required"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	Description     string                 `json:"description"`
}

// CreateJournalRequest defines the body for posting a journal.
type CreateJournalRequest struct {
	Date        time.Time               `json:"date" binding:"required"`
	Description string                  `json:"description" binding:"required"`
	Lines       []CreateLineItemRequest `json:"lines" binding:"required,min=2,dive"`
}

// LineItemResponse defines the data returned for a journal line item.
type LineItemResponse struct {
	LineItemID      string          `json:"lineItemID"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	Description     string          `json:"description,omitempty"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID   string             `json:"journalID"`
	CompanyID   string             `json:"companyID"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Lines       []LineItemResponse `json:"lines"`
	CreatedAt   time.Time          `json:"createdAt"`
	CreatedBy   string             `json:"createdBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	lines := make([]LineItemResponse, len(j.Lines))
	for i, l := range j.Lines {
		lines[i] = LineItemResponse{
			LineItemID:      l.ID,
			AccountID:       l.AccountID,
			Amount:          l.Amount,
			TransactionType: string(l.TransactionType),
			Description:     l.Description,
		}
	}
	return JournalResponse{
		JournalID:   j.JournalID,
		CompanyID:   j.CompanyID,
		Date:        j.JournalDate,
		Description: j.Description,
		Lines:       lines,
		CreatedAt:   j.CreatedAt,
		CreatedBy:   j.CreatedBy,
	}
}
