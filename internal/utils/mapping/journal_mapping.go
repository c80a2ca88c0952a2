package mapping

import (
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/models"
)

// ToModelJournal converts a domain Journal header to a model Journal
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		CompanyID:   d.CompanyID,
		JournalDate: d.JournalDate,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			CreatedBy: d.CreatedBy,
		},
	}
}

// ToDomainJournal converts a model Journal and its lines to a domain Journal
func ToDomainJournal(m models.Journal, lines []models.LedgerLineItem) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		CompanyID:   m.CompanyID,
		JournalDate: m.JournalDate,
		Description: m.Description,
		Lines:       ToDomainLedgerLineItemSlice(lines),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			CreatedBy: m.CreatedBy,
		},
	}
}

// ToModelLedgerLineItem converts a domain LedgerLineItem to a model LedgerLineItem
func ToModelLedgerLineItem(d domain.LedgerLineItem) models.LedgerLineItem {
	return models.LedgerLineItem{
		ID:              d.ID,
		CompanyID:       d.CompanyID,
		JournalID:       d.JournalID,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		TransactionType: models.TransactionType(d.TransactionType),
		PostedAt:        d.PostedAt,
		Description:     d.Description,
	}
}

// ToDomainLedgerLineItem converts a model LedgerLineItem to a domain LedgerLineItem
func ToDomainLedgerLineItem(m models.LedgerLineItem) domain.LedgerLineItem {
	return domain.LedgerLineItem{
		ID:              m.ID,
		CompanyID:       m.CompanyID,
		JournalID:       m.JournalID,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		PostedAt:        m.PostedAt,
		Description:     m.Description,
	}
}

// ToDomainLedgerLineItemSlice converts a slice of model line items to domain line items
func ToDomainLedgerLineItemSlice(ms []models.LedgerLineItem) []domain.LedgerLineItem {
	ds := make([]domain.LedgerLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerLineItem(m)
	}
	return ds
}
