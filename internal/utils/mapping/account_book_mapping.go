package mapping

import (
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/models"
)

// ToModelAccountBookNode converts a domain AccountBookNode to a model AccountBookNode
func ToModelAccountBookNode(d domain.AccountBookNode) models.AccountBookNode {
	return models.AccountBookNode{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		System:    d.System,
		Code:      d.Code,
		Name:      d.Name,
		CName:     d.CName,
		Type:      models.AccountType(d.Type),
		Debit:     d.Debit,
		Liquidity: d.Liquidity,
		ForUser:   d.ForUser,
		Level:     d.Level,
		ParentID:  d.ParentID,
	}
}

// ToDomainAccountBookNode converts a model AccountBookNode to a domain AccountBookNode
func ToDomainAccountBookNode(m models.AccountBookNode) domain.AccountBookNode {
	return domain.AccountBookNode{
		ID:        m.ID,
		CompanyID: m.CompanyID,
		System:    m.System,
		Code:      m.Code,
		Name:      m.Name,
		CName:     m.CName,
		Type:      domain.AccountType(m.Type),
		Debit:     m.Debit,
		Liquidity: m.Liquidity,
		ForUser:   m.ForUser,
		Level:     m.Level,
		ParentID:  m.ParentID,
	}
}

// ToDomainAccountBookNodeSlice converts a slice of model nodes to domain nodes
func ToDomainAccountBookNodeSlice(ms []models.AccountBookNode) []domain.AccountBookNode {
	ds := make([]domain.AccountBookNode, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccountBookNode(m)
	}
	return ds
}
