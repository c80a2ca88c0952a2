package mapping

import (
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/models"
)

// ToChartForest links flat chart rows into a forest under a synthetic root.
// Rows keep their input order among siblings. A row whose parent code is empty,
// equal to its own code or unknown becomes a first-generation account.
// Later rows repeating a code are still attached so the flattener can report them.
func ToChartForest(rows []models.ChartNode) *domain.ChartNode {
	root := &domain.ChartNode{}
	nodes := make([]*domain.ChartNode, len(rows))
	byCode := make(map[string]*domain.ChartNode, len(rows))
	for i, r := range rows {
		nodes[i] = &domain.ChartNode{Code: r.Code, CName: r.CName, EName: r.EName}
		if _, ok := byCode[r.Code]; !ok {
			byCode[r.Code] = nodes[i]
		}
	}

	for i, r := range rows {
		parent, ok := byCode[r.ParentCode]
		if r.ParentCode == "" || r.ParentCode == r.Code || !ok {
			parent = root
		}
		parent.AddChild(nodes[i])
	}
	return root
}
