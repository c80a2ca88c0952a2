// Package chartcsv reads standard charts of accounts and writes flattened seeds as CSV.
package chartcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/SscSPs/accountbook_service/internal/models"
	"github.com/SscSPs/accountbook_service/internal/utils/mapping"
)

const (
	numChartFields = 4
	colCode        = 0
	colCName       = 1
	colEName       = 2
	colParentCode  = 3
)

var elementHeader = []string{
	"code", "name", "c_name", "type", "debit", "liquidity", "parent_code", "root_code", "for_user", "level",
}

// ReadChart reads chart rows (code, c_name, e_name, parent_code) with a header
// line and links them into a forest. File order is the sibling order.
func ReadChart(r io.Reader, system string) (*domain.ChartNode, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numChartFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}
	if len(records) == 0 {
		return &domain.ChartNode{}, nil
	}

	rows := make([]models.ChartNode, 0, len(records)-1)
	for i, rec := range records[1:] {
		code := strings.TrimSpace(rec[colCode])
		if code == "" {
			return nil, fmt.Errorf("row %d: empty account code", i+2)
		}
		rows = append(rows, models.ChartNode{
			System:     system,
			Code:       code,
			CName:      rec[colCName],
			EName:      rec[colEName],
			ParentCode: strings.TrimSpace(rec[colParentCode]),
			SortOrder:  i,
		})
	}
	return mapping.ToChartForest(rows), nil
}

// WriteElements writes flattened account elements with a header line.
func WriteElements(w io.Writer, elements []domain.AccountElement) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(elementHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, el := range elements {
		if err := cw.Write(marshalElement(el)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalElement(el domain.AccountElement) []string {
	return []string{
		el.Code,
		el.Name,
		el.CName,
		string(el.Type),
		strconv.FormatBool(el.Debit),
		strconv.FormatBool(el.Liquidity),
		el.ParentCode,
		el.RootCode,
		strconv.FormatBool(el.ForUser),
		strconv.Itoa(el.Level),
	}
}
