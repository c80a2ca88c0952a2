package chartcsv

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/SscSPs/accountbook_service/internal/core/chart"
	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(nodes []*domain.ChartNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Code
	}
	return out
}

func TestReadChart_BuildsForest(t *testing.T) {
	in := "code,c_name,e_name,parent_code\n" +
		"1,資產,Assets,\n" +
		"1100,現金,Cash,1\n" +
		"2,負債,Current liability,2\n" +
		"9,孤兒,Orphan,404\n"

	root, err := ReadChart(strings.NewReader(in), "IFRS")
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "9"}, codes(root.Children))
	assert.Equal(t, []string{"1100"}, codes(root.Children[0].Children))
	assert.Equal(t, "資產", root.Children[0].CName)
	assert.Equal(t, "Assets", root.Children[0].EName)
}

func TestReadChart_Empty(t *testing.T) {
	root, err := ReadChart(strings.NewReader(""), "IFRS")
	require.NoError(t, err)
	assert.Empty(t, root.Children)
}

func TestReadChart_Errors(t *testing.T) {
	_, err := ReadChart(strings.NewReader("code,c_name,e_name,parent_code\n1,a,b\n"), "IFRS")
	assert.Error(t, err)

	_, err = ReadChart(strings.NewReader("code,c_name,e_name,parent_code\n ,a,b,\n"), "IFRS")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestWriteElements(t *testing.T) {
	elements := []domain.AccountElement{
		{Code: "1", Name: "Assets", CName: "資產", Type: domain.Asset, Debit: true, Liquidity: true, ParentCode: "1", RootCode: "1"},
		{Code: "1100", Name: "Cash", Type: domain.Asset, Debit: true, Liquidity: true, ParentCode: "1", RootCode: "1", ForUser: true, Level: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteElements(&buf, elements))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, elementHeader, records[0])
	assert.Equal(t, []string{"1100", "Cash", "", "asset", "true", "true", "1", "1", "true", "1"}, records[2])
}

func TestTestdataFlattens(t *testing.T) {
	f, err := os.Open("testdata/chart.csv")
	require.NoError(t, err)
	defer f.Close()

	root, err := ReadChart(f, "IFRS")
	require.NoError(t, err)

	res := chart.FlattenBFS(root)
	require.Len(t, res.Duplicates, 1)
	assert.Equal(t, "1100", res.Duplicates[0].Code)
	assert.Len(t, res.Elements, 8)

	byCode := make(map[string]domain.AccountElement)
	for _, el := range res.Elements {
		byCode[el.Code] = el
	}
	assert.Equal(t, domain.Liability, byCode["2170"].Type)
	assert.False(t, byCode["2170"].Debit)
	assert.Equal(t, domain.Revenue, byCode["4100"].Type)
}
