package chart

import (
	"testing"

	"github.com/SscSPs/accountbook_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type elementKey struct {
	Type      domain.AccountType
	Debit     bool
	Liquidity bool
	ForUser   bool
	Level     int
}

func byCode(elements []domain.AccountElement) map[string]elementKey {
	m := make(map[string]elementKey, len(elements))
	for _, el := range elements {
		m[el.Code] = elementKey{el.Type, el.Debit, el.Liquidity, el.ForUser, el.Level}
	}
	return m
}

func codes(elements []domain.AccountElement) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.Code
	}
	return out
}

// sampleForest builds a small IFRS-like chart with mixed categories and depths.
func sampleForest() *domain.ChartNode {
	root := &domain.ChartNode{}

	assets := root.AddChild(&domain.ChartNode{Code: "1000", EName: "Assets", CName: "资产"})
	current := assets.AddChild(&domain.ChartNode{Code: "1100", EName: "Current Assets"})
	current.AddChild(&domain.ChartNode{Code: "1101", EName: "cash (current asset)"})
	current.AddChild(&domain.ChartNode{Code: "1102", EName: "Petty cash"})
	nonCurrent := assets.AddChild(&domain.ChartNode{Code: "1500", EName: "Non-current assets"})
	nonCurrent.AddChild(&domain.ChartNode{Code: "1501", EName: "Buildings"})

	liab := root.AddChild(&domain.ChartNode{Code: "2000", EName: "Current liability"})
	liab.AddChild(&domain.ChartNode{Code: "2001", EName: "Accounts payable"})

	eq := root.AddChild(&domain.ChartNode{Code: "3000", EName: "Equity"})
	eq.AddChild(&domain.ChartNode{Code: "3001", EName: "Share capital"})
	oci := eq.AddChild(&domain.ChartNode{Code: "3100", EName: "Other comprehensive income"})
	oci.AddChild(&domain.ChartNode{Code: "3101", EName: "Revaluation surplus"})

	pl := root.AddChild(&domain.ChartNode{Code: "7000", EName: "Other gains and losses"})
	pl.AddChild(&domain.ChartNode{Code: "7001", EName: "foreign exchange loss and gain"})
	pl.AddChild(&domain.ChartNode{Code: "7002", EName: "gain on disposal"})

	cf := root.AddChild(&domain.ChartNode{Code: "CF00001", EName: "Operating activities"})
	cf.AddChild(&domain.ChartNode{Code: "CF00002", EName: "Receipts from customers"})

	return root
}

func TestFlatten_EndToEndScenario(t *testing.T) {
	root := &domain.ChartNode{}
	assets := root.AddChild(&domain.ChartNode{Code: "1000", EName: "Assets"})
	current := assets.AddChild(&domain.ChartNode{Code: "1100", EName: "Current Assets"})
	current.AddChild(&domain.ChartNode{Code: "1101", EName: "cash (current asset)"})

	for _, s := range []Strategy{BreadthFirst, DepthFirst} {
		t.Run(string(s), func(t *testing.T) {
			res := Flatten(root, s)
			require.Len(t, res.Elements, 3)
			assert.Empty(t, res.Duplicates)
			assert.Equal(t, s, res.Strategy)

			got := byCode(res.Elements)
			assert.Equal(t, elementKey{domain.Asset, true, true, true, 0}, got["1000"])
			assert.Equal(t, elementKey{domain.Asset, true, true, true, 1}, got["1100"])
			assert.Equal(t, elementKey{domain.Asset, true, true, false, 2}, got["1101"])

			for _, el := range res.Elements {
				assert.Equal(t, "1000", el.RootCode)
			}
		})
	}
}

func TestFlatten_ParentAndRootCodes(t *testing.T) {
	res := FlattenBFS(sampleForest())
	els := make(map[string]domain.AccountElement)
	for _, el := range res.Elements {
		els[el.Code] = el
	}

	assert.Equal(t, "1000", els["1000"].ParentCode, "first generation is its own parent")
	assert.Equal(t, "1000", els["1000"].RootCode)
	assert.Equal(t, "1100", els["1101"].ParentCode)
	assert.Equal(t, "1000", els["1101"].RootCode)
	assert.Equal(t, "3100", els["3101"].ParentCode)
	assert.Equal(t, "3000", els["3101"].RootCode)
	assert.Equal(t, "资产", els["1000"].CName)
	assert.Equal(t, "Assets", els["1000"].Name)
}

func TestFlatten_Classification(t *testing.T) {
	got := byCode(FlattenDFS(sampleForest()).Elements)

	assert.Equal(t, elementKey{domain.Asset, true, false, true, 1}, got["1500"])
	assert.Equal(t, elementKey{domain.Asset, true, false, false, 2}, got["1501"], "buildings inherit non-current liquidity")
	assert.Equal(t, elementKey{domain.Liability, false, true, true, 0}, got["2000"])
	assert.Equal(t, elementKey{domain.Liability, false, true, false, 1}, got["2001"])
	assert.Equal(t, elementKey{domain.Equity, false, false, false, 1}, got["3001"])
	assert.Equal(t, elementKey{domain.OtherComprehensiveIncome, false, true, false, 1}, got["3100"], "OCI is never for users")
	assert.Equal(t, elementKey{domain.OtherComprehensiveIncome, false, true, false, 2}, got["3101"])
	assert.Equal(t, elementKey{domain.GainOrLoss, false, true, true, 0}, got["7000"])
	assert.Equal(t, elementKey{domain.GainOrLoss, true, true, false, 1}, got["7001"])
	assert.Equal(t, elementKey{domain.GainOrLoss, false, true, false, 1}, got["7002"])
	assert.Equal(t, elementKey{domain.CashFlow, false, true, false, 0}, got["CF00001"])
}

func TestFlatten_BFSDFSEquivalence(t *testing.T) {
	root := sampleForest()
	bfs := FlattenBFS(root)
	dfs := FlattenDFS(root)

	assert.Equal(t, byCode(bfs.Elements), byCode(dfs.Elements))
	assert.ElementsMatch(t, codes(bfs.Elements), codes(dfs.Elements))
}

func TestFlatten_Order(t *testing.T) {
	root := &domain.ChartNode{}
	a := root.AddChild(&domain.ChartNode{Code: "1", EName: "Assets"})
	a.AddChild(&domain.ChartNode{Code: "11", EName: "Cash"})
	b := root.AddChild(&domain.ChartNode{Code: "2", EName: "Equity"})
	b.AddChild(&domain.ChartNode{Code: "21", EName: "Capital"})

	assert.Equal(t, []string{"1", "2", "11", "21"}, codes(FlattenBFS(root).Elements))
	assert.Equal(t, []string{"1", "11", "2", "21"}, codes(FlattenDFS(root).Elements))
}

func TestFlatten_Duplicates(t *testing.T) {
	root := &domain.ChartNode{}
	a := root.AddChild(&domain.ChartNode{Code: "1000", EName: "Assets"})
	a.AddChild(&domain.ChartNode{Code: "1001", EName: "Cash"})
	dup := root.AddChild(&domain.ChartNode{Code: "1000", EName: "Assets again"})
	dup.AddChild(&domain.ChartNode{Code: "1002", EName: "Bank"})

	for _, s := range []Strategy{BreadthFirst, DepthFirst} {
		t.Run(string(s), func(t *testing.T) {
			res := Flatten(root, s)

			seen := make(map[string]bool)
			for _, el := range res.Elements {
				assert.False(t, seen[el.Code], "code %s emitted twice", el.Code)
				seen[el.Code] = true
			}
			assert.ElementsMatch(t, []string{"1000", "1001", "1002"}, codes(res.Elements))

			require.Len(t, res.Duplicates, 1)
			assert.Equal(t, "1000", res.Duplicates[0].Code)
			assert.Equal(t, "Assets again", res.Duplicates[0].Name)

			for _, el := range res.Elements {
				if el.Code == "1000" {
					assert.Equal(t, "Assets", el.Name, "first occurrence wins")
				}
			}
		})
	}
}

func TestFlatten_EmptyForest(t *testing.T) {
	assert.Empty(t, FlattenBFS(nil).Elements)
	assert.Empty(t, FlattenDFS(&domain.ChartNode{}).Elements)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, BreadthFirst, s)

	s, err = ParseStrategy("DFS")
	require.NoError(t, err)
	assert.Equal(t, DepthFirst, s)

	_, err = ParseStrategy("random")
	assert.Error(t, err)
}
