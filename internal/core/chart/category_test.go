package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		eName string
		want  Category
	}{
		{"short uppercase code", "A101", "anything at all", CategoryChangeInEquity},
		{"five char uppercase code", "CE001", "retained earnings", CategoryChangeInEquity},
		{"long uppercase code", "CF00001", "cash receipts from customers", CategoryCashFlow},
		{"lowercase code is not a statement code", "a101", "cash", CategoryOther},
		{"comprehensive beats income", "8100", "Other Comprehensive Income", CategoryOtherComprehensiveIncome},
		{"loss before gain", "7100", "foreign exchange loss and gain", CategoryLoss},
		{"gain before loss", "7200", "Gain or loss on disposal", CategoryGain},
		{"gain only", "7300", "gain on disposal", CategoryGain},
		{"loss only", "7400", "Impairment Loss", CategoryLoss},
		{"profit only", "7500", "net profit", CategoryProfit},
		{"profit and loss resolves to loss", "7600", "profit and loss", CategoryLoss},
		{"gain beats income", "7700", "investment income gain", CategoryGain},
		{"income", "4100", "Interest Income", CategoryIncome},
		{"income beats expense", "4200", "income tax expense", CategoryIncome},
		{"expense", "6100", "Administrative Expenses", CategoryExpense},
		{"cost beats revenue", "5100", "Cost of Revenue", CategoryCost},
		{"revenue", "4000", "Operating Revenue", CategoryRevenue},
		{"equity", "3000", "Equity", CategoryEquity},
		{"equity beats liability", "3100", "equity and liability", CategoryEquity},
		{"current liability", "2100", "Current Liability", CategoryCurrentLiability},
		{"non-current liability", "2500", "Deferred tax liability (non-current)", CategoryNonCurrentLiability},
		{"current asset", "1100", "Current Assets", CategoryCurrentAsset},
		{"non-current asset", "1500", "Property (non-current asset)", CategoryNonCurrentAsset},
		{"plural liabilities is not matched", "2200", "Liabilities", CategoryOther},
		{"unrecognized", "9999", "Suspense", CategoryOther},
		{"empty", "", "", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineCategory(tt.code, tt.eName))
		})
	}
}

func TestDetermineCategory_Deterministic(t *testing.T) {
	first := DetermineCategory("7100", "foreign exchange loss and gain")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, DetermineCategory("7100", "foreign exchange loss and gain"))
	}
}
