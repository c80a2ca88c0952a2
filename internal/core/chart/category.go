// Package chart classifies chart-of-accounts trees and flattens them into seed records.
package chart

import (
	"strings"
	"unicode/utf8"
)

// Category is the heuristic bucket an account falls into before attribute resolution.
type Category string

const (
	CategoryChangeInEquity           Category = "changeInEquity"
	CategoryCashFlow                 Category = "cashFlow"
	CategoryOtherComprehensiveIncome Category = "otherComprehensiveIncome"
	CategoryGain                     Category = "gain"
	CategoryLoss                     Category = "loss"
	CategoryProfit                   Category = "profit"
	CategoryIncome                   Category = "income"
	CategoryExpense                  Category = "expense"
	CategoryCost                     Category = "cost"
	CategoryRevenue                  Category = "revenue"
	CategoryEquity                   Category = "equity"
	CategoryCurrentLiability         Category = "currentLiability"
	CategoryNonCurrentLiability      Category = "nonCurrentLiability"
	CategoryCurrentAsset             Category = "currentAsset"
	CategoryNonCurrentAsset          Category = "nonCurrentAsset"
	CategoryOther                    Category = "other"
)

// statementCodeMaxLen separates change-in-equity codes (short) from cash-flow codes.
const statementCodeMaxLen = 5

// DetermineCategory infers the category of an account from its code and English name.
// Checks run in a fixed order and the first match wins.
func DetermineCategory(code, eName string) Category {
	if startsWithUpperLatin(code) {
		if len(code) <= statementCodeMaxLen {
			return CategoryChangeInEquity
		}
		return CategoryCashFlow
	}

	name := strings.ToLower(eName)

	if strings.Contains(name, "comprehensive") {
		return CategoryOtherComprehensiveIncome
	}

	if cat, ok := gainLossProfit(name); ok {
		return cat
	}

	switch {
	case strings.Contains(name, "income"):
		return CategoryIncome
	case strings.Contains(name, "expense"):
		return CategoryExpense
	case strings.Contains(name, "cost"):
		return CategoryCost
	case strings.Contains(name, "revenue"):
		return CategoryRevenue
	}

	if strings.Contains(name, "equity") {
		return CategoryEquity
	}
	if strings.Contains(name, "liability") {
		if strings.Contains(name, "non-current") {
			return CategoryNonCurrentLiability
		}
		return CategoryCurrentLiability
	}

	if strings.Contains(name, "asset") {
		if strings.Contains(name, "non-current") {
			return CategoryNonCurrentAsset
		}
		return CategoryCurrentAsset
	}

	return CategoryOther
}

// gainLossProfit resolves names mentioning gain, loss or profit.
// When both "gain" and "loss" appear the earlier occurrence wins.
func gainLossProfit(name string) (Category, bool) {
	gainAt := strings.Index(name, "gain")
	lossAt := strings.Index(name, "loss")

	switch {
	case gainAt >= 0 && lossAt >= 0:
		if lossAt < gainAt {
			return CategoryLoss, true
		}
		return CategoryGain, true
	case gainAt >= 0:
		return CategoryGain, true
	case lossAt >= 0:
		return CategoryLoss, true
	case strings.Contains(name, "profit"):
		return CategoryProfit, true
	}
	return "", false
}

func startsWithUpperLatin(code string) bool {
	r, _ := utf8.DecodeRuneInString(code)
	return r >= 'A' && r <= 'Z'
}
