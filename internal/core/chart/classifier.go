package chart

import "github.com/SscSPs/accountbook_service/internal/core/domain"

// Attr is a per-attribute classification decision: either a forced value or
// "inherit from the parent".
type Attr[T any] struct {
	value  T
	forced bool
}

// Forced returns an attribute decision that always yields v.
func Forced[T any](v T) Attr[T] {
	return Attr[T]{value: v, forced: true}
}

// Inherit returns an attribute decision that takes the parent's value.
func Inherit[T any]() Attr[T] {
	return Attr[T]{}
}

// IsForced reports whether the decision overrides the parent.
func (a Attr[T]) IsForced() bool {
	return a.forced
}

// Resolve returns the forced value, else the inherited one, else fallback when
// there is nothing to inherit from.
func (a Attr[T]) Resolve(inherited T, hasParent bool, fallback T) T {
	if a.forced {
		return a.value
	}
	if hasParent {
		return inherited
	}
	return fallback
}

// Rule is the decision table row for one category.
type Rule struct {
	Type      Attr[domain.AccountType]
	Debit     Attr[bool]
	Liquidity Attr[bool]
}

// Classification is the resolved {type, debit, liquidity} triple of an account.
type Classification struct {
	Type      domain.AccountType
	Debit     bool
	Liquidity bool
}

// defaultClassification applies when an uncategorized account has no parent.
var defaultClassification = Classification{Type: domain.Other, Debit: true, Liquidity: true}

func forcedRule(t domain.AccountType, debit, liquidity bool) Rule {
	return Rule{Type: Forced(t), Debit: Forced(debit), Liquidity: Forced(liquidity)}
}

// RuleFor returns the decision table row for a category. Unknown categories
// behave like CategoryOther.
func RuleFor(cat Category) Rule {
	switch cat {
	case CategoryChangeInEquity:
		return forcedRule(domain.ChangeInEquity, false, true)
	case CategoryCashFlow:
		return forcedRule(domain.CashFlow, false, true)
	case CategoryOtherComprehensiveIncome:
		return forcedRule(domain.OtherComprehensiveIncome, false, true)
	case CategoryIncome:
		return forcedRule(domain.Income, false, true)
	case CategoryRevenue:
		return forcedRule(domain.Revenue, false, true)
	case CategoryGain, CategoryProfit:
		return forcedRule(domain.GainOrLoss, false, true)
	case CategoryLoss:
		return forcedRule(domain.GainOrLoss, true, true)
	case CategoryExpense:
		return forcedRule(domain.Expense, true, true)
	case CategoryCost:
		return forcedRule(domain.Cost, true, true)
	case CategoryEquity:
		return forcedRule(domain.Equity, false, false)
	case CategoryCurrentLiability:
		return forcedRule(domain.Liability, false, true)
	case CategoryNonCurrentLiability:
		return forcedRule(domain.Liability, false, false)
	case CategoryCurrentAsset:
		return forcedRule(domain.Asset, true, true)
	case CategoryNonCurrentAsset:
		return forcedRule(domain.Asset, true, false)
	default:
		return Rule{
			Type:      Inherit[domain.AccountType](),
			Debit:     Inherit[bool](),
			Liquidity: Inherit[bool](),
		}
	}
}

// Apply resolves a rule against the parent's classification. parent is nil for
// first-generation accounts.
func (r Rule) Apply(parent *Classification) Classification {
	var inherited Classification
	hasParent := parent != nil
	if hasParent {
		inherited = *parent
	}
	return Classification{
		Type:      r.Type.Resolve(inherited.Type, hasParent, defaultClassification.Type),
		Debit:     r.Debit.Resolve(inherited.Debit, hasParent, defaultClassification.Debit),
		Liquidity: r.Liquidity.Resolve(inherited.Liquidity, hasParent, defaultClassification.Liquidity),
	}
}

// Classify resolves the type, polarity and liquidity of node given its parent's
// already-resolved classification.
func Classify(node *domain.ChartNode, parent *Classification) Classification {
	return RuleFor(DetermineCategory(node.Code, node.EName)).Apply(parent)
}

// IsForUser reports whether an account is exposed to users as a posting parent.
func IsForUser(t domain.AccountType, hasChildren bool) bool {
	return hasChildren && t.IsAggregate()
}
