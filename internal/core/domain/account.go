package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset                    AccountType = "asset"
	Liability                AccountType = "liability"
	Equity                   AccountType = "equity"
	Revenue                  AccountType = "revenue"
	Cost                     AccountType = "cost"
	Income                   AccountType = "income"
	Expense                  AccountType = "expense"
	GainOrLoss               AccountType = "gainOrLoss"
	OtherComprehensiveIncome AccountType = "otherComprehensiveIncome"
	ChangeInEquity           AccountType = "changeInEquity"
	CashFlow                 AccountType = "cashFlow"
	Other                    AccountType = "other"
)

// aggregateTypes are the types users may open sub-accounts under.
// Other comprehensive income is deliberately absent.
var aggregateTypes = map[AccountType]bool{
	Asset:      true,
	Liability:  true,
	Equity:     true,
	Revenue:    true,
	Cost:       true,
	Income:     true,
	Expense:    true,
	GainOrLoss: true,
}

// IsAggregate reports whether t is one of the types exposed to users as a posting parent.
func (t AccountType) IsAggregate() bool {
	return aggregateTypes[t]
}

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Cost, Income, Expense, GainOrLoss,
		OtherComprehensiveIncome, ChangeInEquity, CashFlow, Other:
		return true
	}
	return false
}

// ChartNode is one account of a chart-of-accounts forest as supplied by the seed source.
// The forest itself is represented by a synthetic root whose children are the
// first-generation accounts.
type ChartNode struct {
	Code     string
	CName    string
	EName    string
	Children []*ChartNode
}

// AddChild appends child to n and returns child.
func (n *ChartNode) AddChild(child *ChartNode) *ChartNode {
	n.Children = append(n.Children, child)
	return child
}

// HasChildren reports whether n has at least one direct descendant.
func (n *ChartNode) HasChildren() bool {
	return len(n.Children) > 0
}

// AccountElement is a classified chart account, ready to be bulk-loaded into a ledger.
type AccountElement struct {
	Type       AccountType `json:"type"`
	Debit      bool        `json:"debit"`
	Liquidity  bool        `json:"liquidity"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	CName      string      `json:"cName"`
	ParentCode string      `json:"parentCode"` // equals Code for first-generation accounts
	RootCode   string      `json:"rootCode"`
	ForUser    bool        `json:"forUser"`
	Level      int         `json:"level"`
}
