package domain

// AccountBookNode is a persisted, classified account rebuilt into a tree at query time.
// Parent and Children are resolved by the account book and never serialized.
type AccountBookNode struct {
	ID        string      `json:"id"`
	CompanyID string      `json:"companyID"`
	System    string      `json:"system"` // accounting standard, e.g. IFRS
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	CName     string      `json:"cName"`
	Type      AccountType `json:"type"`
	Debit     bool        `json:"debit"`
	Liquidity bool        `json:"liquidity"`
	ForUser   bool        `json:"forUser"`
	Level     int         `json:"level"`
	ParentID  string      `json:"parentID"` // equals ID for roots

	Parent   *AccountBookNode   `json:"-"`
	Children []*AccountBookNode `json:"-"`
	Datas    []LedgerLineItem   `json:"-"`
}

// IsRoot reports whether the node declares itself as a forest root.
func (n *AccountBookNode) IsRoot() bool {
	return n.ParentID == n.ID
}
