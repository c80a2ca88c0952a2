package models

// AccountType mirrors the account_type column values.
type AccountType string

// AccountBookNode is a persisted, classified company account.
type AccountBookNode struct {
	ID        string      `db:"id"`
	CompanyID string      `db:"company_id"`
	System    string      `db:"system"`
	Code      string      `db:"code"`
	Name      string      `db:"name"`
	CName     string      `db:"c_name"`
	Type      AccountType `db:"type"`
	Debit     bool        `db:"debit"`
	Liquidity bool        `db:"liquidity"`
	ForUser   bool        `db:"for_user"`
	Level     int         `db:"level"`
	ParentID  string      `db:"parent_id"`
}
