package models

// ChartNode is one row of a standard chart of accounts.
// ParentCode is empty for first-generation accounts.
type ChartNode struct {
	System     string `db:"system"`
	Code       string `db:"code"`
	CName      string `db:"c_name"`
	EName      string `db:"e_name"`
	ParentCode string `db:"parent_code"`
	SortOrder  int    `db:"sort_order"`
}
