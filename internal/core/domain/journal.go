package domain

import "time"

// Journal represents a single, balanced financial event composed of multiple line items.
type Journal struct {
	JournalID   string           `json:"journalID"`
	CompanyID   string           `json:"companyID"`
	JournalDate time.Time        `json:"journalDate"`
	Description string           `json:"description"`
	Lines       []LedgerLineItem `json:"lines"`
	AuditFields
}
