package models

import "github.com/shopspring/decimal"

// Loan represents a row of the loans table.
type Loan struct {
	LoanID    string          `json:"loanID" db:"loan_id"`
	UserID    string          `json:"userID" db:"user_id"`
	UserName  string          `json:"userName" db:"user_name"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Reason    string          `json:"reason" db:"reason"`
	Status    string          `json:"status" db:"status"`
	UserScore int             `json:"userScore" db:"user_score"` // snapshot at application time
	AuditFields
}
