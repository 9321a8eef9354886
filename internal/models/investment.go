package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment represents an open position in the investments table.
type Investment struct {
	InvestmentID string          `json:"investmentID" db:"investment_id"`
	UserID       string          `json:"userID" db:"user_id"`
	ProductID    string          `json:"productID" db:"product_id"`
	Name         string          `json:"name" db:"name"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	ReturnRate   decimal.Decimal `json:"returnRate" db:"return_rate"`
	Risk         string          `json:"risk" db:"risk"`
	StartDate    time.Time       `json:"startDate" db:"start_date"`
}
