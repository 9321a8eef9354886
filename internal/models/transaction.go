package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense row in a merchant's book.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"` // Primary Key (UUID)
	UserID        string          `json:"userID" db:"user_id"`               // FK -> users.user_id
	TxnDate       string          `json:"txnDate" db:"txn_date"`             // DATE column, read back as YYYY-MM-DD
	Type          string          `json:"type" db:"type"`                    // income or expense
	Category      string          `json:"category" db:"category"`
	Amount        decimal.Decimal `json:"amount" db:"amount"` // NUMERIC(20,0)
	Note          string          `json:"note" db:"note"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
