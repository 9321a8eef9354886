package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// PaymentMethod is how a POS transaction was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentQRIS     PaymentMethod = "qris"
	PaymentTransfer PaymentMethod = "transfer"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentQRIS, PaymentTransfer:
		return true
	}
	return false
}

// Categories posted by workflows rather than typed in by the merchant.
const (
	CategorySavingsDeposit       = "Tabungan"
	CategoryLoanDisbursement     = "Pinjaman Modal"
	CategoryInvestmentPurchase   = "Investasi"
	CategoryInvestmentWithdrawal = "Pencairan Investasi"
)

// Transaction is a single income or expense entry in a merchant's book.
// Amount is always a positive whole rupiah value; Type carries the direction.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	UserID        string          `json:"userID"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Note          string          `json:"note"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate checks the fields the scoring core relies on plus the bookkeeping fields.
func (t Transaction) Validate() error {
	if err := t.ValidateForScoring(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return apperrors.NewValidationError("category", "is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return apperrors.NewValidationError("date", "must be formatted as YYYY-MM-DD")
	}
	if t.PaymentMethod != "" && !t.PaymentMethod.IsValid() {
		return apperrors.NewValidationError("paymentMethod", "must be one of cash, qris, transfer")
	}
	return nil
}

// ValidateForScoring checks only type and amount.
func (t Transaction) ValidateForScoring() error {
	if !t.Type.IsValid() {
		return apperrors.NewValidationError("type", "must be income or expense")
	}
	return ValidateRupiahAmount("amount", t.Amount)
}
