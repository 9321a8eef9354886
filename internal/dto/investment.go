package dto

import (
	"github.com/shopspring/decimal"
)

// ListProductsParams filters the product catalog.
type ListProductsParams struct {
	Risk string `form:"risk" binding:"omitempty,risktier"`
}

// BuyInvestmentRequest defines the data needed to open a position.
type BuyInvestmentRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}
