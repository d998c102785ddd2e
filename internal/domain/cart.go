package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is one product line in a session's cart. A stored item always has
// 1 <= Quantity <= MaxCartQuantity and there is at most one item per
// (SessionID, ProductID).
type CartItem struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	Quantity  int       `json:"quantity"`
	SessionID string    `json:"sessionId"`
	DateAdded time.Time `json:"dateAdded"`
}

// MaxCartQuantity is the largest quantity a cart item can hold, including the
// sum produced by merging repeated adds.
const MaxCartQuantity = math.MaxInt32

// QuantityLimitError reports a quantity above MaxCartQuantity.
func QuantityLimitError() *ValidationError {
	return &ValidationError{Fields: []FieldError{{
		Field:   "quantity",
		Message: fmt.Sprintf("must not exceed %d", MaxCartQuantity),
	}}}
}

// CartLine is a CartItem joined with the product as it is currently in the catalog.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

// CartSummary holds values derived from the current cart lines.
type CartSummary struct {
	Total Money `json:"total"`
	Count int   `json:"count"`
}

// SummarizeCart sums price*quantity and quantity over lines using current prices.
func SummarizeCart(lines []CartLine) CartSummary {
	total := decimal.Zero
	count := 0
	for _, line := range lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		count += line.Quantity
	}
	return CartSummary{Total: Money{Decimal: total}, Count: count}
}
