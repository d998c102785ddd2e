package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a frozen copy of a purchased line, independent of later catalog changes.
type OrderItem struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required"`
	Price    Money  `json:"price"`
	Quantity int    `json:"quantity" validate:"min=1"`
	Image    string `json:"image,omitempty"`
}

// LineTotal is price*quantity for display purposes.
func (i OrderItem) LineTotal() Money {
	return Money{Decimal: i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))}
}

// BillingDetails are the checkout form fields.
type BillingDetails struct {
	CustomerName string `json:"customerName" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Address      string `json:"address" validate:"required,min=2"`
	City         string `json:"city" validate:"required,min=2"`
	State        string `json:"state" validate:"required,min=2"`
	PostalCode   string `json:"postalCode" validate:"required,min=2"`
	Country      string `json:"country" validate:"required,min=2"`
	Phone        string `json:"phone" validate:"required,min=10"`
}

// Order is an immutable checkout record. TotalAmount is the amount submitted by
// the client; Items is the snapshot taken at checkout.
type Order struct {
	ID int64 `json:"id"`
	BillingDetails
	TotalAmount Money       `json:"totalAmount"`
	OrderDate   time.Time   `json:"orderDate"`
	Items       []OrderItem `json:"items"`
}

// ItemsTotal recomputes the sum of the snapshot line totals.
func (o Order) ItemsTotal() Money {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal().Decimal)
	}
	return Money{Decimal: total}
}
