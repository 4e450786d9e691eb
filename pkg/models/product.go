package models

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// CartItem is a snapshot of a product plus the quantity the customer picked.
// Quantity is always >= 1 while the item is in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartTotal sums price x quantity over all items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
