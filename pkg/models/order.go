package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusPreparing  OrderStatus = "preparing"
	StatusDelivering OrderStatus = "delivering"
	StatusDelivered  OrderStatus = "delivered"
)

// StatusSteps is the delivery lifecycle in display order.
var StatusSteps = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusDelivering,
	StatusDelivered,
}

// ParseOrderStatus validates a status value coming from a request body.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, step := range StatusSteps {
		if s == string(step) {
			return step, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Order is an immutable snapshot of a submitted cart. Everything except
// Status is fixed at creation time; Total is never recomputed from Items.
type Order struct {
	ID               string          `json:"id"`
	Items            []CartItem      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	CustomerName     string          `json:"customer_name"`
	CustomerAddress  string          `json:"customer_address"`
	CustomerPhone    string          `json:"customer_phone"`
	Notes            string          `json:"notes,omitempty"`
	EstimatedMinutes int             `json:"estimated_minutes"`
}
