package store

import (
	"github.com/example/quickbite/pkg/models"
)

// Action is the closed set of state transitions, one variant per operation.
// The marker method keeps the set sealed so Transition can match exhaustively.
type Action interface {
	isAction()
}

// AddProduct appends a new product to the catalog.
type AddProduct struct {
	Product models.Product
}

// UpdateProduct replaces the catalog entry with the same id. Unknown ids are
// a no-op.
type UpdateProduct struct {
	Product models.Product
}

// DeleteProduct removes the catalog entry with the given id, if present.
type DeleteProduct struct {
	ID string
}

// AddToCart inserts the product with quantity 1, or bumps the quantity by 1
// when the product is already in the cart.
type AddToCart struct {
	Product models.Product
}

// RemoveFromCart drops the cart entry with the given product id, if present.
type RemoveFromCart struct {
	ID string
}

// UpdateCartQuantity sets a cart entry's quantity. Values below zero clamp to
// zero, and a zero quantity removes the entry.
type UpdateCartQuantity struct {
	ID       string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

// ToggleCart sets the cart panel visibility flag.
type ToggleCart struct {
	Open bool
}

// CreateOrder appends a fully formed order to the history. The caller builds
// the order; the store only records it.
type CreateOrder struct {
	Order models.Order
}

// UpdateOrderStatus replaces the status of the matching order and nothing
// else. Unknown ids are a no-op.
type UpdateOrderStatus struct {
	ID     string
	Status models.OrderStatus
}

func (AddProduct) isAction()         {}
func (UpdateProduct) isAction()      {}
func (DeleteProduct) isAction()      {}
func (AddToCart) isAction()          {}
func (RemoveFromCart) isAction()     {}
func (UpdateCartQuantity) isAction() {}
func (ClearCart) isAction()          {}
func (ToggleCart) isAction()         {}
func (CreateOrder) isAction()        {}
func (UpdateOrderStatus) isAction()  {}
