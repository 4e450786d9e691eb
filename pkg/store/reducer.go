package store

import (
	"github.com/example/quickbite/pkg/models"
)

// Transition applies an action to a state and returns the next state. It is
// pure: the input state is never mutated and the same inputs always produce
// the same output. It also never fails — unknown ids are silently ignored and
// out-of-range quantities are clamped, since callers only act on ids they
// just read from this same state.
func Transition(state State, action Action) State {
	next := state.Clone()

	switch a := action.(type) {
	case AddProduct:
		next.Products = append(next.Products, a.Product)

	case UpdateProduct:
		for i, p := range next.Products {
			if p.ID == a.Product.ID {
				next.Products[i] = a.Product
				break
			}
		}

	case DeleteProduct:
		products := next.Products[:0:0]
		for _, p := range next.Products {
			if p.ID != a.ID {
				products = append(products, p)
			}
		}
		next.Products = products

	case AddToCart:
		found := false
		for i, item := range next.Cart {
			if item.ID == a.Product.ID {
				next.Cart[i].Quantity++
				found = true
				break
			}
		}
		if !found {
			next.Cart = append(next.Cart, models.CartItem{Product: a.Product, Quantity: 1})
		}

	case RemoveFromCart:
		next.Cart = removeCartItem(next.Cart, a.ID)

	case UpdateCartQuantity:
		qty := a.Quantity
		if qty < 0 {
			qty = 0
		}
		if qty == 0 {
			next.Cart = removeCartItem(next.Cart, a.ID)
			break
		}
		for i, item := range next.Cart {
			if item.ID == a.ID {
				next.Cart[i].Quantity = qty
				break
			}
		}

	case ClearCart:
		next.Cart = nil

	case ToggleCart:
		next.CartOpen = a.Open

	case CreateOrder:
		next.Orders = append(next.Orders, a.Order)

	case UpdateOrderStatus:
		for i, o := range next.Orders {
			if o.ID == a.ID {
				next.Orders[i].Status = a.Status
				break
			}
		}
	}

	return next
}

func removeCartItem(cart []models.CartItem, id string) []models.CartItem {
	out := cart[:0:0]
	for _, item := range cart {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
