package store

import (
	"github.com/example/quickbite/pkg/models"
)

// State is the whole application state: product catalog, current cart, order
// history and the cart panel visibility flag. It is owned by the store actor;
// consumers only ever see copies handed out by Snapshot.
type State struct {
	Products []models.Product  `json:"products"`
	Cart     []models.CartItem `json:"cart"`
	Orders   []models.Order    `json:"orders"`
	CartOpen bool              `json:"cart_open"`
}

// Clone copies the top-level collections. Element values are never mutated in
// place by the reducer, so sharing their inner slices is safe.
func (s State) Clone() State {
	out := State{
		Products: make([]models.Product, len(s.Products)),
		Cart:     make([]models.CartItem, len(s.Cart)),
		Orders:   make([]models.Order, len(s.Orders)),
		CartOpen: s.CartOpen,
	}
	copy(out.Products, s.Products)
	copy(out.Cart, s.Cart)
	copy(out.Orders, s.Orders)
	return out
}

// Product looks up a catalog entry by id.
func (s State) Product(id string) (models.Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Order looks up an order by id.
func (s State) Order(id string) (models.Order, bool) {
	for _, o := range s.Orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}
