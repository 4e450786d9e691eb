package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/quickbite/pkg/models"
)

func product(id, name, price string) models.Product {
	return models.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestAddProduct(t *testing.T) {
	state := State{}

	next := Transition(state, AddProduct{Product: product("1", "Burger", "10.00")})

	require.Len(t, next.Products, 1)
	assert.Equal(t, "Burger", next.Products[0].Name)
	assert.Empty(t, state.Products, "input state must not be mutated")
}

func TestUpdateProduct(t *testing.T) {
	state := State{Products: []models.Product{product("1", "Burger", "10.00")}}

	next := Transition(state, UpdateProduct{Product: product("1", "Double Burger", "15.00")})

	require.Len(t, next.Products, 1)
	assert.Equal(t, "Double Burger", next.Products[0].Name)
	assert.Equal(t, "Burger", state.Products[0].Name)
}

func TestUpdateProductUnknownIDIsNoop(t *testing.T) {
	state := State{Products: []models.Product{product("1", "Burger", "10.00")}}

	next := Transition(state, UpdateProduct{Product: product("99", "Ghost", "1.00")})

	assert.Equal(t, state.Products, next.Products)
}

func TestDeleteProduct(t *testing.T) {
	state := State{Products: []models.Product{
		product("1", "Burger", "10.00"),
		product("2", "Fries", "5.00"),
	}}

	next := Transition(state, DeleteProduct{ID: "1"})

	require.Len(t, next.Products, 1)
	assert.Equal(t, "2", next.Products[0].ID)

	// Absent id is a no-op
	again := Transition(next, DeleteProduct{ID: "1"})
	assert.Equal(t, next.Products, again.Products)
}

func TestAddToCartRepeatedAccumulatesQuantity(t *testing.T) {
	p := product("1", "Burger", "10.00")
	state := State{}

	const n = 5
	for i := 0; i < n; i++ {
		state = Transition(state, AddToCart{Product: p})
	}

	require.Len(t, state.Cart, 1)
	assert.Equal(t, "1", state.Cart[0].ID)
	assert.Equal(t, n, state.Cart[0].Quantity)
}

func TestAddToCartDistinctProducts(t *testing.T) {
	state := State{}
	state = Transition(state, AddToCart{Product: product("1", "Burger", "10.00")})
	state = Transition(state, AddToCart{Product: product("2", "Fries", "5.00")})

	require.Len(t, state.Cart, 2)
	// Insertion order preserved for display stability
	assert.Equal(t, "1", state.Cart[0].ID)
	assert.Equal(t, "2", state.Cart[1].ID)
}

func TestRemoveFromCart(t *testing.T) {
	state := State{}
	state = Transition(state, AddToCart{Product: product("1", "Burger", "10.00")})

	next := Transition(state, RemoveFromCart{ID: "1"})
	assert.Empty(t, next.Cart)

	// Absent id is a no-op
	again := Transition(next, RemoveFromCart{ID: "1"})
	assert.Empty(t, again.Cart)
}

func TestUpdateCartQuantity(t *testing.T) {
	base := State{}
	base = Transition(base, AddToCart{Product: product("1", "Burger", "10.00")})

	t.Run("positive quantity is set exactly", func(t *testing.T) {
		next := Transition(base, UpdateCartQuantity{ID: "1", Quantity: 7})
		require.Len(t, next.Cart, 1)
		assert.Equal(t, 7, next.Cart[0].Quantity)
	})

	t.Run("zero removes the entry", func(t *testing.T) {
		next := Transition(base, UpdateCartQuantity{ID: "1", Quantity: 0})
		assert.Empty(t, next.Cart)
	})

	t.Run("negative clamps to zero and removes", func(t *testing.T) {
		next := Transition(base, UpdateCartQuantity{ID: "1", Quantity: -3})
		assert.Empty(t, next.Cart)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		next := Transition(base, UpdateCartQuantity{ID: "99", Quantity: 7})
		assert.Equal(t, base.Cart, next.Cart)
	})
}

func TestClearCart(t *testing.T) {
	state := State{}
	state = Transition(state, AddToCart{Product: product("1", "Burger", "10.00")})
	state = Transition(state, AddToCart{Product: product("2", "Fries", "5.00")})

	next := Transition(state, ClearCart{})
	assert.Empty(t, next.Cart)

	// Clearing an empty cart stays empty
	again := Transition(next, ClearCart{})
	assert.Empty(t, again.Cart)
}

func TestToggleCart(t *testing.T) {
	state := State{}

	next := Transition(state, ToggleCart{Open: true})
	assert.True(t, next.CartOpen)

	next = Transition(next, ToggleCart{Open: false})
	assert.False(t, next.CartOpen)
}

func TestCreateOrderThenClearCart(t *testing.T) {
	state := State{}
	state = Transition(state, AddToCart{Product: product("1", "Burger", "18.50")})
	state = Transition(state, AddToCart{Product: product("1", "Burger", "18.50")})

	cartBefore := state.Cart
	order := models.Order{
		ID:        "ORD-1",
		Items:     cartBefore,
		Total:     models.CartTotal(cartBefore),
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}

	state = Transition(state, CreateOrder{Order: order})
	state = Transition(state, ClearCart{})

	require.Len(t, state.Orders, 1)
	assert.Empty(t, state.Cart)
	assert.Equal(t, cartBefore, state.Orders[0].Items, "order items must snapshot the cart before the clear")
	assert.True(t, state.Orders[0].Total.Equal(decimal.RequireFromString("37.00")))
}

func TestUpdateOrderStatusTouchesOnlyStatus(t *testing.T) {
	order := models.Order{
		ID:               "ORD-1",
		Items:            []models.CartItem{{Product: product("1", "Burger", "10.00"), Quantity: 2}},
		Total:            decimal.RequireFromString("20.00"),
		Status:           models.StatusPending,
		CreatedAt:        time.Now(),
		CustomerName:     "João Silva",
		CustomerAddress:  "Rua A, 123",
		CustomerPhone:    "11 99999-0000",
		EstimatedMinutes: 25,
	}
	state := State{Orders: []models.Order{order}}

	next := Transition(state, UpdateOrderStatus{ID: "ORD-1", Status: models.StatusDelivering})

	require.Len(t, next.Orders, 1)
	got := next.Orders[0]
	assert.Equal(t, models.StatusDelivering, got.Status)

	want := order
	want.Status = models.StatusDelivering
	assert.Equal(t, want, got, "all fields besides status must be untouched")

	// Original untouched
	assert.Equal(t, models.StatusPending, state.Orders[0].Status)
}

func TestUpdateOrderStatusUnknownIDIsNoop(t *testing.T) {
	state := State{Orders: []models.Order{{ID: "ORD-1", Status: models.StatusPending}}}

	next := Transition(state, UpdateOrderStatus{ID: "ORD-404", Status: models.StatusDelivered})

	assert.Equal(t, state.Orders, next.Orders)
}

func TestBackwardStatusMoveIsAllowed(t *testing.T) {
	state := State{Orders: []models.Order{{ID: "ORD-1", Status: models.StatusDelivered}}}

	next := Transition(state, UpdateOrderStatus{ID: "ORD-1", Status: models.StatusPending})

	assert.Equal(t, models.StatusPending, next.Orders[0].Status)
}

func TestCartScenarioTotal(t *testing.T) {
	catalog := product("1", "Smash", "18.50")
	state := State{Products: []models.Product{catalog}}

	state = Transition(state, AddToCart{Product: catalog})
	state = Transition(state, AddToCart{Product: catalog})

	require.Len(t, state.Cart, 1)
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.True(t, models.CartTotal(state.Cart).Equal(decimal.RequireFromString("37.00")))
}
