package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{
			Product:  Product{ID: "1", Price: decimal.RequireFromString("18.50")},
			Quantity: 2,
		},
		{
			Product:  Product{ID: "2", Price: decimal.RequireFromString("6.00")},
			Quantity: 3,
		},
	}

	total := CartTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("55.00")), "got %s", total)
}

func TestCartTotalEmpty(t *testing.T) {
	assert.True(t, CartTotal(nil).IsZero())
}

func TestParseOrderStatus(t *testing.T) {
	for _, step := range StatusSteps {
		parsed, err := ParseOrderStatus(string(step))
		require.NoError(t, err)
		assert.Equal(t, step, parsed)
	}

	_, err := ParseOrderStatus("shipped")
	assert.Error(t, err)

	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}
