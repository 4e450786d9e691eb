package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/example/quickbite/pkg/models"
)

func TestEstimateETABaseCase(t *testing.T) {
	assert.Equal(t, 20, EstimateETA(nil, ETAParams{}))

	delivered := []models.Order{
		{ID: "ORD-1", Status: models.StatusDelivered},
		{ID: "ORD-2", Status: models.StatusDelivered},
	}
	assert.Equal(t, 20, EstimateETA(delivered, ETAParams{}))
}

func TestEstimateETAGrowsPerActiveOrder(t *testing.T) {
	orders := []models.Order{}
	for i, status := range []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusDelivering,
	} {
		orders = append(orders, models.Order{ID: string(rune('A' + i)), Status: status})
		assert.Equal(t, 20+5*len(orders), EstimateETA(orders, ETAParams{}))
	}
}

func TestEstimateETAMixedStatuses(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1", Status: models.StatusPending},
		{ID: "ORD-2", Status: models.StatusDelivered},
	}

	// Only the non-delivered order counts
	assert.Equal(t, 25, EstimateETA(orders, ETAParams{}))
}

func TestEstimateETACustomParams(t *testing.T) {
	orders := []models.Order{
		{ID: "ORD-1", Status: models.StatusPreparing},
		{ID: "ORD-2", Status: models.StatusPreparing},
	}

	assert.Equal(t, 30+2*10, EstimateETA(orders, ETAParams{BaseMinutes: 30, PerOrderMinutes: 10}))
}
