package store

import (
	"github.com/example/quickbite/pkg/models"
)

// Default ETA parameters: 20 minutes base plus 5 minutes of queue pressure
// per in-flight order.
const (
	DefaultBaseMinutes     = 20
	DefaultPerOrderMinutes = 5
)

// ETAParams tunes the delivery estimate.
type ETAParams struct {
	BaseMinutes     int
	PerOrderMinutes int
}

func (p ETAParams) withDefaults() ETAParams {
	if p.BaseMinutes == 0 {
		p.BaseMinutes = DefaultBaseMinutes
	}
	if p.PerOrderMinutes == 0 {
		p.PerOrderMinutes = DefaultPerOrderMinutes
	}
	return p
}

// EstimateETA derives the current delivery estimate in minutes from the order
// history: base time plus a fixed surcharge per order not yet delivered. It is
// a global kitchen-load heuristic, so every active order sees the same value,
// and the value for one order can move in either direction as other orders
// arrive or complete.
func EstimateETA(orders []models.Order, params ETAParams) int {
	params = params.withDefaults()
	active := 0
	for _, o := range orders {
		if o.Status != models.StatusDelivered {
			active++
		}
	}
	return params.BaseMinutes + active*params.PerOrderMinutes
}
