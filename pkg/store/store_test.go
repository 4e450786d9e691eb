package store

import (
	"sync"
	"testing"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/models"
)

func newTestStore(t *testing.T, initial State) *Store {
	t.Helper()

	system := actor.NewActorSystem()
	st, err := New(system, zap.NewNop(), initial, ETAParams{})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Stop()
	})
	return st
}

func TestDispatchIsReadAfterWriteVisible(t *testing.T) {
	st := newTestStore(t, State{})

	p := product("1", "Burger", "10.00")
	require.NoError(t, st.Dispatch(AddProduct{Product: p}))

	state, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, state.Products, 1)
	assert.Equal(t, "Burger", state.Products[0].Name)
}

func TestSnapshotIsACopy(t *testing.T) {
	st := newTestStore(t, State{Products: []models.Product{product("1", "Burger", "10.00")}})

	state, err := st.Snapshot()
	require.NoError(t, err)
	state.Products[0].Name = "Tampered"

	fresh, err := st.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "Burger", fresh.Products[0].Name)
}

func TestConcurrentDispatches(t *testing.T) {
	st := newTestStore(t, State{})
	p := product("1", "Burger", "10.00")

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, st.Dispatch(AddToCart{Product: p}))
		}()
	}
	wg.Wait()

	state, err := st.Snapshot()
	require.NoError(t, err)
	require.Len(t, state.Cart, 1)
	assert.Equal(t, n, state.Cart[0].Quantity)
}

func TestStoreETA(t *testing.T) {
	st := newTestStore(t, State{Orders: []models.Order{
		{ID: "ORD-1", Status: models.StatusPending},
		{ID: "ORD-2", Status: models.StatusDelivered},
	}})

	eta, err := st.ETA()
	require.NoError(t, err)
	assert.Equal(t, 25, eta)

	require.NoError(t, st.Dispatch(UpdateOrderStatus{ID: "ORD-1", Status: models.StatusDelivered}))

	eta, err = st.ETA()
	require.NoError(t, err)
	assert.Equal(t, 20, eta)
}

func TestLookupHelpers(t *testing.T) {
	st := newTestStore(t, SeedState())

	p, ok, err := st.Product("2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Smash Clássico", p.Name)

	_, ok, err = st.Product("999")
	require.NoError(t, err)
	assert.False(t, ok)

	o, ok, err := st.Order("ORD-1001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.StatusPreparing, o.Status)

	_, ok, err = st.Order("ORD-9999")
	require.NoError(t, err)
	assert.False(t, ok)
}
