package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/models"
	"github.com/example/quickbite/pkg/notify"
	"github.com/example/quickbite/pkg/store"
)

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in
	// the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrBusy is returned while another checkout is still processing. Only
	// one checkout may be in flight at a time.
	ErrBusy = errors.New("another checkout is in progress")
)

// MissingFieldError reports which required customer field was empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Request carries the customer details from the checkout form.
type Request struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// Service sequences a checkout over the store and the notifier: validate,
// simulate payment processing, then atomically record the order and clear
// the cart. It holds no state of its own beyond the in-flight guard.
type Service struct {
	store           *store.Store
	notifier        *notify.Notifier
	processingDelay time.Duration
	logger          *zap.Logger

	inFlight atomic.Bool
}

func NewService(st *store.Store, notifier *notify.Notifier, processingDelay time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:           st,
		notifier:        notifier,
		processingDelay: processingDelay,
		logger:          logger,
	}
}

// Place runs one checkout. On any validation failure no state is mutated and
// the returned error names the failed condition. Cancelling the context
// during the simulated processing delay aborts before any mutation.
func (s *Service) Place(ctx context.Context, req Request) (models.Order, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.Order{}, ErrBusy
	}
	defer s.inFlight.Store(false)

	if err := s.validate(req); err != nil {
		s.notifier.Publish(notify.Notification{
			Title:    "Checkout rejected",
			Message:  err.Error(),
			Severity: notify.SeverityWarning,
		})
		return models.Order{}, err
	}

	// Simulate payment processing.
	select {
	case <-time.After(s.processingDelay):
	case <-ctx.Done():
		return models.Order{}, fmt.Errorf("checkout cancelled: %w", ctx.Err())
	}

	state, err := s.store.Snapshot()
	if err != nil {
		return models.Order{}, err
	}
	if len(state.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	eta, err := s.store.ETA()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:               newOrderID(),
		Items:            state.Cart,
		Total:            models.CartTotal(state.Cart),
		Status:           models.StatusPending,
		CreatedAt:        time.Now(),
		CustomerName:     req.Name,
		CustomerAddress:  req.Address,
		CustomerPhone:    req.Phone,
		Notes:            req.Notes,
		EstimatedMinutes: eta,
	}

	if err := s.store.Dispatch(store.CreateOrder{Order: order}); err != nil {
		return models.Order{}, err
	}
	if err := s.store.Dispatch(store.ClearCart{}); err != nil {
		return models.Order{}, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("total", order.Total.String()),
		zap.Int("item_count", len(order.Items)),
		zap.Int("estimated_minutes", order.EstimatedMinutes))

	s.notifier.Publish(notify.Notification{
		Title:    "Order placed",
		Message:  fmt.Sprintf("Order %s confirmed, estimated delivery in %d min", order.ID, eta),
		Severity: notify.SeveritySuccess,
	})

	return order, nil
}

func (s *Service) validate(req Request) error {
	state, err := s.store.Snapshot()
	if err != nil {
		return err
	}
	if len(state.Cart) == 0 {
		return ErrEmptyCart
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"address", req.Address},
		{"phone", req.Phone},
	} {
		if field.value == "" {
			return &MissingFieldError{Field: field.name}
		}
	}
	return nil
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%s", uuid.NewString()[:8])
}
