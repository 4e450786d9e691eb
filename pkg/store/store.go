package store

import (
	"fmt"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"

	"github.com/example/quickbite/pkg/models"
)

const requestTimeout = 5 * time.Second

// Store is the synchronous facade over the store actor. There is exactly one
// Store per process; it is created at startup and handed to every consumer.
// A Dispatch call does not return until the transition has been applied, so
// a subsequent Snapshot always observes the write.
type Store struct {
	system *actor.ActorSystem
	pid    *actor.PID
	logger *zap.Logger
}

// New spawns the store actor seeded with the given initial state.
func New(system *actor.ActorSystem, logger *zap.Logger, initial State, eta ETAParams) (*Store, error) {
	props := actor.PropsFromProducer(func() actor.Actor {
		return &storeActor{
			state:  initial.Clone(),
			eta:    eta.withDefaults(),
			logger: logger.Named("store-actor"),
		}
	})

	pid, err := system.Root.SpawnNamed(props, "store")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn store actor: %w", err)
	}

	return &Store{
		system: system,
		pid:    pid,
		logger: logger,
	}, nil
}

// Dispatch applies an action and waits for it to complete.
func (s *Store) Dispatch(action Action) error {
	future := s.system.Root.RequestFuture(s.pid, &dispatch{Action: action}, requestTimeout)
	if _, err := future.Result(); err != nil {
		return fmt.Errorf("dispatch %T: %w", action, err)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() (State, error) {
	future := s.system.Root.RequestFuture(s.pid, &snapshotRequest{}, requestTimeout)
	result, err := future.Result()
	if err != nil {
		return State{}, fmt.Errorf("snapshot: %w", err)
	}
	return result.(State), nil
}

// Product returns the catalog entry with the given id.
func (s *Store) Product(id string) (models.Product, bool, error) {
	state, err := s.Snapshot()
	if err != nil {
		return models.Product{}, false, err
	}
	p, ok := state.Product(id)
	return p, ok, nil
}

// Order returns the order with the given id.
func (s *Store) Order(id string) (models.Order, bool, error) {
	state, err := s.Snapshot()
	if err != nil {
		return models.Order{}, false, err
	}
	o, ok := state.Order(id)
	return o, ok, nil
}

// ETA returns the current delivery estimate in minutes.
func (s *Store) ETA() (int, error) {
	future := s.system.Root.RequestFuture(s.pid, &etaRequest{}, requestTimeout)
	result, err := future.Result()
	if err != nil {
		return 0, fmt.Errorf("eta: %w", err)
	}
	return result.(int), nil
}

// Stop shuts the store actor down and waits for it to drain.
func (s *Store) Stop() error {
	if err := s.system.Root.StopFuture(s.pid).Wait(); err != nil {
		return fmt.Errorf("stop store actor: %w", err)
	}
	return nil
}
