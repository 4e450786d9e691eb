package store

import (
	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

// Messages understood by the store actor besides Action values.
type dispatch struct {
	Action Action
}

type dispatched struct{}

type snapshotRequest struct{}

type etaRequest struct{}

// storeActor owns the State. All transitions and reads go through its
// mailbox, which gives the single-writer, run-to-completion semantics the
// rest of the application relies on.
type storeActor struct {
	state  State
	eta    ETAParams
	logger *zap.Logger
}

func (a *storeActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *dispatch:
		a.state = Transition(a.state, msg.Action)
		ctx.Respond(&dispatched{})

	case *snapshotRequest:
		ctx.Respond(a.state.Clone())

	case *etaRequest:
		ctx.Respond(EstimateETA(a.state.Orders, a.eta))

	case *actor.Started:
		a.logger.Info("Store actor started",
			zap.Int("products", len(a.state.Products)),
			zap.Int("orders", len(a.state.Orders)))

	case *actor.Stopping:
		a.logger.Info("Store actor stopping")

	case *actor.Stopped:
		a.logger.Info("Store actor stopped")
	}
}
