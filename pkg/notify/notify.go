package notify

import (
	"fmt"
	"time"

	"github.com/asynkron/protoactor-go/actor"
	"go.uber.org/zap"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	Title    string
	Message  string
	Severity Severity
	Duration time.Duration
}

// notificationActor drains notifications off its mailbox and emits them. The
// only sink in this scope is the structured log.
type notificationActor struct {
	logger *zap.Logger
}

func (a *notificationActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *Notification:
		a.logger.Info("Notification",
			zap.String("title", msg.Title),
			zap.String("message", msg.Message),
			zap.String("severity", string(msg.Severity)),
			zap.Duration("duration", msg.Duration))

	case *actor.Started:
		a.logger.Info("Notification actor started")

	case *actor.Stopped:
		a.logger.Info("Notification actor stopped")
	}
}

// Notifier publishes transient notifications. Publishing is fire-and-forget;
// a slow sink never blocks the caller.
type Notifier struct {
	system *actor.ActorSystem
	pid    *actor.PID
}

func New(system *actor.ActorSystem, logger *zap.Logger) (*Notifier, error) {
	props := actor.PropsFromProducer(func() actor.Actor {
		return &notificationActor{logger: logger.Named("notification-actor")}
	})

	pid, err := system.Root.SpawnNamed(props, "notifications")
	if err != nil {
		return nil, fmt.Errorf("failed to spawn notification actor: %w", err)
	}

	return &Notifier{system: system, pid: pid}, nil
}

func (n *Notifier) Publish(notification Notification) {
	if notification.Duration == 0 {
		notification.Duration = 5 * time.Second
	}
	n.system.Root.Send(n.pid, &notification)
}
