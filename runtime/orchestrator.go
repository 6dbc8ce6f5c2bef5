// Package runtime handles connections, name ownership, fan-out and presence.
// It orchestrates sessions without containing wire-format rules; those live in domain.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"net"
	"sync"
)

// Orchestrator owns the shared relay state and the supervisor running every long-lived worker.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   *Registry
	members    *BroadcastSet
	room       *Room
	metrics    *observability.Metrics
	config     SessionConfig
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	moderator contract.IModerator, metrics *observability.Metrics, config SessionConfig) *Orchestrator {
	registry := NewRegistry()
	members := NewBroadcastSet()
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		members:    members,
		room:       NewRoom(log, registry, members, moderator, metrics),
		metrics:    metrics,
		config:     config,
	}
}

// NewSession builds the session serving conn against the shared room.
func (o *Orchestrator) NewSession(conn net.Conn) *Session {
	return NewSession(o.log, conn, o.room, o.config)
}

// Serve registers a listener worker accepting on l.
func (o *Orchestrator) Serve(l net.Listener) *Listener {
	listener := NewListener(o.log, l, o.NewSession)
	o.Add(listener)
	return listener
}

func (o *Orchestrator) Add(workers ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.supervisor.Add(workers...)
}

// Start runs the supervised workers and blocks until all of them stopped.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	o.log.Info("Orchestrator stopped")
	return nil
}

// Stop cancels every supervised worker; listeners close and their sessions run cleanup.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}

// Participants is the number of sessions currently in the room.
func (o *Orchestrator) Participants() int {
	return o.room.Participants()
}

// Members is the fan-out set, for samplers.
func (o *Orchestrator) Members() *BroadcastSet {
	return o.members
}

func (o *Orchestrator) Room() *Room {
	return o.room
}
