//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// OutboundChannel is a place to write lines intended for one client.
// Send must never block the caller; lines sent to one channel are delivered in call order.
type OutboundChannel interface {
	Send(line string) error
}

// INameRegistry maps each display name in use to its session's channel.
type INameRegistry interface {
	TryRegister(name domain.DisplayName, channel OutboundChannel) bool
	Release(name domain.DisplayName)
	Lookup(name domain.DisplayName) (OutboundChannel, bool)
	Names() []domain.DisplayName
}

// IBroadcastSet holds every channel eligible for fan-out delivery.
type IBroadcastSet interface {
	Add(channel OutboundChannel)
	Remove(channel OutboundChannel)
	ForEach(fn func(channel OutboundChannel))
	Len() int
}

type IModerator interface {
	Censor(content string) string
}
