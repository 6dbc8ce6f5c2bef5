package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"slices"
	"sync"

	"github.com/samber/lo"
)

var _ contract.INameRegistry = (*Registry)(nil)

// Registry maps every display name in use to the outbound channel of the session holding it.
// A name is present if and only if a session currently holds it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.DisplayName]contract.OutboundChannel
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[domain.DisplayName]contract.OutboundChannel),
	}
}

// TryRegister commits name for channel unless another session already holds it.
// Check and insert happen under the same lock: among concurrent proposals of one name, one wins.
func (r *Registry) TryRegister(name domain.DisplayName, channel contract.OutboundChannel) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sessions[name]; taken {
		return false
	}
	r.sessions[name] = channel
	return true
}

// Release frees name. Releasing an unknown name is a no-op.
func (r *Registry) Release(name domain.DisplayName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, name)
}

func (r *Registry) Lookup(name domain.DisplayName) (contract.OutboundChannel, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	channel, ok := r.sessions[name]
	return channel, ok
}

// Names returns the names in use, sorted.
func (r *Registry) Names() []domain.DisplayName {
	r.mu.RLock()
	names := lo.Keys(r.sessions)
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
