package runtime

import (
	"chat-relay/contract"
	"sync"

	"github.com/samber/lo"
)

var _ contract.IBroadcastSet = (*BroadcastSet)(nil)

// BroadcastSet is the collection of channels that receive fan-out deliveries.
// Membership is independent of naming: a channel joins once its session's name is committed.
type BroadcastSet struct {
	mu      sync.RWMutex
	members map[contract.OutboundChannel]struct{}
}

func NewBroadcastSet() *BroadcastSet {
	return &BroadcastSet{members: make(map[contract.OutboundChannel]struct{})}
}

func (b *BroadcastSet) Add(channel contract.OutboundChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.members[channel] = struct{}{}
}

func (b *BroadcastSet) Remove(channel contract.OutboundChannel) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.members, channel)
}

// ForEach applies fn to a snapshot of the members taken at call time.
// The lock is not held while fn runs, so fn may itself add or remove members.
func (b *BroadcastSet) ForEach(fn func(channel contract.OutboundChannel)) {
	b.mu.RLock()
	snapshot := lo.Keys(b.members)
	b.mu.RUnlock()

	for _, channel := range snapshot {
		fn(channel)
	}
}

func (b *BroadcastSet) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.members)
}
