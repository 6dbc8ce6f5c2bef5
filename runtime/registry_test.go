package runtime

import (
	"chat-relay/domain"
	"chat-relay/mocks"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry_TryRegister_Unique(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()
	alice := mocks.NewMockOutboundChannel(ctrl)
	impostor := mocks.NewMockOutboundChannel(ctrl)

	// Given alice is registered
	req.True(registry.TryRegister("alice", alice))

	// When another session proposes the same name
	accepted := registry.TryRegister("alice", impostor)

	// Then it is refused and the first owner is kept
	req.False(accepted)
	channel, ok := registry.Lookup("alice")
	req.True(ok)
	req.Same(alice, channel)
}

func TestRegistry_Names_AreCaseSensitive(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()

	req.True(registry.TryRegister("alice", mocks.NewMockOutboundChannel(ctrl)))
	req.True(registry.TryRegister("Alice", mocks.NewMockOutboundChannel(ctrl)))
	req.Equal([]domain.DisplayName{"Alice", "alice"}, registry.Names())
}

func TestRegistry_Release(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()

	// Given bob is registered
	req.True(registry.TryRegister("bob", mocks.NewMockOutboundChannel(ctrl)))

	// When bob is released twice
	registry.Release("bob")
	registry.Release("bob")

	// Then the name is free again
	_, ok := registry.Lookup("bob")
	req.False(ok)
	req.Empty(registry.Names())
	req.True(registry.TryRegister("bob", mocks.NewMockOutboundChannel(ctrl)))
}

func TestRegistry_Release_Unknown(t *testing.T) {
	registry := NewRegistry()
	require.NotPanics(t, func() { registry.Release("nobody") })
}

func TestRegistry_Names_Sorted(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()

	for _, name := range []domain.DisplayName{"carol", "alice", "bob"} {
		req.True(registry.TryRegister(name, mocks.NewMockOutboundChannel(ctrl)))
	}
	req.Equal([]domain.DisplayName{"alice", "bob", "carol"}, registry.Names())
}

func TestRegistry_ConcurrentProposals_OneWinner(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()

	const contenders = 64
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	// Given many sessions proposing the same name at once
	for i := 0; i < contenders; i++ {
		channel := mocks.NewMockOutboundChannel(ctrl)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if registry.TryRegister("dave", channel) {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	// Then exactly one of them wins
	req.Equal(int32(1), wins.Load())
	req.Len(registry.Names(), 1)
}

func TestRegistry_ConcurrentDistinctNames(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		channel := mocks.NewMockOutboundChannel(ctrl)
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := domain.DisplayName(fmt.Sprintf("user-%02d", i))
			if registry.TryRegister(name, channel) && i%2 == 0 {
				registry.Release(name)
			}
		}()
	}
	wg.Wait()

	req.Len(registry.Names(), 25)
}
