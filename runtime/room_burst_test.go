package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRoom_LargeRoom_RosterBurstKeepsReadingClients(t *testing.T) {
	if testing.Short() {
		t.Skip("joins several hundred sessions")
	}
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelWarn)
	registry := NewRegistry()
	members := NewBroadcastSet()
	room := NewRoom(log, registry, members, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Given more participants than the default outbound soft limit, each reading as fast as it can
	joiners := DefaultSessionConfig().OutboundBufferSize + 100
	for i := 0; i < joiners; i++ {
		server, client := net.Pipe()
		t.Cleanup(func() { _ = client.Close() })
		go func() { _, _ = io.Copy(io.Discard, client) }()

		session := NewSession(log, server, room, DefaultSessionConfig())
		go session.Run(ctx)

		// When they join one after another
		_ = client.SetWriteDeadline(time.Now().Add(2 * time.Second))
		_, err := client.Write([]byte(fmt.Sprintf("user-%03d\n", i)))
		req.NoError(err)
		req.Eventually(func() bool { return room.Participants() == i+1 }, 5*time.Second, time.Millisecond)
	}

	// Then nobody was dropped by the roster resends
	time.Sleep(100 * time.Millisecond)
	req.Equal(joiners, room.Participants())
	req.Len(registry.Names(), joiners)
}
