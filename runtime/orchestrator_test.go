package runtime_test

import (
	"bufio"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type lineClient struct {
	t      *testing.T
	conn   net.Conn
	reader *bufio.Reader
}

func connect(t *testing.T, addr string) *lineClient {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetDeadline(time.Now().Add(5 * time.Second))
	return &lineClient{t: t, conn: conn, reader: bufio.NewReader(conn)}
}

func (c *lineClient) send(line string) {
	c.t.Helper()
	_, err := c.conn.Write([]byte(line + "\n"))
	require.NoError(c.t, err)
}

func (c *lineClient) expect(lines ...string) {
	c.t.Helper()
	for _, want := range lines {
		got, err := c.reader.ReadString('\n')
		require.NoError(c.t, err, "waiting for %q", want)
		require.Equal(c.t, want, strings.TrimRight(got, "\r\n"))
	}
}

func Test_Orchestrator_relays_between_two_clients(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a relay listening on a loopback port
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 10*time.Millisecond),
		nil, nil, runtime.DefaultSessionConfig())
	l, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	orchestrator.Serve(l)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan error, 1)
	go func() { stopped <- orchestrator.Start(ctx) }()

	// When alice then bob join
	alice := connect(t, l.Addr().String())
	alice.expect("SUBMITNAME")
	alice.send("alice")
	alice.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	bob := connect(t, l.Addr().String())
	bob.expect("SUBMITNAME")
	bob.send("alice")
	bob.expect("SUBMITNAME")
	bob.send("bob")
	bob.expect("NAMEACCEPTED", "MESSAGE <<< bob has joined the conversation >>>", "NEW", "ONLINEUSERS alice", "ONLINEUSERS bob")
	alice.expect("MESSAGE <<< bob has joined the conversation >>>", "NEW", "ONLINEUSERS alice", "ONLINEUSERS bob")

	// Then broadcasts reach both and directed lines only their recipient
	alice.send("hi all")
	alice.expect("MESSAGE alice: hi all")
	bob.expect("MESSAGE alice: hi all")

	bob.send("alice>>secret")
	alice.expect("MESSAGE bob: secret")
	bob.send("ping")
	bob.expect("MESSAGE bob: ping")
	alice.expect("MESSAGE bob: ping")
	req.Equal(2, orchestrator.Participants())

	// When bob leaves
	_ = bob.conn.Close()
	alice.expect("USERLEFT bob", "MESSAGE <<< bob has left the chat >>>")

	// Then a shutdown stops every worker
	cancel()
	select {
	case err := <-stopped:
		req.NoError(err)
	case <-time.After(3 * time.Second):
		req.Fail("orchestrator did not stop")
	}
	req.Zero(orchestrator.Participants())
}
