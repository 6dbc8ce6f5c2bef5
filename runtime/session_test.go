package runtime

import (
	"bufio"
	"chat-relay/mocks"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pipeClient plays the remote end of a session over net.Pipe.
type pipeClient struct {
	t      *testing.T
	conn   net.Conn
	reader *bufio.Reader
}

func (c *pipeClient) send(line string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
	_, err := c.conn.Write([]byte(line + "\n"))
	require.NoError(c.t, err)
}

func (c *pipeClient) expect(lines ...string) {
	c.t.Helper()
	for _, want := range lines {
		_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		got, err := c.reader.ReadString('\n')
		require.NoError(c.t, err, "waiting for %q", want)
		require.Equal(c.t, want, strings.TrimRight(got, "\r\n"))
	}
}

func (c *pipeClient) expectClosed() {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err := c.reader.ReadString('\n')
	require.Error(c.t, err)
}

// startSession runs a session on one end of a pipe and returns the other end.
func startSession(t *testing.T, ctx context.Context, room *Room) (*pipeClient, *Session, <-chan struct{}) {
	t.Helper()
	server, client := net.Pipe()
	t.Cleanup(func() { _ = client.Close() })
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	session := NewSession(log, server, room, DefaultSessionConfig())
	done := make(chan struct{})
	go func() {
		session.Run(ctx)
		close(done)
	}()
	return &pipeClient{t: t, conn: client, reader: bufio.NewReader(client)}, session, done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "session did not terminate")
	}
}

func TestSession_Handshake(t *testing.T) {
	req := require.New(t)
	room, registry, members := newTestRoom(t)
	client, _, done := startSession(t, context.Background(), room)

	// When the client answers the prompt with a free name
	client.expect("SUBMITNAME")
	client.send("alice")

	// Then the join sequence follows
	client.expect(
		"NAMEACCEPTED",
		"MESSAGE <<< alice has joined the conversation >>>",
		"NEW",
		"ONLINEUSERS alice",
	)
	req.Equal(1, members.Len())
	_, ok := registry.Lookup("alice")
	req.True(ok)

	// When the client disconnects
	_ = client.conn.Close()
	waitDone(t, done)

	// Then its name and membership are gone
	_, ok = registry.Lookup("alice")
	req.False(ok)
	req.Zero(members.Len())
}

func TestSession_Handshake_RepromptsUntilValid(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room, registry, _ := newTestRoom(t)

	// Given alice is held by another session
	req.True(registry.TryRegister("alice", mocks.NewMockOutboundChannel(ctrl)))
	client, _, _ := startSession(t, context.Background(), room)

	// When the client proposes a taken name, a blank name and a name with the delimiter
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("SUBMITNAME")
	client.send("   ")
	client.expect("SUBMITNAME")
	client.send("a>>b")
	client.expect("SUBMITNAME")

	// Then only a valid free name gets through, trimmed
	client.send("  bob ")
	client.expect(
		"NAMEACCEPTED",
		"MESSAGE <<< bob has joined the conversation >>>",
		"NEW",
		"ONLINEUSERS alice",
		"ONLINEUSERS bob",
	)
}

func TestSession_Broadcast_EchoesToSender(t *testing.T) {
	room, _, _ := newTestRoom(t)
	client, _, _ := startSession(t, context.Background(), room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	// When alice posts a line with a trailing carriage return
	client.send("hello world\r")

	// Then she sees it herself, without the carriage return
	client.expect("MESSAGE alice: hello world")
}

func TestSession_Direct(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room, registry, _ := newTestRoom(t)

	// Given bob is connected elsewhere
	bob := mocks.NewMockOutboundChannel(ctrl)
	req.True(registry.TryRegister("bob", bob))
	delivered := make(chan struct{})
	bob.EXPECT().Send("MESSAGE alice: hi >> there").DoAndReturn(func(string) error {
		close(delivered)
		return nil
	})

	client, _, _ := startSession(t, context.Background(), room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice", "ONLINEUSERS bob")

	// When alice sends a directed line, the body keeps any further delimiter
	client.send("bob>>hi >> there")

	// Then bob receives it
	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		req.Fail("directed message not delivered")
	}

	// And alice gets no echo: her next line is the broadcast she sends now
	client.send("ping")
	client.expect("MESSAGE alice: ping")
}

func TestSession_Direct_UnknownRecipientDropped(t *testing.T) {
	room, _, _ := newTestRoom(t)
	client, _, _ := startSession(t, context.Background(), room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	// When alice writes to nobody
	client.send("zed>>anyone there?")
	client.send("ping")

	// Then nothing comes back for the dropped message
	client.expect("MESSAGE alice: ping")
}

func TestSession_EmptyLineTerminates(t *testing.T) {
	req := require.New(t)
	room, registry, _ := newTestRoom(t)
	client, _, done := startSession(t, context.Background(), room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	// When alice sends an empty line
	client.send("")

	// Then her session ends and the relay closes the connection
	waitDone(t, done)
	client.expectClosed()
	req.Empty(registry.Names())
}

func TestSession_Terminate_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room, _, members := newTestRoom(t)

	// Given bob observing the room
	bob := mocks.NewMockOutboundChannel(ctrl)
	members.Add(bob)
	bob.EXPECT().Send(gomock.Any()).Return(nil).Times(3)
	gomock.InOrder(
		bob.EXPECT().Send("USERLEFT alice").Return(nil),
		bob.EXPECT().Send("MESSAGE <<< alice has left the chat >>>").Return(nil),
	)

	client, session, done := startSession(t, context.Background(), room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	// When the connection drops and cleanup is triggered again
	_ = client.conn.Close()
	waitDone(t, done)
	session.terminate()
	session.Close()

	// Then bob was told exactly once
	req.Equal(1, members.Len())
}

func TestSession_ContextCancel(t *testing.T) {
	req := require.New(t)
	room, registry, _ := newTestRoom(t)
	ctx, cancel := context.WithCancel(context.Background())
	client, _, done := startSession(t, ctx, room)
	client.expect("SUBMITNAME")
	client.send("alice")
	client.expect("NAMEACCEPTED", "MESSAGE <<< alice has joined the conversation >>>", "NEW", "ONLINEUSERS alice")

	// When the relay shuts down
	cancel()

	// Then the session ends and its connection is closed
	waitDone(t, done)
	client.expectClosed()
	req.Empty(registry.Names())
}

func TestSession_DisconnectDuringHandshake(t *testing.T) {
	req := require.New(t)
	room, registry, members := newTestRoom(t)
	client, _, done := startSession(t, context.Background(), room)

	// When the client leaves before naming itself
	client.expect("SUBMITNAME")
	_ = client.conn.Close()

	// Then nothing was registered and nobody is told
	waitDone(t, done)
	req.Empty(registry.Names())
	req.Zero(members.Len())
}
