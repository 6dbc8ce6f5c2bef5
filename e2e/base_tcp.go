package e2e

import (
	"bufio"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

const lineTimeout = 5 * time.Second

type BaseTcpSuite struct {
	suite.Suite
	Config  Config
	Metrics *observability.Metrics
	cancel  context.CancelFunc
	stopped chan error
}

// SetupSuite loads the environment configuration and starts a local relay when no address is given
func (s *BaseTcpSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayAddr != "" {
		return
	}

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	s.Require().NoError(err)
	s.Metrics = observability.NewMetrics("e2e")
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 50*time.Millisecond),
		moderator, s.Metrics, runtime.DefaultSessionConfig())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	s.Require().NoError(err)
	orchestrator.Serve(listener)
	s.Config.RelayAddr = listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.stopped = make(chan error, 1)
	go func() { s.stopped <- orchestrator.Start(ctx) }()
}

func (s *BaseTcpSuite) TearDownSuite() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	select {
	case err := <-s.stopped:
		s.NoError(err)
	case <-time.After(lineTimeout):
		s.Fail("relay did not stop")
	}
}

// Step prints a colorized header for a scenario step
func (s *BaseTcpSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Client is one scripted participant talking raw lines to the relay.
type Client struct {
	suite  *BaseTcpSuite
	label  string
	conn   net.Conn
	reader *bufio.Reader
}

// Connect dials the relay and waits for the first SUBMITNAME
func (s *BaseTcpSuite) Connect(label string) *Client {
	conn, err := net.DialTimeout("tcp", s.Config.RelayAddr, lineTimeout)
	s.Require().NoError(err, "Failed to connect to relay at "+s.Config.RelayAddr)
	c := &Client{suite: s, label: label, conn: conn, reader: bufio.NewReader(conn)}
	s.T().Cleanup(c.Close)
	c.Expect("SUBMITNAME")
	return c
}

func (c *Client) Send(line string) {
	c.log(">>", line)
	_ = c.conn.SetWriteDeadline(time.Now().Add(lineTimeout))
	_, err := fmt.Fprintf(c.conn, "%s\n", line)
	c.suite.Require().NoError(err)
}

// Expect reads the next lines and checks them in order
func (c *Client) Expect(lines ...string) {
	for _, want := range lines {
		c.suite.Require().Equal(want, c.Next(), "%s waiting for %q", c.label, want)
	}
}

// ExpectOneOf reads the next len(lines) lines and checks them regardless of order
func (c *Client) ExpectOneOf(lines ...string) {
	got := make([]string, 0, len(lines))
	for range lines {
		got = append(got, c.Next())
	}
	c.suite.Require().ElementsMatch(lines, got)
}

func (c *Client) Next() string {
	_ = c.conn.SetReadDeadline(time.Now().Add(lineTimeout))
	line, err := c.reader.ReadString('\n')
	c.suite.Require().NoError(err, "%s read failed", c.label)
	line = strings.TrimRight(line, "\r\n")
	c.log("<<", line)
	return line
}

// Await skips lines until want arrives. Presence traffic from other participants
// may interleave with the lines a scenario cares about.
func (c *Client) Await(want string) {
	for {
		if c.Next() == want {
			return
		}
	}
}

// ExpectClosed checks that the relay ended the connection, ignoring lines still in flight
func (c *Client) ExpectClosed() {
	deadline := time.Now().Add(lineTimeout)
	_ = c.conn.SetReadDeadline(deadline)
	for time.Now().Before(deadline) {
		if _, err := c.reader.ReadString('\n'); err != nil {
			return
		}
	}
	c.suite.Fail(c.label + " connection still open")
}

func (c *Client) Close() {
	_ = c.conn.Close()
}

func (c *Client) log(direction, line string) {
	if c.suite.Config.DebugLines {
		c.suite.T().Logf("%s %s %s", c.label, direction, line)
	}
}
