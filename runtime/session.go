package runtime

import (
	"bufio"
	"chat-relay/domain"
	"chat-relay/sink"
	"context"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionConfig bounds the I/O of a single connection.
type SessionConfig struct {
	OutboundBufferSize int
	WriteTimeout       time.Duration
	MaxLineLength      int
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		OutboundBufferSize: 256,
		WriteTimeout:       10 * time.Second,
		MaxLineLength:      64 * 1024,
	}
}

// Session serves one connection from handshake to termination.
// Its state, name and inbound reader belong to the goroutine running Run; other sessions only
// ever reach it through its outbound channel.
type Session struct {
	id       uuid.UUID
	log      *slog.Logger
	conn     net.Conn
	scanner  *bufio.Scanner
	outbound *sink.ConnSink
	room     *Room
	name     domain.DisplayName
	state    domain.SessionState
	once     sync.Once
}

func NewSession(log *slog.Logger, conn net.Conn, room *Room, config SessionConfig) *Session {
	id := uuid.New()
	log = log.With("session_id", id.String(), "remote_addr", conn.RemoteAddr().String())

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), config.MaxLineLength)

	outbound := sink.NewConnSink(log, conn, config.OutboundBufferSize, config.WriteTimeout).
		OnEvict(room.metrics.SlowConsumerEvicted)

	return &Session{
		id:       id,
		log:      log,
		conn:     conn,
		scanner:  scanner,
		outbound: outbound,
		room:     room,
		state:    domain.AwaitingName,
	}
}

func (s *Session) ID() uuid.UUID { return s.id }

// Run blocks until the client goes away or ctx is canceled.
// Cleanup runs on every exit path, panics included.
func (s *Session) Run(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.Close)
	defer stop()
	defer s.terminate()

	s.room.metrics.ConnectionOpened()
	s.log.Debug("Session started")

	if !s.negotiateName() {
		return
	}

	s.state = domain.Active
	s.room.Join(s.name, s.outbound)

	for {
		line, ok := s.readLine()
		if !ok || line == "" {
			return
		}
		switch cmd := domain.ParseCommand(line).(type) {
		case domain.DirectMessageCommand:
			s.room.Direct(s.name, cmd.Recipient, cmd.Content)
		case domain.PostMessageCommand:
			s.room.Broadcast(s.name, cmd.Content)
		}
	}
}

// Close drops the connection. The blocked read fails and Run terminates the session.
func (s *Session) Close() {
	s.outbound.Close()
}

// negotiateName prompts until a name is committed. It returns false if the client left first.
func (s *Session) negotiateName() bool {
	for {
		if err := s.outbound.Send(domain.SubmitName); err != nil {
			return false
		}
		proposed, ok := s.readLine()
		if !ok {
			return false
		}
		name, err := domain.NewDisplayName(proposed)
		if err != nil {
			s.room.metrics.NameRejected()
			s.log.Debug("Name refused", "proposed", proposed, "error", err)
			continue
		}
		if !s.room.Claim(name, s.outbound) {
			s.log.Debug("Name already taken", "name", name)
			continue
		}
		s.name = name
		s.log = s.log.With("name", name.String())
		return true
	}
}

func (s *Session) readLine() (string, bool) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	if err := s.scanner.Err(); err != nil {
		s.log.Debug("Read failed", "error", err)
	}
	return "", false
}

// terminate releases everything the session registered, exactly once.
func (s *Session) terminate() {
	s.once.Do(func() {
		if s.state == domain.Active {
			s.room.Leave(s.name, s.outbound)
		} else if s.name != "" {
			// Committed but the join sequence never ran.
			s.room.registry.Release(s.name)
			s.room.metrics.ParticipantLeft()
		}
		s.state = domain.Terminated
		s.outbound.Close()
		s.room.metrics.ConnectionClosed()
		s.log.Debug("Session terminated")
	})
}
