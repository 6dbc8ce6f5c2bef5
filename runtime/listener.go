package runtime

import (
	"chat-relay/contract"
	"context"
	goerrors "errors"
	"log/slog"
	"net"
	"sync"
	"time"
)

const maxAcceptDelay = time.Second

var _ contract.Worker = (*Listener)(nil)

// SessionFactory builds the session serving a freshly accepted connection.
type SessionFactory func(conn net.Conn) *Session

// Listener accepts connections and runs one Session per connection in its own goroutine.
// Sessions share nothing but the room handed to them by the factory.
type Listener struct {
	log        *slog.Logger
	listener   net.Listener
	newSession SessionFactory
	sessions   sync.WaitGroup
}

func NewListener(log *slog.Logger, listener net.Listener, newSession SessionFactory) *Listener {
	return &Listener{log: log, listener: listener, newSession: newSession}
}

func (l *Listener) Addr() net.Addr {
	return l.listener.Addr()
}

// Run accepts until ctx is canceled or the listener is closed, then waits for live sessions.
// A failed Accept is retried with a growing delay; it never ends the loop.
func (l *Listener) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { _ = l.listener.Close() })
	defer stop()

	l.log.Info("Accepting connections", "address", l.listener.Addr().String())
	var delay time.Duration
	for {
		conn, err := l.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || goerrors.Is(err, net.ErrClosed) {
				l.log.Info("Listener stopped, waiting for sessions")
				l.sessions.Wait()
				return nil
			}
			delay = nextAcceptDelay(delay)
			l.log.Warn("Accept failed, retrying", "error", err, "delay", delay)
			select {
			case <-ctx.Done():
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		session := l.newSession(conn)
		l.sessions.Add(1)
		go l.serve(ctx, session)
	}
}

// serve isolates a session: a panic in one connection must not take the relay down.
func (l *Listener) serve(ctx context.Context, session *Session) {
	defer l.sessions.Done()
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("Session panicked", "session_id", session.ID().String(), "panic", r)
		}
	}()
	session.Run(ctx)
}

func nextAcceptDelay(current time.Duration) time.Duration {
	if current == 0 {
		return 5 * time.Millisecond
	}
	return min(current*2, maxAcceptDelay)
}
