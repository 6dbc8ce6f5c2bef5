package sink

import (
	"bufio"
	"chat-relay/contract"
	"chat-relay/errors"
	goerrors "errors"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"
)

var _ contract.OutboundChannel = (*ConnSink)(nil)

// ConnSink is the outbound channel of one connection.
// Send only appends to a queue: a dedicated goroutine writes queued lines to the connection in FIFO order,
// so a slow or dead client never stalls the session that is delivering to it.
// A client is dropped for making no write progress within the write timeout, never for the depth
// of its queue: a roster resend to a large room is a burst, not a sign of slowness.
type ConnSink struct {
	log          *slog.Logger
	conn         net.Conn
	mu           sync.Mutex
	ready        *sync.Cond
	queue        []string
	closed       bool
	cause        error
	done         chan struct{}
	stopped      chan struct{}
	closeOnce    sync.Once
	softLimit    int
	writeTimeout time.Duration
	onEvict      func()
}

// NewConnSink starts the writer of conn. softLimit is the queue depth considered normal;
// it only feeds capacity reporting.
func NewConnSink(log *slog.Logger, conn net.Conn, softLimit int, writeTimeout time.Duration) *ConnSink {
	s := &ConnSink{
		log:          log,
		conn:         conn,
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
		softLimit:    softLimit,
		writeTimeout: writeTimeout,
	}
	s.ready = sync.NewCond(&s.mu)
	go s.writeLoop()
	return s
}

// OnEvict registers a callback run once when the sink drops its client for being too slow.
func (s *ConnSink) OnEvict(fn func()) *ConnSink {
	s.onEvict = fn
	return s
}

// Send enqueues one line; the newline is added by the sink. It never blocks on the client.
func (s *ConnSink) Send(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.cause
	}
	s.queue = append(s.queue, line)
	s.ready.Signal()
	return nil
}

// Close stops the writer and closes the connection. Safe to call many times.
func (s *ConnSink) Close() {
	s.shutdown(errors.ErrChannelClosed)
}

func (s *ConnSink) shutdown(cause error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		s.cause = cause
		s.queue = nil
		s.ready.Broadcast()
		s.mu.Unlock()
		close(s.done)
		_ = s.conn.Close()
	})
}

// Pending is the number of lines queued but not yet handed to the connection.
func (s *ConnSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Capacity is the soft queue limit; Pending may exceed it during bursts.
func (s *ConnSink) Capacity() int {
	return s.softLimit
}

// Done is closed once the sink no longer accepts lines.
func (s *ConnSink) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the writer goroutine has exited.
func (s *ConnSink) Wait() {
	<-s.stopped
}

// next takes every queued line at once, blocking while the queue is empty.
func (s *ConnSink) next() ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) == 0 && !s.closed {
		s.ready.Wait()
	}
	if s.closed {
		return nil, false
	}
	batch := s.queue
	s.queue = nil
	return batch, true
}

func (s *ConnSink) writeLoop() {
	defer close(s.stopped)
	w := bufio.NewWriter(s.conn)
	for {
		batch, ok := s.next()
		if !ok {
			return
		}
		// Each line gets a fresh deadline: a client reading steadily never times out.
		for _, line := range batch {
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
			_, _ = w.WriteString(line)
			if err := w.WriteByte('\n'); err != nil {
				s.fail(err)
				return
			}
		}
		if err := w.Flush(); err != nil {
			s.fail(err)
			return
		}
	}
}

func (s *ConnSink) fail(err error) {
	if goerrors.Is(err, os.ErrDeadlineExceeded) {
		s.log.Warn("Client not reading, dropping it", "remote_addr", s.conn.RemoteAddr().String(), "timeout", s.writeTimeout)
		if s.onEvict != nil {
			s.onEvict()
		}
		s.shutdown(errors.ErrSlowConsumer)
		return
	}
	s.log.Debug("Write to client failed", "remote_addr", s.conn.RemoteAddr().String(), "error", err)
	s.shutdown(errors.ErrChannelClosed)
}
