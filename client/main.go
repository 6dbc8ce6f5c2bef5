package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const dialTimeout = 5 * time.Second

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the relay, renders what it sends and forwards what the user types.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Reach the relay, a refused dial is reported instead of waiting forever.
	conn, err := net.DialTimeout("tcp", config.ServerAddress, dialTimeout)
	if err != nil {
		return exitRuntime, fmt.Errorf("server not online at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Debug("Closing connection...")
		_ = conn.Close()
	}()

	terminal := NewTerminal(os.Stdout, config.Colours)

	// 4. Reception loop, ends when the relay closes the connection.
	disconnected := make(chan error, 1)
	go func() {
		disconnected <- receive(conn, terminal)
	}()

	// 5. Keyboard loop.
	typed := make(chan string)
	go readInput(os.Stdin, typed)

	for {
		select {
		case <-ctx.Done():
			return exitOK, nil
		case err := <-disconnected:
			if err != nil {
				return exitRuntime, fmt.Errorf("connection lost: %w", err)
			}
			terminal.Notice("Disconnected by the server.")
			return exitOK, nil
		case line, ok := <-typed:
			if !ok {
				return exitOK, nil
			}
			quit, err := forward(conn, terminal, line)
			if err != nil {
				return exitRuntime, err
			}
			if quit {
				return exitOK, nil
			}
		}
	}
}

func receive(conn net.Conn, terminal *Terminal) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)
	for scanner.Scan() {
		terminal.Handle(scanner.Text())
	}
	return scanner.Err()
}

func readInput(r io.Reader, typed chan<- string) {
	defer close(typed)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		typed <- scanner.Text()
	}
}

// forward turns one typed line into protocol lines. It never sends an empty line,
// since the relay ends the session on one.
func forward(w io.Writer, terminal *Terminal, line string) (bool, error) {
	if terminal.AwaitingName() {
		if line == "" {
			return false, nil
		}
		terminal.Proposed(line)
		return false, writeLines(w, line)
	}

	input := ParseInput(line)
	switch input.Kind {
	case inputQuit:
		return true, nil
	case inputWho:
		terminal.Who()
		return false, nil
	case inputInvalid:
		terminal.Notice("Usage: /to name[,name...] message")
		return false, nil
	}
	return false, writeLines(w, input.Lines()...)
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return fmt.Errorf("send failed: %w", err)
		}
	}
	return nil
}
