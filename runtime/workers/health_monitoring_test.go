package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestHealthMonitoringWorker_ReportsUntilCanceled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a worker polling the participant count
	var polled atomic.Int32
	worker := NewHealthMonitoringWorker(log, func() int {
		polled.Add(1)
		return 2
	}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Then it reports at least twice
	req.Eventually(func() bool { return polled.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)

	// When the context is canceled
	cancel()

	// Then the worker stops without error
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(time.Second):
		req.Fail("worker should stop on cancel")
	}
}
