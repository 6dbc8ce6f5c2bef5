package observability

import (
	"context"
	goerrors "errors"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes the relay metrics on /metrics as a supervised worker.
type MetricsServer struct {
	log     *slog.Logger
	address string
	metrics *Metrics
}

func NewMetricsServer(log *slog.Logger, address string, metrics *Metrics) *MetricsServer {
	return &MetricsServer{log: log, address: address, metrics: metrics}
}

func (s *MetricsServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	server := &http.Server{
		Addr:              s.address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Serving metrics", "address", s.address)
		if err := server.ListenAndServe(); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warn("Metrics server shutdown failed", "error", err)
		}
		return nil
	case err := <-errChan:
		return err
	}
}
