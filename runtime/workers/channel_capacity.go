package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

// BufferedChannel is an outbound channel able to report how full its queue is.
type BufferedChannel interface {
	Pending() int
	Capacity() int
}

// ChannelCapacityWorker periodically samples the outbound queues of every member.
// Queues may grow past their soft limit during bursts; a queue staying above the
// threshold is logged once per sample.
type ChannelCapacityWorker struct {
	log                  *slog.Logger
	members              contract.IBroadcastSet
	metrics              *observability.Metrics
	metricInterval       time.Duration
	lowCapacityThreshold int
}

func NewChannelCapacityWorker(log *slog.Logger,
	members contract.IBroadcastSet, metrics *observability.Metrics,
	metricInterval time.Duration, lowCapacityThreshold int) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:                  log,
		members:              members,
		metrics:              metrics,
		metricInterval:       metricInterval,
		lowCapacityThreshold: lowCapacityThreshold,
	}
}

func (w *ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping capacity sampling")
			return nil
		case <-ticker.C:
			w.metrics.OutboundFill(w.Sample())
		}
	}
}

// Sample returns the highest queue fill across members, in percent.
func (w *ChannelCapacityWorker) Sample() int {
	highest := 0
	w.members.ForEach(func(channel contract.OutboundChannel) {
		buffered, ok := channel.(BufferedChannel)
		if !ok || buffered.Capacity() == 0 {
			return
		}
		fill := buffered.Pending() * 100 / buffered.Capacity()
		if fill >= w.lowCapacityThreshold {
			w.log.Warn("Outbound queue nearly full", "fill_percent", fill)
		}
		highest = max(highest, fill)
	})
	return highest
}
