package telemetry

import (
	"context"
	"time"

	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/models"
)

// DefaultHeartbeatInterval is the delay between repeated usage events when
// the caller does not supply a positive interval.
const DefaultHeartbeatInterval = 15 * time.Minute

// Heartbeat re-reports the launch event on a ticker while the server is
// running. It satisfies the workers.Worker interface.
type Heartbeat struct {
	reporter Reporter
	event    models.UsageEvent
	interval time.Duration

	logger *logger.Logger
}

// NewHeartbeat creates a Heartbeat that delivers event through reporter every
// interval. If interval is zero or negative it defaults to
// [DefaultHeartbeatInterval]. The worker is idle until Run is called.
func NewHeartbeat(reporter Reporter, event models.UsageEvent, interval time.Duration, logger *logger.Logger) *Heartbeat {
	if interval <= 0 {
		interval = DefaultHeartbeatInterval
	}

	return &Heartbeat{reporter: reporter, event: event, interval: interval, logger: logger}
}

// Run reports the launch event immediately, then once per interval until ctx
// is cancelled. Delivery failures are logged at debug level and never stop
// the loop.
func (h *Heartbeat) Run(ctx context.Context) {
	h.report(ctx)

	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.report(ctx)
		}
	}
}

func (h *Heartbeat) report(ctx context.Context) {
	if err := h.reporter.Report(ctx, h.event); err != nil {
		h.logger.Debug().Err(err).Msg("usage report failed")
	}
}
