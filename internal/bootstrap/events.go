package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/metrics"
	"github.com/osse101/TCGTourney_Go/internal/sse"
)

// InitializeEventSystem creates the in-process event bus and subscribes the
// metrics collector to every tournament event. When hub is non-nil the
// stream subscriber is registered too.
func InitializeEventSystem(hub *sse.Hub) (event.Bus, error) {
	eventBus := event.NewMemoryBus()

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if hub != nil {
		sse.NewSubscriber(hub).Register(eventBus)
	}
	slog.Info(LogMsgEventSystemInitialized)

	return eventBus, nil
}
