package metrics

import (
	"context"

	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/logger"
)

// EventMetricsCollector subscribes to tournament events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TournamentCreated:
		TournamentsCreated.Inc()

	case event.TournamentRound:
		payload, err := event.DecodePayload[event.RoundPlayedPayloadV1](evt.Payload)
		if err != nil {
			return e.invalid(ctx, evt, err)
		}
		RoundsPlayed.Inc()
		BattlesResolved.Add(float64(payload.Battles))
		if payload.Bye {
			ByesAwarded.Inc()
		}

	case event.TournamentCompleted:
		payload, err := event.DecodePayload[event.TournamentCompletedPayloadV1](evt.Payload)
		if err != nil {
			return e.invalid(ctx, evt, err)
		}
		TournamentsCompleted.Inc()
		PrizePaid.WithLabelValues(PlaceChampion).Add(payload.Payout.Champion.Amount.InexactFloat64())
		if payload.Payout.RunnerUp != nil {
			PrizePaid.WithLabelValues(PlaceRunnerUp).Add(payload.Payout.RunnerUp.Amount.InexactFloat64())
		}
		PlatformCut.Add(payload.Payout.PlatformCut.InexactFloat64())

	case event.CatalogCardAdded:
		payload, err := event.DecodePayload[event.CardAddedPayloadV1](evt.Payload)
		if err != nil {
			return e.invalid(ctx, evt, err)
		}
		cardType := CustomCardType
		if payload.Card.Type.IsBase() {
			cardType = string(payload.Card.Type)
		}
		CustomCardsAdded.WithLabelValues(cardType).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) invalid(ctx context.Context, evt event.Event, err error) error {
	logger.FromContext(ctx).Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
	EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	return nil
}
