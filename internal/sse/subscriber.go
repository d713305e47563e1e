package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/TCGTourney_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Register subscribes to every tournament event type
func (s *Subscriber) Register(bus event.Bus) {
	types := make([]string, 0, len(event.AllTypes))
	for _, t := range event.AllTypes {
		bus.Subscribe(t, s.HandleEvent)
		types = append(types, string(t))
	}
	slog.Info(LogMsgSubscribed, "types", types)
}

// sessionRef picks the session id out of any tournament payload
type sessionRef struct {
	SessionID string `json:"session_id"`
}

// HandleEvent forwards the event payload unchanged. Payloads without a
// session id still reach unfiltered clients.
func (s *Subscriber) HandleEvent(_ context.Context, evt event.Event) error {
	ref, err := event.DecodePayload[sessionRef](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgEventBroadcast, "event_type", evt.Type, "error", err)
	}

	s.hub.Broadcast(string(evt.Type), ref.SessionID, evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "session_id", ref.SessionID)
	return nil
}
