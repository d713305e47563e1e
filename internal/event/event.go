package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from map metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Tournament event types
const (
	TournamentCreated   Type = "tournament.created"
	TournamentRound     Type = "tournament.round_played"
	TournamentCompleted Type = "tournament.completed"
	TournamentDeleted   Type = "tournament.deleted"
	CatalogCardAdded    Type = "catalog.card_added"
)

// AllTypes lists every event type the session service publishes
var AllTypes = []Type{
	TournamentCreated,
	TournamentRound,
	TournamentCompleted,
	TournamentDeleted,
	CatalogCardAdded,
}

// TournamentCreatedPayloadV1 is the typed payload for tournament created events
type TournamentCreatedPayloadV1 struct {
	SessionID       string `json:"session_id"`
	Seed            string `json:"seed"`
	CompetitorCount int    `json:"competitor_count"`
	Restart         bool   `json:"restart"`
	Timestamp       int64  `json:"timestamp"`
}

// RoundPlayedPayloadV1 is the typed payload for round events
type RoundPlayedPayloadV1 struct {
	SessionID string `json:"session_id"`
	Round     int    `json:"round"`
	Battles   int    `json:"battles"`
	Bye       bool   `json:"bye"`
	Survivors int    `json:"survivors"`
	Timestamp int64  `json:"timestamp"`
}

// TournamentCompletedPayloadV1 carries the settlement of a finished tournament
type TournamentCompletedPayloadV1 struct {
	SessionID string        `json:"session_id"`
	Rounds    int           `json:"rounds"`
	Payout    domain.Payout `json:"payout"`
	Timestamp int64         `json:"timestamp"`
}

// SessionPayloadV1 identifies a session for events with nothing else to say
type SessionPayloadV1 struct {
	SessionID string `json:"session_id"`
	Timestamp int64  `json:"timestamp"`
}

// CardAddedPayloadV1 is the typed payload for custom card events
type CardAddedPayloadV1 struct {
	SessionID string      `json:"session_id"`
	Card      domain.Card `json:"card"`
	Timestamp int64       `json:"timestamp"`
}

// NewTournamentCreatedEvent creates a new tournament created event
func NewTournamentCreatedEvent(sessionID, seed string, competitorCount int, restart bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentCreated,
		Payload: TournamentCreatedPayloadV1{
			SessionID:       sessionID,
			Seed:            seed,
			CompetitorCount: competitorCount,
			Restart:         restart,
			Timestamp:       time.Now().Unix(),
		},
	}
}

// NewRoundPlayedEvent creates a new round event from a played round
func NewRoundPlayedEvent(sessionID string, result domain.RoundResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentRound,
		Payload: RoundPlayedPayloadV1{
			SessionID: sessionID,
			Round:     result.Round,
			Battles:   len(result.Battles),
			Bye:       result.Bye != nil,
			Survivors: result.Survivors,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTournamentCompletedEvent creates a new settlement event
func NewTournamentCompletedEvent(sessionID string, rounds int, payout domain.Payout) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentCompleted,
		Payload: TournamentCompletedPayloadV1{
			SessionID: sessionID,
			Rounds:    rounds,
			Payout:    payout,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewTournamentDeletedEvent creates a new session deleted event
func NewTournamentDeletedEvent(sessionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TournamentDeleted,
		Payload: SessionPayloadV1{SessionID: sessionID, Timestamp: time.Now().Unix()},
	}
}

// NewCardAddedEvent creates a new custom card event
func NewCardAddedEvent(sessionID string, card domain.Card) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogCardAdded,
		Payload: CardAddedPayloadV1{SessionID: sessionID, Card: card, Timestamp: time.Now().Unix()},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
