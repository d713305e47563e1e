package sse

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TCGTourney_Go/internal/event"
)

const waitFor = 2 * time.Second

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func register(t *testing.T, hub *Hub, filter Filter) *Client {
	t.Helper()
	before := hub.ClientCount()
	client, ok := hub.Register(filter)
	require.True(t, ok)
	require.Eventually(t, func() bool { return hub.ClientCount() == before+1 }, waitFor, time.Millisecond)
	return client
}

func receive(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		return evt
	case <-time.After(waitFor):
		t.Fatal("no event received")
		return Event{}
	}
}

func assertQuiet(t *testing.T, client *Client) {
	t.Helper()
	select {
	case evt := <-client.EventChannel:
		t.Fatalf("unexpected event %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Filters(t *testing.T) {
	hub := startHub(t)

	all := register(t, hub, Filter{})
	rounds := register(t, hub, Filter{Types: []string{string(event.TournamentRound), " "}})
	sessionA := register(t, hub, Filter{SessionID: "a"})

	hub.Broadcast(string(event.TournamentCreated), "b", "created b")

	got := receive(t, all)
	assert.Equal(t, string(event.TournamentCreated), got.Type)
	assert.Equal(t, "b", got.SessionID)
	assert.Equal(t, "created b", got.Payload)
	assert.NotEmpty(t, got.ID)
	assertQuiet(t, rounds)
	assertQuiet(t, sessionA)

	hub.Broadcast(string(event.TournamentRound), "a", "round a")

	assert.Equal(t, "round a", receive(t, all).Payload)
	assert.Equal(t, "round a", receive(t, rounds).Payload)
	assert.Equal(t, "round a", receive(t, sessionA).Payload)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	client := register(t, hub, Filter{})

	hub.Unregister(client.ID)

	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, waitFor, time.Millisecond)
	_, open := <-client.EventChannel
	assert.False(t, open)
}

func TestHub_Stop(t *testing.T) {
	hub := NewHub()
	hub.Start()
	client := register(t, hub, Filter{})

	hub.Stop()
	hub.Stop()

	_, open := <-client.EventChannel
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())

	_, ok := hub.Register(Filter{})
	assert.False(t, ok)
	hub.Unregister(client.ID)
}

func TestHub_RegisterRacingStop(t *testing.T) {
	for i := 0; i < 50; i++ {
		hub := NewHub()
		hub.Start()

		var (
			mu       sync.Mutex
			accepted []*Client
			wg       sync.WaitGroup
		)
		for j := 0; j < 8; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if client, ok := hub.Register(Filter{}); ok {
					mu.Lock()
					accepted = append(accepted, client)
					mu.Unlock()
				}
			}()
		}
		hub.Stop()
		wg.Wait()

		// Every client the hub accepted is closed by Stop
		for _, client := range accepted {
			select {
			case _, open := <-client.EventChannel:
				require.False(t, open)
			case <-time.After(waitFor):
				t.Fatal("accepted client left open after Stop")
			}
		}
		assert.Equal(t, 0, hub.ClientCount())
	}
}

func TestSubscriber_ForwardsBusEvents(t *testing.T) {
	hub := startHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(hub).Register(bus)

	client := register(t, hub, Filter{SessionID: "s-1"})

	require.NoError(t, bus.Publish(context.Background(), event.NewTournamentDeletedEvent("s-2")))
	require.NoError(t, bus.Publish(context.Background(), event.NewTournamentCreatedEvent("s-1", "TEST", 2, false)))

	got := receive(t, client)
	assert.Equal(t, string(event.TournamentCreated), got.Type)
	assert.Equal(t, "s-1", got.SessionID)
	payload, ok := got.Payload.(event.TournamentCreatedPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "TEST", payload.Seed)
	assertQuiet(t, client)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "tournament.created", Timestamp: 5, Payload: map[string]int{"n": 2}})
	require.NoError(t, err)
	assert.Equal(t,
		"id: 1\nevent: tournament.created\ndata: {\"id\":\"1\",\"type\":\"tournament.created\",\"timestamp\":5,\"payload\":{\"n\":2}}\n\n",
		string(msg))

	msg, err = FormatSSEMessage(Event{Type: EventTypeKeepalive, Timestamp: 5})
	require.NoError(t, err)
	assert.Equal(t, "event: keepalive\ndata: {\"id\":\"\",\"type\":\"keepalive\",\"timestamp\":5,\"payload\":null}\n\n", string(msg))
}
