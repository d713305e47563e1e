package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/metrics"
)

// MockEventBus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// published lists the event types the mock received, in order
func (m *MockEventBus) published() []event.Type {
	var types []event.Type
	for _, call := range m.Calls {
		if call.Method == "Publish" {
			types = append(types, call.Arguments.Get(1).(event.Event).Type)
		}
	}
	return types
}

func newTestService(t *testing.T) (Service, *MockEventBus) {
	t.Helper()
	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(Config{CacheSize: 8, TTL: time.Minute}, catalog.Default(), bus)
	t.Cleanup(func() { _ = svc.Shutdown(context.Background()) })
	return svc, bus
}

func exampleParams(seed string, count int) CreateParams {
	return CreateParams{
		Seed:            seed,
		CompetitorCount: count,
		EntryFee:        decimal.NewFromInt(1),
		RakePercent:     decimal.NewFromInt(10),
	}
}

func TestCreate(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "TEST", v.Tournament.Seed)
	assert.Equal(t, domain.TournamentStateAwaitingPairing, v.Tournament.State)
	assert.Len(t, v.Tournament.Competitors, 2)
	assert.Len(t, v.Catalog, 5)
	assert.Equal(t, []event.Type{event.TournamentCreated}, bus.published())
}

func TestCreate_DefaultSeed(t *testing.T) {
	svc, _ := newTestService(t)

	v, err := svc.Create(context.Background(), exampleParams("   ", 3))
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed, v.Tournament.Seed)
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		params CreateParams
		want   error
	}{
		{name: "no competitors", params: exampleParams("TEST", 0), want: domain.ErrInvalidConfiguration},
		{
			name: "rake out of range",
			params: CreateParams{
				Seed: "TEST", CompetitorCount: 2, EntryFee: decimal.NewFromInt(1), RakePercent: decimal.NewFromInt(150),
			},
			want: domain.ErrInvalidConfiguration,
		},
		{
			name: "invalid custom card",
			params: CreateParams{
				Seed: "TEST", CompetitorCount: 2,
				CustomCards: []domain.Card{{Name: "Ghost", Type: "Psychic", HP: 0, AttackName: "Boo"}},
			},
			want: domain.ErrInvalidCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, bus := newTestService(t)
			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, bus.published())
		})
	}
}

func TestCustomCardsStayInTheirSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	params := exampleParams("TEST", 2)
	params.CustomCards = []domain.Card{{Name: "Volt Mouse", Type: "electric", HP: 60, AttackName: "Zap", Damage: 20, EnergyCost: 1}}
	withCustom, err := svc.Create(ctx, params)
	require.NoError(t, err)
	plain, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)

	assert.Len(t, withCustom.Catalog, 6)
	assert.Equal(t, domain.CardTypeElectric, withCustom.Catalog[5].Type)
	assert.Len(t, plain.Catalog, 5)
	assert.Len(t, svc.BaseCards(ctx), 5)
}

func TestRunRound_ExampleOne(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)

	result, err := svc.RunRound(ctx, v.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.TournamentStateComplete, result.State)
	require.NotNil(t, result.Payout)
	assert.Equal(t, "Trainer-2", result.Payout.Champion.Name)
	assert.True(t, decimal.RequireFromString("1.26").Equal(result.Payout.Champion.Amount))
	assert.True(t, decimal.RequireFromString("0.54").Equal(result.Payout.RunnerUpAmount()))

	// A repeat call on a finished tournament publishes nothing new
	again, err := svc.RunRound(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, result, again)

	assert.Equal(t, []event.Type{
		event.TournamentCreated,
		event.TournamentRound,
		event.TournamentCompleted,
	}, bus.published())
}

func TestAutoPlayAndJournal(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 5))
	require.NoError(t, err)

	results, err := svc.AutoPlay(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Trainer-5", results[2].Payout.Champion.Name)

	journal, err := svc.Journal(ctx, v.ID)
	require.NoError(t, err)
	assert.Contains(t, journal, "Tournament created with 5 players.\n")
	assert.Contains(t, journal, "Trainer-2 receives a bye.\n")
	assert.Contains(t, journal, "--- Round 3 ---\nTrainer-5 defeats Trainer-2 using Flare Cub (Blaze Bite, 35 dmg).\n")
	assert.Contains(t, journal, "Champion: Trainer-5 wins 3.1500 ETH.\n")
	assert.Contains(t, journal, "Runner-up: Trainer-2 wins 1.3500 ETH.\n")
}

func TestRestart(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)
	_, err = svc.AutoPlay(ctx, v.ID)
	require.NoError(t, err)

	added, err := svc.AddCard(ctx, v.ID, domain.Card{Type: "Rock", HP: 300, Damage: 90})
	require.NoError(t, err)
	assert.Equal(t, catalog.DefaultCardName, added.Name)

	t.Run("keeps seed when blank", func(t *testing.T) {
		restarted, err := svc.Restart(ctx, v.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "TEST", restarted.Tournament.Seed)
		assert.Equal(t, domain.TournamentStateAwaitingPairing, restarted.Tournament.State)
		assert.Zero(t, restarted.Tournament.Round)
		assert.Len(t, restarted.Catalog, 6)
		assert.Equal(t, v.Tournament.Pool, restarted.Tournament.Pool)
	})

	t.Run("new seed", func(t *testing.T) {
		restarted, err := svc.Restart(ctx, v.ID, "PUGLAR")
		require.NoError(t, err)
		assert.Equal(t, "PUGLAR", restarted.Tournament.Seed)
	})

	assert.Contains(t, bus.published(), event.CatalogCardAdded)
}

func TestAddCard_Invalid(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)

	_, err = svc.AddCard(ctx, v.ID, domain.Card{Name: "Broken", Type: "Fire", HP: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidCard)

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Len(t, got.Catalog, 5)
}

func TestUnknownSession(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.RunRound(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.AutoPlay(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = svc.Journal(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), domain.ErrSessionNotFound)
}

func TestDelete(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	v, err := svc.Create(ctx, exampleParams("TEST", 2))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, v.ID))
	_, err = svc.Get(ctx, v.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Contains(t, bus.published(), event.TournamentDeleted)
}

func TestCancelledContext(t *testing.T) {
	svc, _ := newTestService(t)
	v, err := svc.Create(context.Background(), exampleParams("TEST", 2))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.RunRound(ctx, v.ID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(Config{CacheSize: 2, TTL: time.Minute}, nil, bus)
	ctx := context.Background()

	first, err := svc.Create(ctx, exampleParams("a", 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, exampleParams("b", 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, exampleParams("c", 2))
	require.NoError(t, err)

	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestEvictedSessionIsNotRevived(t *testing.T) {
	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(Config{CacheSize: 1, TTL: time.Minute}, nil, bus).(*service)
	ctx := context.Background()

	first, err := svc.Create(ctx, exampleParams("a", 4))
	require.NoError(t, err)

	var second *View
	err = svc.withSession(ctx, first.ID, func(e *entry) error {
		// A newer session pushes this one out while its round is running
		var err error
		second, err = svc.Create(ctx, exampleParams("b", 4))
		require.NoError(t, err)

		_, err = e.session.RunRound()
		require.NoError(t, err)
		svc.touch(ctx, e)
		return nil
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ActiveSessions))
}

func TestActiveSessionsGaugeTracksStore(t *testing.T) {
	bus := new(MockEventBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(Config{CacheSize: 2, TTL: time.Minute}, nil, bus)
	ctx := context.Background()

	var ids []string
	for _, seed := range []string{"a", "b", "c"} {
		v, err := svc.Create(ctx, exampleParams(seed, 2))
		require.NoError(t, err)
		ids = append(ids, v.ID)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ActiveSessions))

	require.NoError(t, svc.Delete(ctx, ids[2]))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ActiveSessions))

	require.NoError(t, svc.Shutdown(ctx))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ActiveSessions))
}

func TestConcurrentRoundsAreSerialized(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Same seed and count run alone, for comparison
	ref, err := svc.Create(ctx, exampleParams("PUGLAR", 16))
	require.NoError(t, err)
	want, err := svc.AutoPlay(ctx, ref.ID)
	require.NoError(t, err)

	v, err := svc.Create(ctx, exampleParams("PUGLAR", 16))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.RunRound(ctx, v.ID)
		}()
	}
	wg.Wait()

	got, err := svc.Get(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got.Tournament.Rounds)
	assert.Equal(t, domain.TournamentStateComplete, got.Tournament.State)
}

func TestCheckHealth(t *testing.T) {
	svc, _ := newTestService(t)
	assert.NoError(t, svc.CheckHealth(context.Background()))

	empty := NewService(Config{}, catalog.New(), nil)
	assert.ErrorIs(t, empty.CheckHealth(context.Background()), domain.ErrEmptyCatalog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, svc.CheckHealth(ctx), context.Canceled)
}
