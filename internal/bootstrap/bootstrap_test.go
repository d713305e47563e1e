package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/config"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/metrics"
	"github.com/osse101/TCGTourney_Go/internal/sse"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("no path gives the built-in cards", func(t *testing.T) {
		cat, err := LoadCatalog(&config.Config{})
		require.NoError(t, err)
		assert.Equal(t, catalog.BaseCards(), cat.Cards())
	})

	t.Run("file cards follow the built-in ones", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`version: "1"
cards:
  - name: Ember Fox
    type: fire
    hp: 75
    attack_name: Cinder Dash
    damage: 38
    energy_cost: 2
`), 0o600))

		cat, err := LoadCatalog(&config.Config{CatalogPath: path})
		require.NoError(t, err)
		require.Equal(t, len(catalog.BaseCards())+1, cat.Len())
		last := cat.Cards()[cat.Len()-1]
		assert.Equal(t, "Ember Fox", last.Name)
		assert.Equal(t, domain.CardTypeFire, last.Type)
	})

	t.Run("bad file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cards:\n  - type: fire\n    hp: 0\n"), 0o600))

		_, err := LoadCatalog(&config.Config{CatalogPath: path})
		assert.ErrorIs(t, err, domain.ErrInvalidCard)
	})
}

func TestInitializeEventSystem(t *testing.T) {
	t.Run("metrics only", func(t *testing.T) {
		bus, err := InitializeEventSystem(nil)
		require.NoError(t, err)

		before := testutil.ToFloat64(metrics.TournamentsCreated)
		require.NoError(t, bus.Publish(context.Background(), event.NewTournamentCreatedEvent("s-1", "TEST", 2, false)))
		assert.Equal(t, before+1, testutil.ToFloat64(metrics.TournamentsCreated))
	})

	t.Run("stream subscriber", func(t *testing.T) {
		hub := sse.NewHub()
		hub.Start()
		t.Cleanup(hub.Stop)

		bus, err := InitializeEventSystem(hub)
		require.NoError(t, err)

		client, ok := hub.Register(sse.Filter{})
		require.True(t, ok)
		require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, time.Millisecond)

		require.NoError(t, bus.Publish(context.Background(), event.NewTournamentDeletedEvent("s-1")))

		select {
		case got := <-client.EventChannel:
			assert.Equal(t, string(event.TournamentDeleted), got.Type)
			assert.Equal(t, "s-1", got.SessionID)
		case <-time.After(time.Second):
			t.Fatal("stream client received nothing")
		}
	})
}

func TestSetupLogger_WritesFileAndPrunes(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < LogFileRetentionLimit; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2020-01-01_00-00-%02d", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	f, err := SetupLogger(&config.Config{LogLevel: "info", LogFormat: "text", LogDir: dir})
	require.NoError(t, err)
	require.NotNil(t, f)
	t.Cleanup(func() { _ = f.Close() })

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// Retained files plus the new one
	assert.Len(t, entries, LogFileRetentionCount+1)
	_, err = os.Stat(filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2020-01-01_00-00-00")))
	assert.True(t, os.IsNotExist(err), "oldest file should be pruned")
}

func TestSetupLogger_StdoutOnly(t *testing.T) {
	f, err := SetupLogger(&config.Config{LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)
	assert.Nil(t, f)
}

type mockStopper struct {
	mock.Mock
}

func (m *mockStopper) Stop(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestGracefulShutdown(t *testing.T) {
	for _, stopErr := range []error{nil, context.DeadlineExceeded} {
		srv := &mockStopper{}
		srv.On("Stop", mock.Anything).Return(stopErr)

		GracefulShutdown(context.Background(), srv)

		srv.AssertExpectations(t)
	}
}
