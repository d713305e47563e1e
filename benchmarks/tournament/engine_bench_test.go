package tournament_bench

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/session"
	"github.com/osse101/TCGTourney_Go/internal/simulation"
	"github.com/osse101/TCGTourney_Go/internal/tournament"
)

// StubBus swallows events so the service benchmark measures the engine only
type StubBus struct{}

func (s *StubBus) Publish(ctx context.Context, evt event.Event) error { return nil }
func (s *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

func config(seed string, count int) tournament.Config {
	return tournament.Config{
		Seed:            seed,
		CompetitorCount: count,
		EntryFee:        decimal.NewFromInt(1),
		RakePercent:     decimal.NewFromInt(10),
	}
}

// BenchmarkAutoPlay plays whole brackets of increasing size
func BenchmarkAutoPlay(b *testing.B) {
	for _, count := range []int{8, 64, 512} {
		b.Run(fmt.Sprintf("competitors=%d", count), func(b *testing.B) {
			cat := catalog.Default()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := tournament.NewSession(cat)
				if err := s.Create(config("PUGLAR", count)); err != nil {
					b.Fatalf("Create failed: %v", err)
				}
				if _, err := s.AutoPlay(); err != nil {
					b.Fatalf("AutoPlay failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkRunBatch compares worker counts on the same set of seeds
func BenchmarkRunBatch(b *testing.B) {
	base := catalog.Default()
	var cfgs []tournament.Config
	for _, seed := range simulation.Seeds("PUGLAR", 64) {
		cfgs = append(cfgs, config(seed, 32))
	}

	for _, workers := range []int{1, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			ctx := context.Background()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := simulation.RunBatch(ctx, base, cfgs, workers); err != nil {
					b.Fatalf("RunBatch failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkServiceAutoPlay includes session storage, locking and event fan-out
func BenchmarkServiceAutoPlay(b *testing.B) {
	svc := session.NewService(session.Config{CacheSize: 1024}, catalog.Default(), &StubBus{})
	defer svc.Shutdown(context.Background())

	ctx := context.Background()
	params := session.CreateParams{
		Seed:            "PUGLAR",
		CompetitorCount: 64,
		EntryFee:        decimal.NewFromInt(1),
		RakePercent:     decimal.NewFromInt(10),
		CustomCards: []domain.Card{
			{Name: "Bench Golem", Type: "Stone", HP: 90, AttackName: "Crush", Damage: 45, EnergyCost: 3},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view, err := svc.Create(ctx, params)
		if err != nil {
			b.Fatalf("Create failed: %v", err)
		}
		if _, err := svc.AutoPlay(ctx, view.ID); err != nil {
			b.Fatalf("AutoPlay failed: %v", err)
		}
		if err := svc.Delete(ctx, view.ID); err != nil {
			b.Fatalf("Delete failed: %v", err)
		}
	}
}
