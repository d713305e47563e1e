// Package simulation plays whole tournaments offline, one at a time or as a
// batch of seeds spread over a worker pool.
package simulation

import (
	"context"
	"fmt"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/narration"
	"github.com/osse101/TCGTourney_Go/internal/tournament"
	"github.com/osse101/TCGTourney_Go/internal/worker"
)

// Outcome is one finished tournament
type Outcome struct {
	Seed     string
	Rounds   int
	Payout   *domain.Payout
	RNGState uint32
	Journal  string
	Err      error
}

// Champion names the winner, empty when the run failed
func (o Outcome) Champion() string {
	if o.Payout == nil {
		return ""
	}
	return o.Payout.Champion.Name
}

// Run plays cfg to completion on its own session over cat
func Run(cat *catalog.Catalog, cfg tournament.Config) Outcome {
	out := Outcome{Seed: cfg.Seed}

	s := tournament.NewSession(cat)
	if err := s.Create(cfg); err != nil {
		out.Err = err
		return out
	}
	if _, err := s.AutoPlay(); err != nil {
		out.Err = err
		return out
	}
	snap, err := s.Snapshot()
	if err != nil {
		out.Err = err
		return out
	}

	out.Rounds = snap.Round
	out.Payout = snap.Payout
	out.RNGState = s.RNGState()
	out.Journal = narration.FormatJournal(snap)
	return out
}

// RunBatch plays every config on a pool of workers. Outcomes are returned in
// input order and are identical to running each config alone; each job gets
// its own clone of base.
func RunBatch(ctx context.Context, base *catalog.Catalog, cfgs []tournament.Config, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(cfgs))

	pool := worker.NewPool(workers, len(cfgs))
	pool.Start(ctx)
	for i, cfg := range cfgs {
		i, cfg, cat := i, cfg, base.Clone()
		err := pool.Enqueue(worker.JobFunc(func(context.Context) error {
			outcomes[i] = Run(cat, cfg)
			return outcomes[i].Err
		}))
		if err != nil {
			pool.Stop()
			return nil, err
		}
	}
	pool.Stop()

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// Seeds derives n seeds from prefix: "PUGLAR-1", "PUGLAR-2", ...
func Seeds(prefix string, n int) []string {
	seeds := make([]string, n)
	for i := range seeds {
		seeds[i] = fmt.Sprintf(SeedFormat, prefix, i+1)
	}
	return seeds
}
