// Command sim plays tournaments locally.
//
//	sim -seed PUGLAR -players 8 -fee 0.1 -rake 10
//	sim -seed PUGLAR -runs 100 -workers 8
//
// A single run prints the full journal. With -runs N the seeds PUGLAR-1 to
// PUGLAR-N are played in parallel and one summary line is printed per seed.
// Flags fall back to DEFAULT_SEED and CATALOG_PATH from the environment
// (or a .env file).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/config"
	"github.com/osse101/TCGTourney_Go/internal/narration"
	"github.com/osse101/TCGTourney_Go/internal/simulation"
	"github.com/osse101/TCGTourney_Go/internal/tournament"
)

type options struct {
	seed      string
	players   int
	fee       string
	rake      string
	cardsPath string
	summary   bool
	runs      int
	workers   int
}

func main() {
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.seed, "seed", envOr(config.EnvDefaultSeed, config.DefaultSeed), "tournament seed, or seed prefix with -runs")
	flag.IntVar(&opts.players, "players", 8, "number of competitors")
	flag.StringVar(&opts.fee, "fee", "0.1", "entry fee per competitor")
	flag.StringVar(&opts.rake, "rake", "10", "platform rake percent")
	flag.StringVar(&opts.cardsPath, "cards", os.Getenv(config.EnvCatalogPath), "optional YAML file of extra cards")
	flag.BoolVar(&opts.summary, "summary", false, "print the pool summary after the journal")
	flag.IntVar(&opts.runs, "runs", 1, "number of seeded tournaments to play")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel workers for -runs")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	entryFee, err := decimal.NewFromString(opts.fee)
	if err != nil {
		return fmt.Errorf("invalid -fee %q: %w", opts.fee, err)
	}
	rakePercent, err := decimal.NewFromString(opts.rake)
	if err != nil {
		return fmt.Errorf("invalid -rake %q: %w", opts.rake, err)
	}

	extra, err := catalog.LoadFile(opts.cardsPath)
	if err != nil {
		return err
	}
	cat := catalog.Default()
	if err := cat.AddAll(extra); err != nil {
		return err
	}

	cfg := tournament.Config{
		Seed:            opts.seed,
		CompetitorCount: opts.players,
		EntryFee:        entryFee,
		RakePercent:     rakePercent,
	}

	if opts.runs <= 1 {
		out := simulation.Run(cat, cfg)
		if out.Err != nil {
			return out.Err
		}
		fmt.Print(out.Journal)
		if opts.summary {
			fmt.Println(narration.PoolSummary(out.Payout.Pool))
		}
		return nil
	}

	seeds := simulation.Seeds(opts.seed, opts.runs)
	cfgs := make([]tournament.Config, len(seeds))
	for i, seed := range seeds {
		cfgs[i] = cfg
		cfgs[i].Seed = seed
	}

	outcomes, err := simulation.RunBatch(ctx, cat, cfgs, opts.workers)
	if err != nil {
		return err
	}
	for _, out := range outcomes {
		if out.Err != nil {
			fmt.Printf("%s: error: %v\n", out.Seed, out.Err)
			continue
		}
		fmt.Printf("%s: %s wins %s after %d rounds (rng %d)\n",
			out.Seed, out.Champion(), narration.Amount(out.Payout.Champion.Amount), out.Rounds, out.RNGState)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
