package tournament

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/battle"
	"github.com/osse101/TCGTourney_Go/internal/bracket"
	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/pool"
	"github.com/osse101/TCGTourney_Go/internal/rng"
)

// Config is everything needed to start a tournament
type Config struct {
	Seed            string          `json:"seed"`
	CompetitorCount int             `json:"competitor_count"`
	EntryFee        decimal.Decimal `json:"entry_fee"`
	RakePercent     decimal.Decimal `json:"rake_percent"`
}

// Snapshot is a detached, read-only view of a session
type Snapshot struct {
	Seed        string                 `json:"seed"`
	Round       int                    `json:"round"`
	State       domain.TournamentState `json:"state"`
	Survivors   int                    `json:"survivors"`
	Competitors []domain.Competitor    `json:"competitors"`
	Pool        domain.PoolState       `json:"pool"`
	Rounds      []domain.RoundResult   `json:"rounds"`
	Payout      *domain.Payout         `json:"payout,omitempty"`
}

// Session owns one tournament: its catalog, RNG, registry and round state.
// A Session is not safe for concurrent use; hosts must serialize calls.
type Session struct {
	catalog *catalog.Catalog

	config   Config
	rng      *rng.RNG
	registry *Registry
	pool     domain.PoolState
	round    int
	state    domain.TournamentState
	rounds   []domain.RoundResult
	final    *domain.RoundResult
}

// NewSession creates an idle session drawing decks from cat. Cards added to
// the catalog later apply to the next Create.
func NewSession(cat *catalog.Catalog) *Session {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Session{catalog: cat}
}

// Catalog returns the session's own catalog
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Create starts a new tournament, discarding any previous competitors and
// round state. Inputs are validated and every deck is built before anything
// on the session changes, so a failed Create leaves the old tournament intact.
func (s *Session) Create(cfg Config) error {
	ps, err := pool.Compute(cfg.EntryFee, cfg.CompetitorCount, cfg.RakePercent)
	if err != nil {
		return err
	}

	r := rng.New(cfg.Seed)
	registry, err := NewRegistry(cfg.CompetitorCount, s.catalog.Cards(), r)
	if err != nil {
		return err
	}

	s.config = cfg
	s.rng = r
	s.registry = registry
	s.pool = ps
	s.round = 0
	s.state = domain.TournamentStateAwaitingPairing
	s.rounds = nil
	s.final = nil
	return nil
}

// Started reports whether Create has succeeded at least once
func (s *Session) Started() bool {
	return s.registry != nil
}

// RunRound advances the tournament by one round.
//
// With one or zero competitors left the tournament completes without a
// round being played. Otherwise the active competitors are paired, every
// pair is resolved in pairing order, and the tournament completes if a sole
// survivor remains. Once complete, further calls return the final result
// again without touching the RNG.
func (s *Session) RunRound() (domain.RoundResult, error) {
	if !s.Started() {
		return domain.RoundResult{}, domain.ErrTournamentNotStarted
	}
	if s.final != nil {
		return *s.final, nil
	}

	active := s.registry.Active()
	if len(active) <= 1 {
		return s.complete(domain.RoundResult{Round: s.round, Battles: []domain.BattleRecord{}}, active), nil
	}

	s.round++
	s.state = domain.TournamentStateInProgress

	pairing := bracket.Pair(active, s.rng)
	result := domain.RoundResult{
		Round:   s.round,
		Battles: make([]domain.BattleRecord, 0, len(pairing.Pairs)),
	}
	if pairing.Bye != nil {
		result.Bye = &domain.ByeRecord{CompetitorID: pairing.Bye.ID, Name: pairing.Bye.Name}
	}
	for _, pair := range pairing.Pairs {
		result.Battles = append(result.Battles, battle.Resolve(pair[0], pair[1], s.rng).Record())
	}

	survivors := s.registry.Active()
	if len(survivors) == 1 {
		result = s.complete(result, survivors)
	} else {
		s.state = domain.TournamentStateRoundComplete
		result.State = s.state
		result.Survivors = len(survivors)
	}

	s.rounds = append(s.rounds, result)
	return result, nil
}

// complete marks the tournament finished and settles when a champion exists
func (s *Session) complete(result domain.RoundResult, survivors []*domain.Competitor) domain.RoundResult {
	s.state = domain.TournamentStateComplete
	result.State = s.state
	result.Survivors = len(survivors)

	if len(survivors) == 1 {
		payout := pool.Settle(survivors[0], s.registry.All(), s.pool)
		result.Payout = &payout
	}

	final := result
	s.final = &final
	return result
}

// AutoPlay runs rounds until the tournament completes and returns every
// result produced by this call, the completing one last.
func (s *Session) AutoPlay() ([]domain.RoundResult, error) {
	var results []domain.RoundResult
	for {
		result, err := s.RunRound()
		if err != nil {
			return results, err
		}
		results = append(results, result)
		if result.State.IsTerminal() {
			return results, nil
		}
	}
}

// Config returns the parameters of the current tournament
func (s *Session) Config() Config {
	return s.config
}

func (s *Session) Round() int {
	return s.round
}

func (s *Session) State() domain.TournamentState {
	return s.state
}

func (s *Session) Pool() domain.PoolState {
	return s.pool
}

// Registry exposes the live competitors. Callers must not mutate them.
func (s *Session) Registry() *Registry {
	return s.registry
}

// RNGState returns the raw generator state, zero before Create
func (s *Session) RNGState() uint32 {
	if s.rng == nil {
		return 0
	}
	return s.rng.State()
}

// Payout is the settlement record, nil until the tournament completes with a champion
func (s *Session) Payout() *domain.Payout {
	if s.final == nil || s.final.Payout == nil {
		return nil
	}
	p := *s.final.Payout
	return &p
}

// Champion returns the sole survivor once the tournament is complete
func (s *Session) Champion() (domain.Competitor, bool) {
	if !s.state.IsTerminal() {
		return domain.Competitor{}, false
	}
	active := s.registry.Active()
	if len(active) != 1 {
		return domain.Competitor{}, false
	}
	return active[0].Snapshot(), true
}

// Rounds returns the results of every round played so far
func (s *Session) Rounds() []domain.RoundResult {
	out := make([]domain.RoundResult, len(s.rounds))
	copy(out, s.rounds)
	return out
}

// Snapshot captures the session for display
func (s *Session) Snapshot() (Snapshot, error) {
	if !s.Started() {
		return Snapshot{}, fmt.Errorf("cannot snapshot: %w", domain.ErrTournamentNotStarted)
	}
	return Snapshot{
		Seed:        s.config.Seed,
		Round:       s.round,
		State:       s.state,
		Survivors:   len(s.registry.Active()),
		Competitors: s.registry.Snapshot(),
		Pool:        s.pool,
		Rounds:      s.Rounds(),
		Payout:      s.Payout(),
	}, nil
}
