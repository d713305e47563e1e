package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/catalog"
	"github.com/osse101/TCGTourney_Go/internal/concurrency"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/event"
	"github.com/osse101/TCGTourney_Go/internal/logger"
	"github.com/osse101/TCGTourney_Go/internal/metrics"
	"github.com/osse101/TCGTourney_Go/internal/narration"
	"github.com/osse101/TCGTourney_Go/internal/tournament"
)

// Service hosts tournament sessions. Every call on one session is serialized;
// calls on different sessions run independently.
type Service interface {
	Create(ctx context.Context, params CreateParams) (*View, error)
	Get(ctx context.Context, id string) (*View, error)
	AddCard(ctx context.Context, id string, card domain.Card) (domain.Card, error)
	RunRound(ctx context.Context, id string) (*domain.RoundResult, error)
	AutoPlay(ctx context.Context, id string) ([]domain.RoundResult, error)
	Restart(ctx context.Context, id, seed string) (*View, error)
	Journal(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
	BaseCards(ctx context.Context) []domain.Card
	CheckHealth(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// CreateParams are the inputs of a new tournament. CustomCards are appended
// to the session's copy of the base catalog before decks are dealt.
type CreateParams struct {
	Seed            string
	CompetitorCount int
	EntryFee        decimal.Decimal
	RakePercent     decimal.Decimal
	CustomCards     []domain.Card
}

// View is what callers see of a session
type View struct {
	ID         string              `json:"id"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	Catalog    []domain.Card       `json:"catalog"`
	Tournament tournament.Snapshot `json:"tournament"`
}

// Config tunes the session store
type Config struct {
	CacheSize   int
	TTL         time.Duration
	DefaultSeed string
}

type service struct {
	base        *catalog.Catalog
	store       *store
	locks       *concurrency.LockManager
	eventBus    event.Bus
	defaultSeed string
}

// NewService creates a session service. base is cloned into every new
// session, so custom cards never leak between sessions.
func NewService(cfg Config, base *catalog.Catalog, eventBus event.Bus) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.DefaultSeed == "" {
		cfg.DefaultSeed = DefaultSeed
	}
	if base == nil {
		base = catalog.Default()
	}

	s := &service{
		base:        base,
		locks:       concurrency.NewLockManager(),
		eventBus:    eventBus,
		defaultSeed: cfg.DefaultSeed,
	}
	s.store = newStore(cfg.CacheSize, cfg.TTL, s.evicted)
	return s
}

// evicted runs inside the cache's lock, so it must not call back into the store
func (s *service) evicted(id string) {
	s.locks.Remove(id)
}

// syncActiveSessions reports the number of sessions the store really holds
func (s *service) syncActiveSessions() {
	metrics.ActiveSessions.Set(float64(s.store.Len()))
}

// touch refreshes e after an operation changed it
func (s *service) touch(ctx context.Context, e *entry) {
	if !s.store.Refresh(e) {
		logger.FromContext(ctx).Debug(LogMsgSessionEvicted, logger.AttrKeySessionID, e.id)
	}
	s.syncActiveSessions()
}

func (s *service) Create(ctx context.Context, params CreateParams) (*View, error) {
	log := logger.FromContext(ctx)

	cat := s.base.Clone()
	if err := cat.AddAll(params.CustomCards); err != nil {
		return nil, err
	}

	sess := tournament.NewSession(cat)
	cfg := tournament.Config{
		Seed:            s.seedOrDefault(params.Seed),
		CompetitorCount: params.CompetitorCount,
		EntryFee:        params.EntryFee,
		RakePercent:     params.RakePercent,
	}
	if err := sess.Create(cfg); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &entry{id: uuid.NewString(), session: sess, createdAt: now}
	s.store.Put(e)
	s.syncActiveSessions()

	log.Info(LogMsgTournamentCreated,
		logger.AttrKeySessionID, e.id,
		"seed", cfg.Seed,
		"competitors", cfg.CompetitorCount,
		"custom_cards", len(params.CustomCards))
	s.publish(ctx, event.NewTournamentCreatedEvent(e.id, cfg.Seed, cfg.CompetitorCount, false))

	return s.view(e)
}

func (s *service) Get(ctx context.Context, id string) (*View, error) {
	var v *View
	err := s.withSession(ctx, id, func(e *entry) error {
		var err error
		v, err = s.view(e)
		return err
	})
	return v, err
}

func (s *service) AddCard(ctx context.Context, id string, card domain.Card) (domain.Card, error) {
	var added domain.Card
	err := s.withSession(ctx, id, func(e *entry) error {
		var err error
		added, err = e.session.Catalog().Add(card)
		if err != nil {
			return err
		}
		s.touch(ctx, e)

		logger.FromContext(ctx).Info(LogMsgCardAdded,
			logger.AttrKeySessionID, id,
			"line", narration.CardAdded(added))
		s.publish(ctx, event.NewCardAddedEvent(id, added))
		return nil
	})
	return added, err
}

func (s *service) RunRound(ctx context.Context, id string) (*domain.RoundResult, error) {
	var result domain.RoundResult
	err := s.withSession(ctx, id, func(e *entry) error {
		wasComplete := e.session.State().IsTerminal()
		r, err := e.session.RunRound()
		if err != nil {
			return err
		}
		result = r
		if !wasComplete {
			s.touch(ctx, e)
			s.announce(ctx, id, e.session, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) AutoPlay(ctx context.Context, id string) ([]domain.RoundResult, error) {
	var results []domain.RoundResult
	err := s.withSession(ctx, id, func(e *entry) error {
		wasComplete := e.session.State().IsTerminal()
		rs, err := e.session.AutoPlay()
		if err != nil {
			return err
		}
		results = rs
		if !wasComplete {
			s.touch(ctx, e)
			for _, r := range rs {
				s.announce(ctx, id, e.session, r)
			}
		}
		return nil
	})
	return results, err
}

func (s *service) Restart(ctx context.Context, id, seed string) (*View, error) {
	var v *View
	err := s.withSession(ctx, id, func(e *entry) error {
		cfg := e.session.Config()
		if strings.TrimSpace(seed) != "" {
			cfg.Seed = seed
		}
		if err := e.session.Create(cfg); err != nil {
			return err
		}
		s.touch(ctx, e)

		logger.FromContext(ctx).Info(LogMsgTournamentRestarted,
			logger.AttrKeySessionID, id,
			"seed", cfg.Seed,
			"catalog_size", e.session.Catalog().Len())
		s.publish(ctx, event.NewTournamentCreatedEvent(id, cfg.Seed, cfg.CompetitorCount, true))

		var err error
		v, err = s.view(e)
		return err
	})
	return v, err
}

func (s *service) Journal(ctx context.Context, id string) (string, error) {
	var journal string
	err := s.withSession(ctx, id, func(e *entry) error {
		snap, err := e.session.Snapshot()
		if err != nil {
			return err
		}
		journal = narration.FormatJournal(snap)
		return nil
	})
	return journal, err
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.withSession(ctx, id, func(e *entry) error {
		s.store.Remove(id)
		s.syncActiveSessions()
		logger.FromContext(ctx).Info(LogMsgSessionDeleted, logger.AttrKeySessionID, id)
		s.publish(ctx, event.NewTournamentDeletedEvent(id))
		return nil
	})
}

func (s *service) BaseCards(_ context.Context) []domain.Card {
	return s.base.Cards()
}

// CheckHealth fails when new tournaments could not be dealt
func (s *service) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.syncActiveSessions()
	if s.base.Len() == 0 {
		return domain.ErrEmptyCatalog
	}
	return nil
}

// Shutdown drops every session
func (s *service) Shutdown(_ context.Context) error {
	s.store.Purge()
	s.syncActiveSessions()
	return nil
}

// withSession runs fn under the session's lock. The entry is looked up
// after the lock is taken so a concurrent Delete is observed.
func (s *service) withSession(ctx context.Context, id string, fn func(e *entry) error) error {
	return s.locks.WithLock(id, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		e, ok := s.store.Get(id)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return fn(e)
	})
}

// announce logs and publishes a freshly produced round result
func (s *service) announce(ctx context.Context, id string, sess *tournament.Session, r domain.RoundResult) {
	log := logger.FromContext(ctx)

	if r.Round > 0 {
		log.Debug(LogMsgRoundPlayed,
			logger.AttrKeySessionID, id,
			"round", r.Round,
			"battles", len(r.Battles),
			"bye", r.Bye != nil,
			"survivors", r.Survivors)
		s.publish(ctx, event.NewRoundPlayedEvent(id, r))
	}

	if r.State.IsTerminal() && r.Payout != nil {
		log.Info(LogMsgTournamentSettled,
			logger.AttrKeySessionID, id,
			"rounds", sess.Round(),
			"champion", r.Payout.Champion.Name,
			"champion_share", r.Payout.Champion.Amount.String(),
			"runner_up_share", r.Payout.RunnerUpAmount().String())
		s.publish(ctx, event.NewTournamentCompletedEvent(id, sess.Round(), *r.Payout))
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// seedOrDefault keeps any non-blank seed verbatim, whitespace included
func (s *service) seedOrDefault(seed string) string {
	if strings.TrimSpace(seed) != "" {
		return seed
	}
	return s.defaultSeed
}

func (s *service) view(e *entry) (*View, error) {
	snap, err := e.session.Snapshot()
	if err != nil {
		return nil, err
	}
	return &View{
		ID:         e.id,
		CreatedAt:  e.createdAt,
		UpdatedAt:  e.updatedAt,
		Catalog:    e.session.Catalog().Cards(),
		Tournament: snap,
	}, nil
}
