package tournament

import (
	"fmt"

	"github.com/osse101/TCGTourney_Go/internal/deck"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/rng"
)

// Registry holds every competitor of one tournament in registration order
type Registry struct {
	competitors []*domain.Competitor
}

// NewRegistry deals a deck to each of count competitors, ids 1..count, in id
// order. Nothing is returned unless every deck was built.
func NewRegistry(count int, cards []domain.Card, src rng.Source) (*Registry, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: competitor count must be at least 1, got %d", domain.ErrInvalidConfiguration, count)
	}
	if len(cards) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	competitors := make([]*domain.Competitor, 0, count)
	for id := 1; id <= count; id++ {
		d, err := deck.Build(cards, src)
		if err != nil {
			return nil, fmt.Errorf("failed to build deck for competitor %d: %w", id, err)
		}
		competitors = append(competitors, &domain.Competitor{
			ID:   id,
			Name: fmt.Sprintf(CompetitorNameFormat, id),
			Deck: d,
		})
	}
	return &Registry{competitors: competitors}, nil
}

// All returns every competitor, eliminated or not, in id order
func (r *Registry) All() []*domain.Competitor {
	return r.competitors
}

// Active returns the non-eliminated competitors in id order
func (r *Registry) Active() []*domain.Competitor {
	active := make([]*domain.Competitor, 0, len(r.competitors))
	for _, c := range r.competitors {
		if c.IsActive() {
			active = append(active, c)
		}
	}
	return active
}

func (r *Registry) Len() int {
	return len(r.competitors)
}

// Get looks up a competitor by id
func (r *Registry) Get(id int) (*domain.Competitor, bool) {
	if id < 1 || id > len(r.competitors) {
		return nil, false
	}
	return r.competitors[id-1], true
}

// Snapshot copies every competitor so callers cannot mutate the registry
func (r *Registry) Snapshot() []domain.Competitor {
	out := make([]domain.Competitor, len(r.competitors))
	for i, c := range r.competitors {
		out[i] = c.Snapshot()
	}
	return out
}
