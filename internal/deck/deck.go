package deck

import (
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/rng"
)

// Build deals domain.DeckSize cards from cards, each drawn independently with
// replacement. An empty catalog fails before any draw is consumed.
func Build(cards []domain.Card, src rng.Source) (domain.Deck, error) {
	if len(cards) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	d := make(domain.Deck, 0, domain.DeckSize)
	for i := 0; i < domain.DeckSize; i++ {
		card, err := rng.Pick(src, cards)
		if err != nil {
			return nil, err
		}
		d = append(d, card)
	}
	return d, nil
}

// CardPower is hp*0.25 + damage*1.2 - energyCost*3.
// The explicit float64 conversions keep the compiler from fusing the
// multiply-adds, so results stay bit-identical across architectures.
func CardPower(c domain.Card) float64 {
	hp := float64(c.HP * HPWeight)
	dmg := float64(c.Damage * DamageWeight)
	energy := float64(c.EnergyCost * EnergyCostWeight)
	return hp + dmg - energy
}

// Power sums CardPower over the deck in order
func Power(d domain.Deck) float64 {
	total := 0.0
	for _, c := range d {
		total += CardPower(c)
	}
	return total
}
