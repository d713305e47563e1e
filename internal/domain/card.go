package domain

// CardType is the elemental type printed on a card
type CardType string

const (
	CardTypeFire     CardType = "Fire"
	CardTypeWater    CardType = "Water"
	CardTypeGrass    CardType = "Grass"
	CardTypeElectric CardType = "Electric"
	CardTypePsychic  CardType = "Psychic"
)

// IsBase reports whether t is one of the five printed types
func (t CardType) IsBase() bool {
	switch t {
	case CardTypeFire, CardTypeWater, CardTypeGrass, CardTypeElectric, CardTypePsychic:
		return true
	}
	return false
}

// DeckSize is the number of cards dealt to every competitor
const DeckSize = 6

// Card is a catalog entry. Cards are values and are never mutated once they
// are in a catalog; custom cards may carry any non-empty type.
type Card struct {
	Name       string   `json:"name" yaml:"name" validate:"required,max=64"`
	Type       CardType `json:"type" yaml:"type" validate:"required,max=32"`
	HP         float64  `json:"hp" yaml:"hp" validate:"gt=0"`
	AttackName string   `json:"attack_name" yaml:"attack_name" validate:"required,max=64"`
	Damage     float64  `json:"damage" yaml:"damage" validate:"gte=0"`
	EnergyCost float64  `json:"energy_cost" yaml:"energy_cost" validate:"gte=0"`
}

// Deck is the ordered set of cards a competitor fights with
type Deck []Card

// Clone returns a copy that shares no backing array with d
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}
