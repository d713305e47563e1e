package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

var cardValidator = validator.New(validator.WithRequiredStructEnabled())

// BaseCards returns the built-in card pool every catalog starts from
func BaseCards() []domain.Card {
	return []domain.Card{
		{Name: "Flare Cub", Type: domain.CardTypeFire, HP: 80, AttackName: "Blaze Bite", Damage: 35, EnergyCost: 2},
		{Name: "Aqua Lynx", Type: domain.CardTypeWater, HP: 95, AttackName: "Tide Crash", Damage: 30, EnergyCost: 2},
		{Name: "Moss Toad", Type: domain.CardTypeGrass, HP: 110, AttackName: "Root Slam", Damage: 28, EnergyCost: 1},
		{Name: "Spark Drake", Type: domain.CardTypeElectric, HP: 70, AttackName: "Arc Burst", Damage: 50, EnergyCost: 3},
		{Name: "Mind Crow", Type: domain.CardTypePsychic, HP: 85, AttackName: "Psi Slice", Damage: 40, EnergyCost: 2},
	}
}

// Catalog is an append-only list of cards owned by a single caller.
// It is not safe for concurrent use; the owner serializes access.
type Catalog struct {
	cards []domain.Card
}

// New creates a catalog holding a copy of cards
func New(cards ...domain.Card) *Catalog {
	c := &Catalog{cards: make([]domain.Card, len(cards))}
	copy(c.cards, cards)
	return c
}

// Default creates a catalog seeded with BaseCards
func Default() *Catalog {
	return New(BaseCards()...)
}

// Add normalizes and validates card, then appends it.
// The stored card is returned so callers see the applied defaults.
func (c *Catalog) Add(card domain.Card) (domain.Card, error) {
	card = Normalize(card)
	if err := Validate(card); err != nil {
		return domain.Card{}, err
	}
	c.cards = append(c.cards, card)
	return card, nil
}

// AddAll appends every card or none of them
func (c *Catalog) AddAll(cards []domain.Card) error {
	normalized := make([]domain.Card, 0, len(cards))
	var problems []string
	for i, card := range cards {
		card = Normalize(card)
		if err := Validate(card); err != nil {
			problems = append(problems, fmt.Sprintf("cards[%d]: %s", i, strings.TrimPrefix(err.Error(), domain.ErrMsgInvalidCard+": ")))
			continue
		}
		normalized = append(normalized, card)
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCard, strings.Join(problems, "; "))
	}
	c.cards = append(c.cards, normalized...)
	return nil
}

// Cards returns a copy of the catalog contents in insertion order
func (c *Catalog) Cards() []domain.Card {
	out := make([]domain.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Clone returns an independent catalog with the same cards
func (c *Catalog) Clone() *Catalog {
	return New(c.cards...)
}

// Normalize trims text fields, fills blank names, and title-cases the type
// so "fire" and "FIRE" both land on domain.CardTypeFire.
func Normalize(card domain.Card) domain.Card {
	card.Name = strings.TrimSpace(card.Name)
	if card.Name == "" {
		card.Name = DefaultCardName
	}
	card.AttackName = strings.TrimSpace(card.AttackName)
	if card.AttackName == "" {
		card.AttackName = DefaultAttackName
	}
	typ := strings.TrimSpace(string(card.Type))
	if typ != "" {
		typ = cases.Title(language.English).String(strings.ToLower(typ))
	}
	card.Type = domain.CardType(typ)
	return card
}

// Validate checks the struct tags on domain.Card
func Validate(card domain.Card) error {
	err := cardValidator.Struct(card)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCard, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidCard, strings.Join(msgs, ", "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
