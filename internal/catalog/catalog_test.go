package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, 5, c.Len())
	names := make([]string, 0, c.Len())
	for _, card := range c.Cards() {
		names = append(names, card.Name)
	}
	assert.Equal(t, []string{"Flare Cub", "Aqua Lynx", "Moss Toad", "Spark Drake", "Mind Crow"}, names)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name        string
		card        domain.Card
		want        domain.Card
		expectedErr string
	}{
		{
			name: "blank names get defaults",
			card: domain.Card{Type: "fire", HP: 50, Damage: 10, EnergyCost: 1},
			want: domain.Card{Name: DefaultCardName, Type: domain.CardTypeFire, HP: 50, AttackName: DefaultAttackName, Damage: 10, EnergyCost: 1},
		},
		{
			name: "type is title cased and fields trimmed",
			card: domain.Card{Name: "  Volt Mouse ", Type: "ELECTRIC", HP: 60, AttackName: " Zap ", Damage: 20},
			want: domain.Card{Name: "Volt Mouse", Type: domain.CardTypeElectric, HP: 60, AttackName: "Zap", Damage: 20},
		},
		{
			name: "custom type allowed",
			card: domain.Card{Name: "Rock Golem", Type: "rock", HP: 150, AttackName: "Quake", Damage: 25, EnergyCost: 4},
			want: domain.Card{Name: "Rock Golem", Type: "Rock", HP: 150, AttackName: "Quake", Damage: 25, EnergyCost: 4},
		},
		{
			name:        "zero hp rejected",
			card:        domain.Card{Name: "Ghost", Type: "Psychic", HP: 0, AttackName: "Boo", Damage: 5},
			expectedErr: "hp must be greater than 0",
		},
		{
			name:        "negative damage rejected",
			card:        domain.Card{Name: "Dud", Type: "Water", HP: 10, Damage: -1},
			expectedErr: "damage must be at least 0",
		},
		{
			name:        "missing type rejected",
			card:        domain.Card{Name: "Blank", HP: 10},
			expectedErr: "type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			got, err := c.Add(tt.card)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidCard)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Equal(t, 5, c.Len(), "rejected card must not be appended")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Equal(t, 6, c.Len())
			assert.Equal(t, tt.want, c.Cards()[5])
		})
	}
}

func TestAddAll_IsAllOrNothing(t *testing.T) {
	c := Default()
	err := c.AddAll([]domain.Card{
		{Name: "Good", Type: "Grass", HP: 10, AttackName: "Leaf", Damage: 1},
		{Name: "Bad", Type: "Grass", HP: -5},
	})

	require.ErrorIs(t, err, domain.ErrInvalidCard)
	assert.Contains(t, err.Error(), "cards[1]")
	assert.Equal(t, 5, c.Len())
}

func TestCardsReturnsCopy(t *testing.T) {
	c := Default()
	cards := c.Cards()
	cards[0].Name = "Tampered"

	assert.Equal(t, "Flare Cub", c.Cards()[0].Name)
}

func TestClone_IsIndependent(t *testing.T) {
	base := Default()
	clone := base.Clone()

	_, err := clone.Add(domain.Card{Name: "Extra", Type: "Fire", HP: 1})
	require.NoError(t, err)

	assert.Equal(t, 5, base.Len())
	assert.Equal(t, 6, clone.Len())
}
