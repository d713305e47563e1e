package pool

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		fee       string
		count     int
		rake      string
		wantTotal string
		wantCut   string
		wantPrize string
	}{
		{name: "two entrants ten percent", fee: "1", count: 2, rake: "10", wantTotal: "2", wantCut: "0.2", wantPrize: "1.8"},
		{name: "free entry", fee: "0", count: 8, rake: "10", wantTotal: "0", wantCut: "0", wantPrize: "0"},
		{name: "no rake", fee: "0.05", count: 8, rake: "0", wantTotal: "0.4", wantCut: "0", wantPrize: "0.4"},
		{name: "full rake", fee: "3", count: 3, rake: "100", wantTotal: "9", wantCut: "9", wantPrize: "0"},
		{name: "fractional rake", fee: "0.1", count: 7, rake: "12.5", wantTotal: "0.7", wantCut: "0.0875", wantPrize: "0.6125"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := Compute(d(tt.fee), tt.count, d(tt.rake))
			require.NoError(t, err)

			assert.True(t, d(tt.wantTotal).Equal(ps.Total), "total %s", ps.Total)
			assert.True(t, d(tt.wantCut).Equal(ps.PlatformCut), "cut %s", ps.PlatformCut)
			assert.True(t, d(tt.wantPrize).Equal(ps.PrizePool), "prize %s", ps.PrizePool)
			assert.True(t, ps.Total.Equal(ps.PlatformCut.Add(ps.PrizePool)))
			assert.Equal(t, tt.count, ps.CompetitorCount)
		})
	}
}

func TestCompute_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		fee   string
		count int
		rake  string
	}{
		{name: "zero competitors", fee: "1", count: 0, rake: "10"},
		{name: "negative competitors", fee: "1", count: -3, rake: "10"},
		{name: "negative fee", fee: "-0.01", count: 2, rake: "10"},
		{name: "negative rake", fee: "1", count: 2, rake: "-1"},
		{name: "rake above hundred", fee: "1", count: 2, rake: "100.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(d(tt.fee), tt.count, d(tt.rake))
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestRunnerUp(t *testing.T) {
	t.Run("most wins among eliminated", func(t *testing.T) {
		cs := []*domain.Competitor{
			{ID: 1, Wins: 1, Eliminated: true},
			{ID: 2, Wins: 2, Eliminated: true},
			{ID: 3, Wins: 5},
		}
		assert.Equal(t, 2, RunnerUp(cs).ID)
	})

	t.Run("ties go to lowest id", func(t *testing.T) {
		cs := []*domain.Competitor{
			{ID: 4, Wins: 2, Eliminated: true},
			{ID: 2, Wins: 2, Eliminated: true},
			{ID: 3, Wins: 3},
		}
		assert.Equal(t, 2, RunnerUp(cs).ID)
	})

	t.Run("active competitors are never runner-up", func(t *testing.T) {
		cs := []*domain.Competitor{{ID: 1, Wins: 0}}
		assert.Nil(t, RunnerUp(cs))
	})
}

func TestSettle(t *testing.T) {
	ps, err := Compute(d("1"), 2, d("10"))
	require.NoError(t, err)

	champ := &domain.Competitor{ID: 2, Name: "Trainer-2", Wins: 1}
	loser := &domain.Competitor{ID: 1, Name: "Trainer-1", Eliminated: true}

	payout := Settle(champ, []*domain.Competitor{loser, champ}, ps)

	assert.Equal(t, "Trainer-2", payout.Champion.Name)
	assert.True(t, d("1.26").Equal(payout.Champion.Amount), "champion %s", payout.Champion.Amount)
	require.NotNil(t, payout.RunnerUp)
	assert.Equal(t, "Trainer-1", payout.RunnerUp.Name)
	assert.True(t, d("0.54").Equal(payout.RunnerUp.Amount), "runner-up %s", payout.RunnerUp.Amount)
	assert.True(t, d("0.2").Equal(payout.PlatformCut))
	assert.True(t, ps.PrizePool.Equal(payout.Champion.Amount.Add(payout.RunnerUpAmount())))
}

func TestSettle_NoRunnerUp(t *testing.T) {
	ps, err := Compute(d("2"), 1, d("25"))
	require.NoError(t, err)

	solo := &domain.Competitor{ID: 1, Name: "Trainer-1"}
	payout := Settle(solo, []*domain.Competitor{solo}, ps)

	assert.Nil(t, payout.RunnerUp)
	assert.True(t, payout.RunnerUpAmount().IsZero())
	assert.True(t, d("1.05").Equal(payout.Champion.Amount))
	assert.True(t, payout.Champion.Amount.LessThanOrEqual(ps.PrizePool))
}
