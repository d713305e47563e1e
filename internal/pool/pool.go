package pool

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

// Validate checks pool inputs without computing anything
func Validate(entryFee decimal.Decimal, count int, rakePercent decimal.Decimal) error {
	if count < minEntries {
		return fmt.Errorf("%w: competitor count must be at least %d, got %d", domain.ErrInvalidConfiguration, minEntries, count)
	}
	if entryFee.IsNegative() {
		return fmt.Errorf("%w: entry fee must not be negative, got %s", domain.ErrInvalidConfiguration, entryFee)
	}
	if rakePercent.IsNegative() || rakePercent.GreaterThan(maxRake) {
		return fmt.Errorf("%w: rake percent must be within [0, 100], got %s", domain.ErrInvalidConfiguration, rakePercent)
	}
	return nil
}

// Compute derives the pool totals. All derived fields come from the same
// inputs in one pass, so total == platformCut + prizePool exactly.
func Compute(entryFee decimal.Decimal, count int, rakePercent decimal.Decimal) (domain.PoolState, error) {
	if err := Validate(entryFee, count, rakePercent); err != nil {
		return domain.PoolState{}, err
	}

	total := entryFee.Mul(decimal.NewFromInt(int64(count)))
	cut := total.Mul(rakePercent).Div(hundred)

	return domain.PoolState{
		EntryFee:        entryFee,
		CompetitorCount: count,
		RakePercent:     rakePercent,
		Total:           total,
		PlatformCut:     cut,
		PrizePool:       total.Sub(cut),
	}, nil
}

// RunnerUp returns the eliminated competitor with the most wins. Ties go to
// the lowest id. Nil when nobody was eliminated.
func RunnerUp(competitors []*domain.Competitor) *domain.Competitor {
	var best *domain.Competitor
	for _, c := range competitors {
		if !c.Eliminated {
			continue
		}
		if best == nil || c.Wins > best.Wins || (c.Wins == best.Wins && c.ID < best.ID) {
			best = c
		}
	}
	return best
}

// Settle splits the prize pool between champion and runner-up. Without a
// runner-up the remaining 30% is left unallocated; the platform cut is never
// paid to a competitor.
func Settle(champion *domain.Competitor, competitors []*domain.Competitor, ps domain.PoolState) domain.Payout {
	payout := domain.Payout{
		Champion: domain.PayoutShare{
			CompetitorID: champion.ID,
			Name:         champion.Name,
			Amount:       ps.PrizePool.Mul(ChampionShare),
		},
		PlatformCut: ps.PlatformCut,
		Pool:        ps,
	}

	if ru := RunnerUp(competitors); ru != nil {
		payout.RunnerUp = &domain.PayoutShare{
			CompetitorID: ru.ID,
			Name:         ru.Name,
			Amount:       ps.PrizePool.Mul(RunnerUpShare),
		}
	}
	return payout
}
