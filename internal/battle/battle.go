package battle

import (
	"github.com/osse101/TCGTourney_Go/internal/deck"
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/rng"
)

// Result is the outcome of one battle. MVP is narration only.
type Result struct {
	Winner      *domain.Competitor
	Loser       *domain.Competitor
	WinnerScore float64
	LoserScore  float64
	MVP         domain.Card
}

// Record flattens the result into a display value
func (r Result) Record() domain.BattleRecord {
	return domain.BattleRecord{
		WinnerID:    r.Winner.ID,
		WinnerName:  r.Winner.Name,
		LoserID:     r.Loser.ID,
		LoserName:   r.Loser.Name,
		WinnerScore: r.WinnerScore,
		LoserScore:  r.LoserScore,
		MVP:         r.MVP,
	}
}

// Score applies one roll in [0, 1) to a deck's power
func Score(d domain.Deck, roll float64) float64 {
	factor := RollBase + float64(roll*RollSpread)
	return float64(deck.Power(d) * factor)
}

// Resolve plays a against b. Draw order is fixed: a's roll, b's roll, then the
// MVP pick from the winner's deck. a wins ties. The loser is eliminated and
// the winner credited a win.
//
// a and b must be distinct active competitors; the pairing guarantees it.
func Resolve(a, b *domain.Competitor, src rng.Source) Result {
	scoreA := Score(a.Deck, src.Next())
	scoreB := Score(b.Deck, src.Next())

	res := Result{Winner: a, Loser: b, WinnerScore: scoreA, LoserScore: scoreB}
	if scoreB > scoreA {
		res = Result{Winner: b, Loser: a, WinnerScore: scoreB, LoserScore: scoreA}
	}

	res.Winner.RecordWin()
	res.Loser.Eliminate()

	// Decks always hold domain.DeckSize cards; an empty one simply has no MVP
	if mvp, err := rng.Pick(src, res.Winner.Deck); err == nil {
		res.MVP = mvp
	}
	return res
}
