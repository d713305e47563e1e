package bracket

import (
	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/rng"
)

// Pairing is one round's bracket: ordered pairs plus an optional bye
type Pairing struct {
	Pairs [][2]*domain.Competitor
	Bye   *domain.Competitor
}

// Competitors lists everyone placed in the pairing, pairs first, bye last
func (p Pairing) Competitors() []*domain.Competitor {
	out := make([]*domain.Competitor, 0, len(p.Pairs)*2+1)
	for _, pair := range p.Pairs {
		out = append(out, pair[0], pair[1])
	}
	if p.Bye != nil {
		out = append(out, p.Bye)
	}
	return out
}

// Shuffle permutes competitors in place with a descending Fisher-Yates pass:
// for i from n-1 down to 1, j = floor(Next() * (i+1)) and swap i, j.
// It consumes exactly n-1 draws (none for n <= 1).
func Shuffle(src rng.Source, competitors []*domain.Competitor) {
	for i := len(competitors) - 1; i > 0; i-- {
		j := rng.Index(src, i+1)
		competitors[i], competitors[j] = competitors[j], competitors[i]
	}
}

// Pair shuffles a copy of active and pairs consecutive entries. With an odd
// count the last entry gets a bye and is credited a win immediately.
// The caller's slice is left untouched.
func Pair(active []*domain.Competitor, src rng.Source) Pairing {
	shuffled := make([]*domain.Competitor, len(active))
	copy(shuffled, active)
	Shuffle(src, shuffled)

	var p Pairing
	p.Pairs = make([][2]*domain.Competitor, 0, len(shuffled)/2)
	for i := 0; i+1 < len(shuffled); i += 2 {
		p.Pairs = append(p.Pairs, [2]*domain.Competitor{shuffled[i], shuffled[i+1]})
	}
	if len(shuffled)%2 == 1 {
		p.Bye = shuffled[len(shuffled)-1]
		p.Bye.RecordWin()
	}
	return p
}
