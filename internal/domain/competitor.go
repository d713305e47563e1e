package domain

// Competitor is one entrant of a tournament. Wins and Eliminated are the only
// fields that change after creation, and they only move forward.
type Competitor struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Deck       Deck   `json:"deck"`
	Wins       int    `json:"wins"`
	Eliminated bool   `json:"eliminated"`
}

// RecordWin credits one win (a battle victory or a bye)
func (c *Competitor) RecordWin() {
	c.Wins++
}

// Eliminate knocks the competitor out. There is no way back.
func (c *Competitor) Eliminate() {
	c.Eliminated = true
}

// IsActive reports whether the competitor is still in the bracket
func (c *Competitor) IsActive() bool {
	return !c.Eliminated
}

// Snapshot returns a detached copy safe to hand to callers
func (c *Competitor) Snapshot() Competitor {
	out := *c
	out.Deck = c.Deck.Clone()
	return out
}
