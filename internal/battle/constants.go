package battle

// Score perturbation: power * (RollBase + Next() * RollSpread), so a deck
// fights at between 90% and 112% of its power.
const (
	RollBase   = 0.9
	RollSpread = 0.22
)
