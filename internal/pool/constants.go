package pool

import "github.com/shopspring/decimal"

// Settlement split of the prize pool
var (
	ChampionShare = decimal.RequireFromString("0.7")
	RunnerUpShare = decimal.RequireFromString("0.3")
)

var (
	hundred = decimal.NewFromInt(100)
	maxRake = hundred
)

const minEntries = 1
