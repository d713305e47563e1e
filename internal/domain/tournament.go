package domain

import "github.com/shopspring/decimal"

// TournamentState represents where a tournament is in its round cycle
type TournamentState string

const (
	TournamentStateAwaitingPairing TournamentState = "AwaitingPairing"
	TournamentStateInProgress      TournamentState = "InProgress"
	TournamentStateRoundComplete   TournamentState = "RoundComplete"
	TournamentStateComplete        TournamentState = "TournamentComplete"
)

// IsTerminal reports whether no further rounds can be played
func (s TournamentState) IsTerminal() bool {
	return s == TournamentStateComplete
}

// BattleRecord is the outcome of one pairing, suitable for display
type BattleRecord struct {
	WinnerID    int     `json:"winner_id"`
	WinnerName  string  `json:"winner_name"`
	LoserID     int     `json:"loser_id"`
	LoserName   string  `json:"loser_name"`
	WinnerScore float64 `json:"winner_score"`
	LoserScore  float64 `json:"loser_score"`
	MVP         Card    `json:"mvp"`
}

// ByeRecord names the competitor advanced without a battle
type ByeRecord struct {
	CompetitorID int    `json:"competitor_id"`
	Name         string `json:"name"`
}

// RoundResult is what a single RunRound call reports
type RoundResult struct {
	Round     int             `json:"round"`
	State     TournamentState `json:"state"`
	Bye       *ByeRecord      `json:"bye,omitempty"`
	Battles   []BattleRecord  `json:"battles"`
	Survivors int             `json:"survivors"`
	Payout    *Payout         `json:"payout,omitempty"`
}

// PoolState holds the entry pool and its split. Derived fields are always
// computed together from the inputs, never edited on their own.
type PoolState struct {
	EntryFee        decimal.Decimal `json:"entry_fee"`
	CompetitorCount int             `json:"competitor_count"`
	RakePercent     decimal.Decimal `json:"rake_percent"`
	Total           decimal.Decimal `json:"total"`
	PlatformCut     decimal.Decimal `json:"platform_cut"`
	PrizePool       decimal.Decimal `json:"prize_pool"`
}

// PayoutShare is the amount paid to one competitor at settlement
type PayoutShare struct {
	CompetitorID int             `json:"competitor_id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
}

// Payout is the settlement record produced once a sole champion remains
type Payout struct {
	Champion    PayoutShare     `json:"champion"`
	RunnerUp    *PayoutShare    `json:"runner_up,omitempty"`
	PlatformCut decimal.Decimal `json:"platform_cut"`
	Pool        PoolState       `json:"pool"`
}

// RunnerUpAmount returns the runner-up share, zero when there is none
func (p Payout) RunnerUpAmount() decimal.Decimal {
	if p.RunnerUp == nil {
		return decimal.Zero
	}
	return p.RunnerUp.Amount
}
