package narration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/TCGTourney_Go/internal/domain"
	"github.com/osse101/TCGTourney_Go/internal/tournament"
)

// Amount renders a money value as "1.2600 ETH"
func Amount(d decimal.Decimal) string {
	return d.StringFixed(AmountPlaces) + " " + Currency
}

// Created announces a new tournament and its pool
func Created(pool domain.PoolState) []string {
	return []string{
		fmt.Sprintf("Tournament created with %d players.", pool.CompetitorCount),
		fmt.Sprintf("Entry %s, prize pool %s.", Amount(pool.EntryFee), Amount(pool.PrizePool)),
	}
}

// Number prints a card stat without trailing zeros: 35, 80.5
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Battle describes one battle
func Battle(b domain.BattleRecord) string {
	return fmt.Sprintf("%s defeats %s using %s (%s, %s dmg).",
		b.WinnerName, b.LoserName, b.MVP.Name, b.MVP.AttackName, Number(b.MVP.Damage))
}

// Round describes a played round: header, bye, then battles in order.
// A completion with no round played yields no lines.
func Round(r domain.RoundResult) []string {
	if r.Round == 0 {
		return nil
	}

	lines := make([]string, 0, len(r.Battles)+2)
	lines = append(lines, fmt.Sprintf("--- Round %d ---", r.Round))
	if r.Bye != nil {
		lines = append(lines, fmt.Sprintf("%s receives a bye.", r.Bye.Name))
	}
	for _, b := range r.Battles {
		lines = append(lines, Battle(b))
	}
	return lines
}

// Settlement lists who was paid what
func Settlement(p domain.Payout) []string {
	lines := []string{fmt.Sprintf("Champion: %s wins %s.", p.Champion.Name, Amount(p.Champion.Amount))}
	if p.RunnerUp != nil {
		lines = append(lines, fmt.Sprintf("Runner-up: %s wins %s.", p.RunnerUp.Name, Amount(p.RunnerUp.Amount)))
	}
	lines = append(lines, fmt.Sprintf("Platform cut retained: %s.", Amount(p.PlatformCut)))
	return lines
}

// PoolSummary is the one-line pool status
func PoolSummary(pool domain.PoolState) string {
	return fmt.Sprintf("Total: %s | Prize Pool: %s | Platform: %s",
		Amount(pool.Total), Amount(pool.PrizePool), Amount(pool.PlatformCut))
}

func CardAdded(card domain.Card) string {
	return "Custom card added: " + card.Name
}

// Lines narrates a whole tournament from its snapshot, oldest line first
func Lines(snap tournament.Snapshot) []string {
	lines := Created(snap.Pool)
	for _, r := range snap.Rounds {
		lines = append(lines, Round(r)...)
	}
	if snap.Payout != nil {
		lines = append(lines, Settlement(*snap.Payout)...)
	}
	return lines
}

// FormatJournal formats the complete tournament as plain text
func FormatJournal(snap tournament.Snapshot) string {
	var sb strings.Builder
	for _, line := range Lines(snap) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
