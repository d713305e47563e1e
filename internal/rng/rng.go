package rng

import (
	"fmt"
	"unicode/utf16"

	"github.com/osse101/TCGTourney_Go/internal/domain"
)

// Source is anything that yields a reproducible stream of values in [0, 1).
// Engine components accept a Source so tests can script exact draws.
type Source interface {
	Next() float64
}

// RNG is a 32-bit linear congruential generator. Two RNGs seeded with the same
// string produce bit-identical streams for the same sequence of calls.
type RNG struct {
	state uint32
}

// New creates an RNG seeded from s
func New(seed string) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the state to the sum of the character codes of seed, mod 2^32.
// Each code point contributes its first UTF-16 code unit, so a character
// outside the Basic Multilingual Plane adds only its high surrogate.
// A zero sum (the empty string) falls back to 1 so the stream is never degenerate.
func (r *RNG) Seed(seed string) {
	var sum uint32
	for _, c := range seed {
		sum += charCode(c)
	}
	if sum == 0 {
		sum = fallbackState
	}
	r.state = sum
}

func charCode(c rune) uint32 {
	if c < bmpLimit {
		return uint32(c)
	}
	high, _ := utf16.EncodeRune(c)
	return uint32(high)
}

// Next advances the generator and returns state / 2^32.
// uint32 arithmetic wraps, which is exactly the mod 2^32 of the recurrence.
func (r *RNG) Next() float64 {
	r.state = r.state*multiplier + increment
	return float64(r.state) / modulus
}

// State returns the raw accumulator
func (r *RNG) State() uint32 {
	return r.state
}

// Pick returns items[floor(src.Next() * len(items))]. An empty slice is a
// caller bug and returns domain.ErrEmptyInput without consuming a draw.
func Pick[T any](src Source, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, domain.ErrEmptyInput
	}
	idx := Index(src, len(items))
	return items[idx], nil
}

// Index draws an index in [0, n). n must be positive.
func Index(src Source, n int) int {
	idx := int(src.Next() * float64(n))
	// Next is strictly below 1, the clamp only guards custom Sources
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// PickWeighted selects one item with probability proportional to weight(item),
// consuming exactly one draw. Items with non-positive weight are never chosen.
func PickWeighted[T any](src Source, items []T, weight func(T) float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, domain.ErrEmptyInput
	}

	total := 0.0
	for _, it := range items {
		if w := weight(it); w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, fmt.Errorf("%w: all %d weights are non-positive", domain.ErrEmptyInput, len(items))
	}

	target := src.Next() * total
	cumulative := 0.0
	last := -1
	for i, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		last = i
		cumulative += w
		if target < cumulative {
			return it, nil
		}
	}
	// Floating point drift can leave target a hair above the final sum
	return items[last], nil
}
