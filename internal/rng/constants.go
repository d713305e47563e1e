package rng

// Linear congruential recurrence: state = (state*multiplier + increment) mod 2^32
const (
	multiplier uint32 = 1664525
	increment  uint32 = 1013904223

	// modulus is 2^32 as a float divisor
	modulus = 4294967296.0

	fallbackState uint32 = 1

	// bmpLimit is the first code point that needs a surrogate pair
	bmpLimit = 0x10000
)
