package rng

import "math/rand"

// UnseededFloat returns a random float64 in [0, 1) from the process-wide
// source. Crafting outcomes draw from here on purpose: item generation stays
// replayable from a seed while mutation success remains unpredictable.
func UnseededFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}
