package rng

import "time"

// LCG parameters. The small modulus gives a period of at most 233280 values,
// which is fine for gameplay randomness and nowhere near good enough for
// anything security sensitive.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Sequence is a seeded linear congruential generator producing a reproducible
// stream of fractional values in [0, 1).
//
// NOT cryptographically secure. Every distribution helper advances the shared
// state, so call order is part of the contract: a seeded sequence replays
// identically only if callers draw in the same order. Instances are not safe
// for concurrent use; give each logical spin session its own Sequence or
// serialize access externally.
type Sequence struct {
	state int64
}

// New returns a Sequence with an explicit seed. Seeds are reduced mod 233280,
// which preserves the generated stream for any non-negative seed and keeps
// large seeds from overflowing the multiply step.
func New(seed int64) *Sequence {
	state := seed % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	return &Sequence{state: state}
}

// NewFromTime returns a Sequence seeded from the current wall clock in
// milliseconds. The resulting stream is not reproducible.
func NewFromTime() *Sequence {
	return New(time.Now().UnixMilli())
}

// Next advances the generator and returns a value in [0, 1).
func (s *Sequence) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// Uniform returns a value in [min, max) drawn with a single Next call.
func (s *Sequence) Uniform(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// UniformInt returns an integer in [min, max], inclusive of both ends,
// drawn with a single Next call.
func (s *Sequence) UniformInt(min, max int) int {
	return int(s.Uniform(float64(min), float64(max)+1))
}

// Weighted pairs a candidate value with its selection weight.
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// WeightedChoice draws one Next value and walks items accumulating weight,
// returning the first item whose cumulative weight reaches the draw.
// Weights must be non-negative. If floating point drift overshoots the total
// (or every weight is zero) the last item is returned.
func WeightedChoice[T any](s *Sequence, items []Weighted[T]) T {
	var total float64
	for _, it := range items {
		total += it.Weight
	}

	r := s.Uniform(0, total)

	var cumulative float64
	for _, it := range items {
		cumulative += it.Weight
		if cumulative >= r {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}
