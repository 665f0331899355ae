package mutation

import (
	"math"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Cost formula anchors.
const (
	costBase            = 100
	costBaseWeight      = 100
	costComponentWeight = 50
)

// Success rate curve.
const (
	complexityPenaltyPerComponent = 0.1
	minSuccessRate                = 0.05
	deviceBonusPerSlotLevel       = 0.05
	maxSuccessRate                = 0.95
)

// baseSuccessRates descend with the base fragment's rarity: rarer bases are
// harder to mutate. Unknown tiers fall back to the common rate.
var baseSuccessRates = map[domain.Rarity]float64{
	domain.RarityCommon:      0.85,
	domain.RarityUncommon:    0.75,
	domain.RarityRare:        0.65,
	domain.RarityEpic:        0.50,
	domain.RarityLegendary:   0.35,
	domain.RarityMythic:      0.20,
	domain.RarityVoidTouched: 0.10,
}

// MaxComponents returns how many components the device can hold.
func MaxComponents(gs *domain.GameState) int {
	return 2 + gs.MutationSlotsLevel
}

// Cost returns the flux cost of a mutation attempt. The cost is charged
// whether or not the mutation succeeds.
func Cost(base *domain.Fragment, components []*domain.Fragment) int {
	cost := float64(costBase) + costBaseWeight*base.Rarity.MutationCostMultiplier()
	for _, c := range components {
		cost += costComponentWeight * c.Rarity.MutationCostMultiplier()
	}
	return int(math.Floor(cost))
}

// SuccessRate returns the probability in [0.05, 0.95] that a mutation
// succeeds: the base rarity rate, less a complexity penalty per extra
// component (floored), plus the device slot bonus (capped).
func SuccessRate(base *domain.Fragment, components []*domain.Fragment, gs *domain.GameState) float64 {
	rate, ok := baseSuccessRates[base.Rarity]
	if !ok {
		rate = baseSuccessRates[domain.RarityCommon]
	}

	rate -= complexityPenaltyPerComponent * float64(len(components)-1)
	if rate < minSuccessRate {
		rate = minSuccessRate
	}

	rate += deviceBonusPerSlotLevel * float64(gs.MutationSlotsLevel-1)
	if rate > maxSuccessRate {
		rate = maxSuccessRate
	}
	return rate
}
