package domain

// Rarity represents the tier of a generated fragment
type Rarity string

const (
	RarityCommon      Rarity = "common"
	RarityUncommon    Rarity = "uncommon"
	RarityRare        Rarity = "rare"
	RarityEpic        Rarity = "epic"
	RarityLegendary   Rarity = "legendary"
	RarityMythic      Rarity = "mythic"
	RarityVoidTouched Rarity = "void_touched"
)

// RarityOrder lists the seven tiers from most to least common.
// Tier upgrades (mutation evolution) walk this slice forward.
var RarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
	RarityVoidTouched,
}

// The three multiplier tables are deliberately kept side by side so the
// stat, shatter and mutation-cost curves are never conflated. They share
// tier keys but nothing else.
var (
	statMultipliers = map[Rarity]float64{
		RarityCommon:      1,
		RarityUncommon:    1.5,
		RarityRare:        2.5,
		RarityEpic:        4,
		RarityLegendary:   7,
		RarityMythic:      12,
		RarityVoidTouched: 20,
	}

	shatterMultipliers = map[Rarity]float64{
		RarityCommon:      1,
		RarityUncommon:    3,
		RarityRare:        8,
		RarityEpic:        20,
		RarityLegendary:   50,
		RarityMythic:      125,
		RarityVoidTouched: 300,
	}

	mutationCostMultipliers = map[Rarity]float64{
		RarityCommon:      1,
		RarityUncommon:    2,
		RarityRare:        4,
		RarityEpic:        8,
		RarityLegendary:   16,
		RarityMythic:      32,
		RarityVoidTouched: 64,
	}
)

// StatMultiplier scales base stats rolled at generation time.
// Unknown tiers fall back to 1 rather than failing, so malformed
// persisted data degrades instead of crashing.
func (r Rarity) StatMultiplier() float64 {
	if m, ok := statMultipliers[r]; ok {
		return m
	}
	return 1
}

// ShatterMultiplier scales the flux refunded when a fragment is destroyed.
func (r Rarity) ShatterMultiplier() float64 {
	if m, ok := shatterMultipliers[r]; ok {
		return m
	}
	return 1
}

// MutationCostMultiplier scales the flux cost of mutation inputs.
func (r Rarity) MutationCostMultiplier() float64 {
	if m, ok := mutationCostMultipliers[r]; ok {
		return m
	}
	return 1
}

// IsValid reports whether r is one of the seven known tiers.
func (r Rarity) IsValid() bool {
	_, ok := statMultipliers[r]
	return ok
}

// Next returns the tier one step rarer than r. The top tier returns itself.
func (r Rarity) Next() Rarity {
	for i, tier := range RarityOrder {
		if tier == r {
			if i == len(RarityOrder)-1 {
				return r
			}
			return RarityOrder[i+1]
		}
	}
	return r
}
