package forge

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/rng"
)

var titleCaser = cases.Title(language.English)

// RollRarity draws one value from the sequence, adds the device bonus and maps
// the result through the threshold ladder. Comparisons are strict, so a roll
// exactly on a cutoff lands in the tier below it.
func RollRarity(seq *rng.Sequence, bonus float64) domain.Rarity {
	roll := seq.Next() + bonus
	if roll > maxRarityRoll {
		roll = maxRarityRoll
	}

	for _, rt := range rarityThresholds {
		if roll > rt.threshold {
			return rt.rarity
		}
	}
	return domain.RarityCommon
}

// RarityBonus is the flat rarity-roll bonus granted by the device: each
// rarity odds level past the first adds 0.05 percentage points.
func RarityBonus(gs *domain.GameState) float64 {
	return float64(gs.RarityOddsLevel-1) * 0.0005
}

// Generate rolls a complete fragment draft from the sequence. The draw order
// is fixed - type, rarity, base stats, implicit modifiers, display name - and
// every step advances the shared sequence, so a given seed always yields the
// same fragment.
func Generate(seq *rng.Sequence, gs *domain.GameState) domain.Fragment {
	fragType := rng.WeightedChoice(seq, typeWeights)
	rarity := RollRarity(seq, RarityBonus(gs))

	stats := rollBaseStats(seq, fragType, rarity)
	mods := rollImplicitMods(seq, rarity)
	name := rollName(seq, fragType, rarity)

	return domain.Fragment{
		Name:         name,
		Type:         fragType,
		Rarity:       rarity,
		BaseStats:    stats,
		ImplicitMods: mods,
		Affixes:      []domain.Affix{},
		IsCorrupted:  false,
		Quantity:     domain.DefaultFragmentQuantity,
	}
}

// rollBaseStats shapes the stat map by fragment type. Base items roll three
// combat stats, components and modifiers roll a single stat, blueprints carry
// none. Every rolled stat is scaled by the rarity stat multiplier.
func rollBaseStats(seq *rng.Sequence, t domain.FragmentType, rarity domain.Rarity) map[string]int {
	mult := rarity.StatMultiplier()
	scaled := func(min, max int) int {
		return int(float64(seq.UniformInt(min, max)) * mult)
	}

	switch t {
	case domain.FragmentBaseItem:
		return map[string]int{
			"power":   scaled(baseStatMin, baseStatMax),
			"defense": scaled(baseStatMin, baseStatMax),
			"speed":   scaled(baseStatMin, baseStatMax),
		}
	case domain.FragmentComponent:
		return map[string]int{"enhancement": scaled(enhancementMin, enhancementMax)}
	case domain.FragmentModifier:
		return map[string]int{"modifier": scaled(modifierStatMin, modifierStatMax)}
	default:
		return map[string]int{}
	}
}

// rollImplicitMods draws the per-rarity modifier count, then picks that many
// distinct names from the pool by rejection sampling. The loop terminates
// because the pool is strictly larger than the maximum count.
func rollImplicitMods(seq *rng.Sequence, rarity domain.Rarity) []domain.StatMod {
	bounds, ok := implicitCountByRarity[rarity]
	if !ok {
		bounds = implicitCountByRarity[domain.RarityCommon]
	}
	count := seq.UniformInt(bounds[0], bounds[1])

	scale := 1
	switch rarity {
	case domain.RarityMythic:
		scale = implicitScaleMythic
	case domain.RarityVoidTouched:
		scale = implicitScaleVoidTouched
	}

	chosen := make(map[string]bool, count)
	mods := make([]domain.StatMod, 0, count)
	for len(mods) < count {
		name := implicitModPool[seq.UniformInt(0, len(implicitModPool)-1)]
		if chosen[name] {
			continue
		}
		chosen[name] = true
		mods = append(mods, domain.StatMod{
			Name:  titleCaser.String(name),
			Value: seq.UniformInt(implicitValueMin, implicitValueMax) * scale,
		})
	}
	return mods
}

// rollName picks a base name for the type and prepends the rarity prefix.
func rollName(seq *rng.Sequence, t domain.FragmentType, rarity domain.Rarity) string {
	var base string
	switch t {
	case domain.FragmentBaseItem:
		base = baseItemNames[seq.UniformInt(0, len(baseItemNames)-1)]
	case domain.FragmentComponent:
		base = componentNames[seq.UniformInt(0, len(componentNames)-1)]
	case domain.FragmentModifier:
		base = modifierNames[seq.UniformInt(0, len(modifierNames)-1)]
	default:
		base = blueprintName
	}

	name := titleCaser.String(base)
	if prefix := rarityPrefixes[rarity]; prefix != "" {
		return prefix + " " + name
	}
	return strings.TrimSpace(name)
}
