package mutation

import (
	"math"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Scaling applied when folding components into the result.
const (
	componentStatScale  = 0.5
	componentAffixScale = 0.7
	mutatedNamePrefix   = "Mutated "
	evolvedNamePrefix   = "Evolved "
)

// Transform builds the successful mutation result: a copy of the base with a
// new name and the components folded in, in input order. It is deterministic;
// the stochastic success and evolution decisions happen in the service.
func Transform(base *domain.Fragment, components []*domain.Fragment) domain.Fragment {
	result := *base
	result.Name = mutatedNamePrefix + base.Name
	result.BaseStats = copyStats(base.BaseStats)
	result.ImplicitMods = append([]domain.StatMod(nil), base.ImplicitMods...)
	result.Affixes = append([]domain.Affix(nil), base.Affixes...)

	for _, comp := range components {
		switch comp.Type {
		case domain.FragmentComponent:
			// Stat keys present on both sides reinforce the result.
			for key, value := range result.BaseStats {
				if compValue, ok := comp.BaseStats[key]; ok {
					result.BaseStats[key] = value + int(math.Floor(float64(compValue)*componentStatScale))
				}
			}
			for _, mod := range comp.ImplicitMods {
				result.Affixes = append(result.Affixes, domain.Affix{
					Name:   comp.Name + " - " + mod.Name,
					Value:  int(math.Floor(float64(mod.Value) * componentAffixScale)),
					Source: domain.AffixSourceMutation,
				})
			}
		case domain.FragmentModifier:
			for _, mod := range comp.ImplicitMods {
				result.Affixes = append(result.Affixes, domain.Affix{
					Name:   comp.Name + " - " + mod.Name,
					Value:  mod.Value,
					Source: domain.AffixSourceMutation,
				})
			}
		}
	}
	return result
}

// Evolve upgrades the result one rarity tier and marks the name. No-op at the
// top tier apart from the prefix being skipped.
func Evolve(f *domain.Fragment) {
	next := f.Rarity.Next()
	if next == f.Rarity {
		return
	}
	f.Rarity = next
	f.Name = evolvedNamePrefix + f.Name
}

func copyStats(stats map[string]int) map[string]int {
	out := make(map[string]int, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}
