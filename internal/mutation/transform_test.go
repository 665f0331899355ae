package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftbyte/fluxforge/internal/domain"
)

func testBase() *domain.Fragment {
	return &domain.Fragment{
		ID:     "base-1",
		Name:   "Rift Blade",
		Type:   domain.FragmentBaseItem,
		Rarity: domain.RarityRare,
		BaseStats: map[string]int{
			"power":   20,
			"defense": 12,
			"speed":   8,
		},
		ImplicitMods: []domain.StatMod{{Name: "Flux Attunement", Value: 10}},
		Quantity:     1,
	}
}

func TestTransform_PrefixesName(t *testing.T) {
	result := Transform(testBase(), nil)

	assert.Equal(t, "Mutated Rift Blade", result.Name)
}

func TestTransform_ComponentReinforcesSharedStats(t *testing.T) {
	comp := &domain.Fragment{
		ID:        "c-1",
		Name:      "Flux Capacitor",
		Type:      domain.FragmentComponent,
		Rarity:    domain.RarityCommon,
		BaseStats: map[string]int{"power": 15, "enhancement": 30},
	}

	result := Transform(testBase(), []*domain.Fragment{comp})

	// Shared key "power" gains floor(15*0.5) = 7; keys only on the component
	// are not grafted onto the result.
	assert.Equal(t, 27, result.BaseStats["power"])
	assert.Equal(t, 12, result.BaseStats["defense"])
	assert.NotContains(t, result.BaseStats, "enhancement")
}

func TestTransform_ComponentModsBecomeScaledAffixes(t *testing.T) {
	comp := &domain.Fragment{
		ID:           "c-1",
		Name:         "Void Shard",
		Type:         domain.FragmentComponent,
		Rarity:       domain.RarityCommon,
		BaseStats:    map[string]int{},
		ImplicitMods: []domain.StatMod{{Name: "Echo Ward", Value: 10}},
	}

	result := Transform(testBase(), []*domain.Fragment{comp})

	require.Len(t, result.Affixes, 1)
	affix := result.Affixes[0]
	assert.Equal(t, "Void Shard - Echo Ward", affix.Name)
	assert.Equal(t, 7, affix.Value, "component affixes scale by 0.7, floored")
	assert.Equal(t, domain.AffixSourceMutation, affix.Source)
}

func TestTransform_ModifierModsUnscaled(t *testing.T) {
	mod := &domain.Fragment{
		ID:           "m-1",
		Name:         "Warp Glyph",
		Type:         domain.FragmentModifier,
		Rarity:       domain.RarityCommon,
		ImplicitMods: []domain.StatMod{{Name: "Temporal Grip", Value: 13}},
	}

	result := Transform(testBase(), []*domain.Fragment{mod})

	require.Len(t, result.Affixes, 1)
	assert.Equal(t, 13, result.Affixes[0].Value, "modifier affixes carry full value")
}

func TestTransform_AffixesFollowInputOrder(t *testing.T) {
	first := &domain.Fragment{
		ID: "c-1", Name: "Alpha", Type: domain.FragmentComponent,
		ImplicitMods: []domain.StatMod{{Name: "One", Value: 10}},
	}
	second := &domain.Fragment{
		ID: "m-1", Name: "Beta", Type: domain.FragmentModifier,
		ImplicitMods: []domain.StatMod{{Name: "Two", Value: 10}},
	}

	result := Transform(testBase(), []*domain.Fragment{first, second})

	require.Len(t, result.Affixes, 2)
	assert.Equal(t, "Alpha - One", result.Affixes[0].Name)
	assert.Equal(t, "Beta - Two", result.Affixes[1].Name)
}

func TestTransform_DoesNotMutateInputs(t *testing.T) {
	base := testBase()
	comp := &domain.Fragment{
		ID: "c-1", Name: "Gamma", Type: domain.FragmentComponent,
		BaseStats:    map[string]int{"power": 10},
		ImplicitMods: []domain.StatMod{{Name: "Ward", Value: 10}},
	}

	_ = Transform(base, []*domain.Fragment{comp})

	assert.Equal(t, 20, base.BaseStats["power"], "base fragment untouched")
	assert.Empty(t, base.Affixes)
	assert.Equal(t, 10, comp.BaseStats["power"], "component untouched")
}

func TestTransform_KeepsBaseRarityAndImplicits(t *testing.T) {
	result := Transform(testBase(), nil)

	assert.Equal(t, domain.RarityRare, result.Rarity)
	require.Len(t, result.ImplicitMods, 1)
	assert.Equal(t, "Flux Attunement", result.ImplicitMods[0].Name)
}

func TestEvolve_BumpsOneTier(t *testing.T) {
	f := &domain.Fragment{Name: "Mutated Rift Blade", Rarity: domain.RarityRare}

	Evolve(f)

	assert.Equal(t, domain.RarityEpic, f.Rarity)
	assert.Equal(t, "Evolved Mutated Rift Blade", f.Name)
}

func TestEvolve_NoOpAtTopTier(t *testing.T) {
	f := &domain.Fragment{Name: "Mutated Void Lance", Rarity: domain.RarityVoidTouched}

	Evolve(f)

	assert.Equal(t, domain.RarityVoidTouched, f.Rarity)
	assert.Equal(t, "Mutated Void Lance", f.Name, "no prefix when nothing evolved")
}
