package forge

import (
	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/rng"
)

// typeWeights drive the first draw of every spin. Total weight is 100 so the
// weights read directly as percentages.
var typeWeights = []rng.Weighted[domain.FragmentType]{
	{Value: domain.FragmentBaseItem, Weight: 30},
	{Value: domain.FragmentComponent, Weight: 40},
	{Value: domain.FragmentModifier, Weight: 25},
	{Value: domain.FragmentBlueprint, Weight: 5},
}

// rarityThreshold maps a roll cutoff to a tier.
type rarityThreshold struct {
	threshold float64
	rarity    domain.Rarity
}

// rarityThresholds is evaluated highest-first with strict > comparisons, so a
// roll exactly on a cutoff falls to the next lower tier. The ladder gives the
// documented right-skewed odds: 80/15/5/1/0.1/0.005/0.0005 percent.
var rarityThresholds = []rarityThreshold{
	{0.999995, domain.RarityVoidTouched},
	{0.9999, domain.RarityMythic},
	{0.999, domain.RarityLegendary},
	{0.99, domain.RarityEpic},
	{0.95, domain.RarityRare},
	{0.8, domain.RarityUncommon},
}

// maxRarityRoll caps the adjusted roll so stacked rarity bonuses can never
// force the top tier outright.
const maxRarityRoll = 0.999999

// Base stat ranges rolled before the rarity multiplier is applied.
const (
	baseStatMin = 5
	baseStatMax = 15

	enhancementMin = 10
	enhancementMax = 30

	modifierStatMin = 8
	modifierStatMax = 20
)

// implicitCountByRarity bounds how many implicit modifiers a fragment rolls.
var implicitCountByRarity = map[domain.Rarity][2]int{
	domain.RarityCommon:      {1, 1},
	domain.RarityUncommon:    {1, 2},
	domain.RarityRare:        {2, 2},
	domain.RarityEpic:        {2, 3},
	domain.RarityLegendary:   {3, 3},
	domain.RarityMythic:      {3, 4},
	domain.RarityVoidTouched: {4, 4},
}

// Implicit modifier value range and per-tier scaling.
const (
	implicitValueMin = 5
	implicitValueMax = 25

	implicitScaleMythic      = 2
	implicitScaleVoidTouched = 3
)

// implicitModPool is the fixed pool implicit modifiers are drawn from without
// replacement. It must stay larger than the biggest implicit count so the
// rejection-sampling loop in Generate always terminates.
var implicitModPool = []string{
	"flux attunement",
	"void resonance",
	"echo ward",
	"rift piercing",
	"entropy shield",
	"charge efficiency",
	"temporal grip",
	"shatter guard",
	"prism focus",
	"gravity bind",
}

// Display name pools per fragment type, title-cased at generation time.
var (
	baseItemNames = []string{
		"rift blade",
		"flux hammer",
		"void lance",
		"echo staff",
		"prism dagger",
		"entropy bow",
		"gravity maul",
		"temporal edge",
		"shard cleaver",
		"resonance fang",
	}

	componentNames = []string{
		"flux capacitor",
		"void shard",
		"echo crystal",
		"rift core",
		"prism cell",
		"entropy coil",
	}

	modifierNames = []string{
		"charge sigil",
		"warp glyph",
		"null rune",
		"pulse brand",
		"drift seal",
	}
)

// blueprintName is the placeholder display for blueprint drops.
const blueprintName = "encrypted blueprint"

// rarityPrefixes are prepended to display names. Common has no prefix.
var rarityPrefixes = map[domain.Rarity]string{
	domain.RarityCommon:      "",
	domain.RarityUncommon:    "Polished",
	domain.RarityRare:        "Resonant",
	domain.RarityEpic:        "Ascendant",
	domain.RarityLegendary:   "Luminous",
	domain.RarityMythic:      "Mythic",
	domain.RarityVoidTouched: "Void-Touched",
}
