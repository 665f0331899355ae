package domain

import "time"

// FragmentType classifies what a fragment is for: base items carry combat
// stats, components and modifiers feed the mutation engine, blueprints are
// inert collectibles.
type FragmentType string

const (
	FragmentBaseItem  FragmentType = "base_item"
	FragmentComponent FragmentType = "component"
	FragmentModifier  FragmentType = "modifier"
	FragmentBlueprint FragmentType = "blueprint"
)

// IsValid reports whether t is one of the four known fragment types.
func (t FragmentType) IsValid() bool {
	switch t {
	case FragmentBaseItem, FragmentComponent, FragmentModifier, FragmentBlueprint:
		return true
	}
	return false
}

// StatMod is a named modifier rolled onto a fragment at creation.
type StatMod struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Affix is a modifier appended to a fragment after creation. Source records
// which transformation produced it.
type Affix struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Source string `json:"source"`
}

// AffixSourceMutation marks affixes grafted on by the mutation engine.
const AffixSourceMutation = "mutation"

// Fragment is a generated item instance. Fragments are immutable once
// created; mutation produces a new fragment rather than editing one in place.
type Fragment struct {
	ID           string         `json:"id" db:"fragment_id"`
	GameStateID  string         `json:"game_state_id" db:"game_state_id"`
	Name         string         `json:"name" db:"name"`
	Type         FragmentType   `json:"type" db:"fragment_type"`
	Rarity       Rarity         `json:"rarity" db:"rarity"`
	BaseStats    map[string]int `json:"base_stats" db:"base_stats"`
	ImplicitMods []StatMod      `json:"implicit_mods" db:"implicit_mods"`
	Affixes      []Affix        `json:"affixes" db:"affixes"`
	IsCorrupted  bool           `json:"is_corrupted" db:"is_corrupted"`
	Quantity     int            `json:"quantity" db:"quantity"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}
