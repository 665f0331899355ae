package domain

import "time"

// UpgradeTrack identifies one of the four independent device upgrade tracks.
type UpgradeTrack string

const (
	TrackSpinSpeed     UpgradeTrack = "spin_speed"
	TrackRarityOdds    UpgradeTrack = "rarity_odds"
	TrackFluxCost      UpgradeTrack = "flux_cost"
	TrackMutationSlots UpgradeTrack = "mutation_slots"
)

// IsValid reports whether t names a known upgrade track.
func (t UpgradeTrack) IsValid() bool {
	switch t {
	case TrackSpinSpeed, TrackRarityOdds, TrackFluxCost, TrackMutationSlots:
		return true
	}
	return false
}

// GameState is the per-player progression record. Each state belongs to
// exactly one session and is created lazily on first access.
//
// Invariants: Flux >= 0 at all times; every level >= 1.
type GameState struct {
	ID                 string    `json:"id" db:"game_state_id"`
	SessionID          string    `json:"session_id" db:"session_id"`
	Flux               int       `json:"flux" db:"flux"`
	TotalSpins         int       `json:"total_spins" db:"total_spins"`
	SpinSpeedLevel     int       `json:"spin_speed_level" db:"spin_speed_level"`
	RarityOddsLevel    int       `json:"rarity_odds_level" db:"rarity_odds_level"`
	FluxCostLevel      int       `json:"flux_cost_level" db:"flux_cost_level"`
	MutationSlotsLevel int       `json:"mutation_slots_level" db:"mutation_slots_level"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Level returns the current level of the given upgrade track, or 0 for an
// unknown track.
func (g *GameState) Level(track UpgradeTrack) int {
	switch track {
	case TrackSpinSpeed:
		return g.SpinSpeedLevel
	case TrackRarityOdds:
		return g.RarityOddsLevel
	case TrackFluxCost:
		return g.FluxCostLevel
	case TrackMutationSlots:
		return g.MutationSlotsLevel
	}
	return 0
}

// IncrementLevel bumps the given track by one. Unknown tracks are ignored;
// callers validate the track before mutating state.
func (g *GameState) IncrementLevel(track UpgradeTrack) {
	switch track {
	case TrackSpinSpeed:
		g.SpinSpeedLevel++
	case TrackRarityOdds:
		g.RarityOddsLevel++
	case TrackFluxCost:
		g.FluxCostLevel++
	case TrackMutationSlots:
		g.MutationSlotsLevel++
	}
}

// NewGameState returns the starting progression record for a session.
func NewGameState(sessionID string) *GameState {
	return &GameState{
		SessionID:          sessionID,
		Flux:               StartingFlux,
		SpinSpeedLevel:     1,
		RarityOddsLevel:    1,
		FluxCostLevel:      1,
		MutationSlotsLevel: 1,
	}
}
