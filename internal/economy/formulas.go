package economy

import (
	"math"
	"time"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Spin cost curve: linear decrease per flux cost level, floored.
const (
	baseSpinCost          = 25
	spinCostReductionStep = 5
	minSpinCost           = 5
)

// Shatter refunds per unit of quantity before the rarity multiplier.
const shatterBaseValue = 5

// Device upgrade cost curve parameters.
const upgradeCostGrowth = 1.5

// upgradeBaseCosts anchor the exponential cost curve per track.
var upgradeBaseCosts = map[domain.UpgradeTrack]int{
	domain.TrackSpinSpeed:     500,
	domain.TrackRarityOdds:    1200,
	domain.TrackFluxCost:      800,
	domain.TrackMutationSlots: 2500,
}

// SpinCost returns the flux cost of one spin for the current device state.
func SpinCost(gs *domain.GameState) int {
	cost := baseSpinCost - (gs.FluxCostLevel-1)*spinCostReductionStep
	if cost < minSpinCost {
		return minSpinCost
	}
	return cost
}

// ShatterValue returns the flux refunded for destroying a fragment.
func ShatterValue(f *domain.Fragment) int {
	return int(math.Floor(shatterBaseValue * f.Rarity.ShatterMultiplier() * float64(f.Quantity)))
}

// UpgradeCost returns the flux cost of buying the next level on a track,
// given the track's current level. Unknown tracks report an error.
func UpgradeCost(level int, track domain.UpgradeTrack) (int, error) {
	base, ok := upgradeBaseCosts[track]
	if !ok {
		return 0, domain.ErrUnknownUpgradeTrack
	}
	return int(math.Floor(float64(base) * math.Pow(upgradeCostGrowth, float64(level-1)))), nil
}

// DeviceStats is the derived, read-only view of the device upgrade levels.
type DeviceStats struct {
	SpinSpeed         float64 `json:"spin_speed"`
	RarityBonus       float64 `json:"rarity_bonus"`
	FluxCost          int     `json:"flux_cost"`
	FluxCostReduction int     `json:"flux_cost_reduction"`
	MutationSlots     int     `json:"mutation_slots"`
}

// GetDeviceStats computes the derived device view. FluxCost and
// FluxCostReduction are two presentations of the same curve: the effective
// spin cost and how much of the base cost the device has shaved off.
func GetDeviceStats(gs *domain.GameState) DeviceStats {
	spinCost := SpinCost(gs)
	return DeviceStats{
		SpinSpeed:         1 + float64(gs.SpinSpeedLevel-1)*0.2,
		RarityBonus:       float64(gs.RarityOddsLevel-1) * 0.0005,
		FluxCost:          spinCost,
		FluxCostReduction: baseSpinCost - spinCost,
		MutationSlots:     2 + gs.MutationSlotsLevel,
	}
}

// SalePrice returns the flux gained for selling a fragment at the listing's
// current price. A missing listing falls back to the default price. The
// result is rounded to the nearest integer and never drops below 1.
func SalePrice(listing *domain.MarketplaceListing, f *domain.Fragment) int {
	unit := domain.DefaultListingPrice
	if listing != nil {
		unit = listing.CurrentPrice
	}
	price := int(math.Round(float64(unit) * float64(f.Quantity)))
	if price < domain.MinListingPrice {
		return domain.MinListingPrice
	}
	return price
}

// ApplySale folds one sale into the listing: supply drains, demand creeps up
// toward its cap, and the price is nudged by 1% of (1 - demand). Demand past
// 1.0 therefore pushes the price down; that asymmetry is contractual behavior
// carried over from the original economy, not a bug to fix here.
func ApplySale(l *domain.MarketplaceListing, now time.Time) {
	if l.Supply > 0 {
		l.Supply--
	}

	l.Demand += domain.DemandStepPerSale
	if l.Demand > domain.MaxDemand {
		l.Demand = domain.MaxDemand
	}

	next := int(math.Round(float64(l.CurrentPrice) * (1 + 0.01*(1-l.Demand))))
	if next < domain.MinListingPrice {
		next = domain.MinListingPrice
	}
	l.CurrentPrice = next
	l.PriceHistory = append(l.PriceHistory, domain.PricePoint{Price: next, RecordedAt: now})
	l.UpdatedAt = now
}
