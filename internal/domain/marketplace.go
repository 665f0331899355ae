package domain

import "time"

// PricePoint is one entry in a listing's append-only price history.
type PricePoint struct {
	Price      int       `json:"price"`
	RecordedAt time.Time `json:"recorded_at"`
}

// MarketplaceListing is the aggregate pricing state for one
// (fragment type, rarity) pair. Many fragments map to one listing.
type MarketplaceListing struct {
	ID           int          `json:"id" db:"listing_id"`
	FragmentType FragmentType `json:"fragment_type" db:"fragment_type"`
	Rarity       Rarity       `json:"rarity" db:"rarity"`
	BasePrice    int          `json:"base_price" db:"base_price"`
	CurrentPrice int          `json:"current_price" db:"current_price"`
	Demand       float64      `json:"demand" db:"demand"`
	Supply       int          `json:"supply" db:"supply"`
	PriceHistory []PricePoint `json:"price_history" db:"price_history"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// Marketplace bounds applied on every sale.
const (
	DefaultListingPrice = 10
	MaxDemand           = 3.0
	DemandStepPerSale   = 0.01
	MinListingPrice     = 1
)
