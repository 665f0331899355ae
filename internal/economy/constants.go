package economy

import "time"

// Listing cache sizing. The board is one entry; the size leaves headroom if
// per-listing entries come back later.
const (
	listingCacheSize = 16
	listingCacheTTL  = 30 * time.Second
)

// Log messages
const (
	LogMsgShatterCalled     = "Shatter called"
	LogMsgSellCalled        = "Sell called"
	LogMsgUpgradeCalled     = "UpgradeDevice called"
	LogMsgFragmentShattered = "Fragment shattered"
	LogMsgFragmentSold      = "Fragment sold"
	LogMsgDeviceUpgraded    = "Device upgraded"
)

// Error message formats
const (
	ErrMsgBeginTxFailed        = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed       = "failed to commit transaction: %w"
	ErrMsgUpdateStateFailed    = "failed to update game state: %w"
	ErrMsgDeleteFragmentFailed = "failed to delete fragment: %w"
	ErrMsgGetListingFailed     = "failed to get marketplace listing: %w"
	ErrMsgUpdateListingFailed  = "failed to update marketplace listing: %w"
)
