package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/logger"
	"github.com/driftbyte/fluxforge/internal/metrics"
	"github.com/driftbyte/fluxforge/internal/repository"
)

// ShatterResult contains the outcome of destroying a fragment for flux.
type ShatterResult struct {
	FluxGained    int `json:"flux_gained"`
	FluxRemaining int `json:"flux_remaining"`
}

// SellResult contains the outcome of a marketplace sale.
type SellResult struct {
	FluxGained    int  `json:"flux_gained"`
	FluxRemaining int  `json:"flux_remaining"`
	UnitPrice     int  `json:"unit_price"`
	ListingFound  bool `json:"listing_found"`
}

// UpgradeResult contains the outcome of a device upgrade purchase.
type UpgradeResult struct {
	Track         domain.UpgradeTrack `json:"track"`
	NewLevel      int                 `json:"new_level"`
	FluxSpent     int                 `json:"flux_spent"`
	FluxRemaining int                 `json:"flux_remaining"`
}

// Service defines the interface for economy operations
type Service interface {
	Shatter(ctx context.Context, sessionID, fragmentID string) (*ShatterResult, error)
	Sell(ctx context.Context, sessionID, fragmentID string) (*SellResult, error)
	UpgradeDevice(ctx context.Context, sessionID string, track domain.UpgradeTrack) (*UpgradeResult, error)
	GetPrices(ctx context.Context) ([]domain.MarketplaceListing, error)
}

type service struct {
	repo  repository.Game
	cache *listingCache
	now   func() time.Time
}

// NewService creates a new economy service
func NewService(repo repository.Game) Service {
	return &service{
		repo:  repo,
		cache: newListingCache(listingCacheSize, listingCacheTTL),
		now:   time.Now,
	}
}

// Shatter destroys a fragment and refunds flux by the shatter curve.
func (s *service) Shatter(ctx context.Context, sessionID, fragmentID string) (*ShatterResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShatterCalled, "sessionID", sessionID, "fragmentID", fragmentID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	gs, fragment, err := getOwnedFragment(ctx, tx, sessionID, fragmentID)
	if err != nil {
		return nil, err
	}

	value := ShatterValue(fragment)
	gs.Flux += value

	if err := tx.DeleteFragment(ctx, fragment.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteFragmentFailed, err)
	}
	if err := tx.UpdateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.FragmentsShattered.WithLabelValues(string(fragment.Rarity)).Inc()
	metrics.FluxEarned.WithLabelValues(metrics.OperationShatter).Add(float64(value))

	log.Info(LogMsgFragmentShattered, "fragmentID", fragment.ID, "rarity", fragment.Rarity, "fluxGained", value)
	return &ShatterResult{FluxGained: value, FluxRemaining: gs.Flux}, nil
}

// Sell liquidates a fragment at the marketplace listing's current price and
// folds the sale back into the listing.
func (s *service) Sell(ctx context.Context, sessionID, fragmentID string) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCalled, "sessionID", sessionID, "fragmentID", fragmentID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	gs, fragment, err := getOwnedFragment(ctx, tx, sessionID, fragmentID)
	if err != nil {
		return nil, err
	}

	listing, err := tx.GetListingForUpdate(ctx, fragment.Type, fragment.Rarity)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetListingFailed, err)
	}

	price := SalePrice(listing, fragment)
	unitPrice := domain.DefaultListingPrice
	if listing != nil {
		unitPrice = listing.CurrentPrice
	}

	gs.Flux += price

	if err := tx.DeleteFragment(ctx, fragment.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteFragmentFailed, err)
	}
	if listing != nil {
		ApplySale(listing, s.now())
		if err := tx.UpdateListing(ctx, listing); err != nil {
			return nil, fmt.Errorf(ErrMsgUpdateListingFailed, err)
		}
	}
	if err := tx.UpdateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	if listing != nil {
		s.cache.Invalidate(fragment.Type, fragment.Rarity)
	}

	metrics.FragmentsSold.WithLabelValues(string(fragment.Type), string(fragment.Rarity)).Inc()
	metrics.FluxEarned.WithLabelValues(metrics.OperationSell).Add(float64(price))

	log.Info(LogMsgFragmentSold, "fragmentID", fragment.ID, "price", price)
	return &SellResult{
		FluxGained:    price,
		FluxRemaining: gs.Flux,
		UnitPrice:     unitPrice,
		ListingFound:  listing != nil,
	}, nil
}

// UpgradeDevice purchases the next level on an upgrade track.
func (s *service) UpgradeDevice(ctx context.Context, sessionID string, track domain.UpgradeTrack) (*UpgradeResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradeCalled, "sessionID", sessionID, "track", track)

	if !track.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownUpgradeTrack, track)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	gs, err := tx.GetGameStateForUpdate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cost, err := UpgradeCost(gs.Level(track), track)
	if err != nil {
		return nil, err
	}
	if gs.Flux < cost {
		return nil, fmt.Errorf("%w: need %d flux, have %d", domain.ErrInsufficientFlux, cost, gs.Flux)
	}

	gs.Flux -= cost
	gs.IncrementLevel(track)

	if err := tx.UpdateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.DeviceUpgrades.WithLabelValues(string(track)).Inc()
	metrics.FluxSpent.WithLabelValues(metrics.OperationUpgrade).Add(float64(cost))

	log.Info(LogMsgDeviceUpgraded, "track", track, "newLevel", gs.Level(track), "cost", cost)
	return &UpgradeResult{
		Track:         track,
		NewLevel:      gs.Level(track),
		FluxSpent:     cost,
		FluxRemaining: gs.Flux,
	}, nil
}

// GetPrices returns all marketplace listings, served from the read cache
// when warm.
func (s *service) GetPrices(ctx context.Context) ([]domain.MarketplaceListing, error) {
	if listings, ok := s.cache.GetAll(); ok {
		return listings, nil
	}

	listings, err := s.repo.ListListings(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetListingFailed, err)
	}
	s.cache.SetAll(listings)
	return listings, nil
}

// getOwnedFragment loads the caller's game state and a fragment, verifying
// the fragment belongs to that state. A fragment owned by someone else is
// reported as not found rather than leaking its existence.
func getOwnedFragment(ctx context.Context, tx repository.Tx, sessionID, fragmentID string) (*domain.GameState, *domain.Fragment, error) {
	gs, err := tx.GetGameStateForUpdate(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}

	fragment, err := tx.GetFragment(ctx, fragmentID)
	if err != nil {
		return nil, nil, err
	}
	if fragment == nil || fragment.GameStateID != gs.ID {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrFragmentNotFound, fragmentID)
	}
	return gs, fragment, nil
}
