package repository

import (
	"context"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Tx defines the transactional operations. Every mutating game operation runs
// its read-validate-compute-persist sequence inside one Tx so game states are
// updated atomically per session.
type Tx interface {
	GetGameStateForUpdate(ctx context.Context, sessionID string) (*domain.GameState, error)
	UpdateGameState(ctx context.Context, gs *domain.GameState) error

	CreateFragment(ctx context.Context, f *domain.Fragment) error
	GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error)
	DeleteFragment(ctx context.Context, fragmentID string) error

	GetListingForUpdate(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error)
	UpdateListing(ctx context.Context, l *domain.MarketplaceListing) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
