package repository

import (
	"context"

	"github.com/driftbyte/fluxforge/internal/domain"
)

// Game defines the persistence interface shared by the spin, economy and
// mutation services. The core algorithms never touch storage directly; they
// consume these CRUD-shaped operations only.
type Game interface {
	GetGameStateBySession(ctx context.Context, sessionID string) (*domain.GameState, error)
	CreateGameState(ctx context.Context, gs *domain.GameState) error

	GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error)
	ListFragments(ctx context.Context, gameStateID string) ([]domain.Fragment, error)

	GetListing(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error)
	ListListings(ctx context.Context) ([]domain.MarketplaceListing, error)

	BeginTx(ctx context.Context) (Tx, error)
}
