package mutation

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/repository"
)

// MockRepository implements repository.Game for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetGameStateBySession(ctx context.Context, sessionID string) (*domain.GameState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockRepository) CreateGameState(ctx context.Context, gs *domain.GameState) error {
	args := m.Called(ctx, gs)
	return args.Error(0)
}

func (m *MockRepository) GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error) {
	args := m.Called(ctx, fragmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fragment), args.Error(1)
}

func (m *MockRepository) ListFragments(ctx context.Context, gameStateID string) ([]domain.Fragment, error) {
	args := m.Called(ctx, gameStateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fragment), args.Error(1)
}

func (m *MockRepository) GetListing(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error) {
	args := m.Called(ctx, fragmentType, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceListing), args.Error(1)
}

func (m *MockRepository) ListListings(ctx context.Context) ([]domain.MarketplaceListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketplaceListing), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetGameStateForUpdate(ctx context.Context, sessionID string) (*domain.GameState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockTx) UpdateGameState(ctx context.Context, gs *domain.GameState) error {
	args := m.Called(ctx, gs)
	return args.Error(0)
}

func (m *MockTx) CreateFragment(ctx context.Context, f *domain.Fragment) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockTx) GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error) {
	args := m.Called(ctx, fragmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fragment), args.Error(1)
}

func (m *MockTx) DeleteFragment(ctx context.Context, fragmentID string) error {
	args := m.Called(ctx, fragmentID)
	return args.Error(0)
}

func (m *MockTx) GetListingForUpdate(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error) {
	args := m.Called(ctx, fragmentType, rarity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketplaceListing), args.Error(1)
}

func (m *MockTx) UpdateListing(ctx context.Context, l *domain.MarketplaceListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure the mocks satisfy the repository interfaces
var (
	_ repository.Game = (*MockRepository)(nil)
	_ repository.Tx   = (*MockTx)(nil)
)
