package forge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/rng"
)

const testSessionID = "session-abc"

func createTestState() *domain.GameState {
	gs := domain.NewGameState(testSessionID)
	gs.ID = "gs-1"
	return gs
}

func fixedSeed(seed int64) func() *rng.Sequence {
	return func() *rng.Sequence { return rng.New(seed) }
}

func TestSpin_Success(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("CreateFragment", mock.Anything, mock.AnythingOfType("*domain.Fragment")).Return(nil)
	tx.On("UpdateGameState", mock.Anything, gs).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := NewService(repo, fixedSeed(42))

	// ACT
	result, err := svc.Spin(context.Background(), testSessionID)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, 25, result.Cost, "level one device pays the base spin cost")
	assert.Equal(t, domain.StartingFlux-25, result.FluxRemaining)
	assert.Equal(t, 1, result.TotalSpins)
	assert.NotEmpty(t, result.Fragment.ID)
	assert.Equal(t, gs.ID, result.Fragment.GameStateID)

	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestSpin_InsufficientFlux(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	gs.Flux = 3

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(repo, fixedSeed(42))

	result, err := svc.Spin(context.Background(), testSessionID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientFlux)
	assert.Nil(t, result)

	// Nothing persisted and nothing committed.
	tx.AssertNotCalled(t, "CreateFragment", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "UpdateGameState", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSpin_EmptySessionID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, fixedSeed(42))

	result, err := svc.Spin(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, result)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestSpin_ReducedCostAtHigherFluxCostLevel(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	gs.FluxCostLevel = 3 // 25 - 2*5 = 15

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("CreateFragment", mock.Anything, mock.Anything).Return(nil)
	tx.On("UpdateGameState", mock.Anything, gs).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := NewService(repo, fixedSeed(42))

	result, err := svc.Spin(context.Background(), testSessionID)

	require.NoError(t, err)
	assert.Equal(t, 15, result.Cost)
}

func TestSpin_SameSeedSameFirstFragment(t *testing.T) {
	// Two services pinned to the same seed must roll identical first
	// fragments, differing only in their assigned IDs.
	spin := func() *SpinResult {
		repo := new(MockRepository)
		tx := new(MockTx)
		gs := createTestState()

		repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
		repo.On("BeginTx", mock.Anything).Return(tx, nil)
		tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
		tx.On("CreateFragment", mock.Anything, mock.Anything).Return(nil)
		tx.On("UpdateGameState", mock.Anything, mock.Anything).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)
		tx.On("Rollback", mock.Anything).Return(nil).Maybe()

		svc := NewService(repo, fixedSeed(42))
		result, err := svc.Spin(context.Background(), testSessionID)
		require.NoError(t, err)
		return result
	}

	a := spin()
	b := spin()

	a.Fragment.ID = ""
	b.Fragment.ID = ""
	assert.Equal(t, a.Fragment, b.Fragment)
}

func TestGetState_ExistingSession(t *testing.T) {
	repo := new(MockRepository)
	gs := createTestState()

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)

	svc := NewService(repo, fixedSeed(42))

	got, err := svc.GetState(context.Background(), testSessionID)

	require.NoError(t, err)
	assert.Equal(t, gs, got)
	repo.AssertNotCalled(t, "CreateGameState", mock.Anything, mock.Anything)
}

func TestGetState_CreatesOnFirstAccess(t *testing.T) {
	repo := new(MockRepository)

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(nil, domain.ErrGameStateNotFound)
	repo.On("CreateGameState", mock.Anything, mock.AnythingOfType("*domain.GameState")).Return(nil)

	svc := NewService(repo, fixedSeed(42))

	got, err := svc.GetState(context.Background(), testSessionID)

	require.NoError(t, err)
	assert.Equal(t, testSessionID, got.SessionID)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, domain.StartingFlux, got.Flux)
	assert.Equal(t, 1, got.SpinSpeedLevel)
	assert.Equal(t, 1, got.RarityOddsLevel)
	assert.Equal(t, 1, got.FluxCostLevel)
	assert.Equal(t, 1, got.MutationSlotsLevel)
	assert.Zero(t, got.TotalSpins)

	repo.AssertExpectations(t)
}

func TestListFragments_ReturnsCollection(t *testing.T) {
	repo := new(MockRepository)
	gs := createTestState()
	fragments := []domain.Fragment{
		{ID: "f-1", GameStateID: gs.ID, Name: "Rift Blade"},
		{ID: "f-2", GameStateID: gs.ID, Name: "Void Shard"},
	}

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("ListFragments", mock.Anything, gs.ID).Return(fragments, nil)

	svc := NewService(repo, fixedSeed(42))

	got, err := svc.ListFragments(context.Background(), testSessionID)

	require.NoError(t, err)
	assert.Equal(t, fragments, got)
}

func TestSpin_SequencePersistsAcrossSpins(t *testing.T) {
	// The session's generator must advance between spins rather than being
	// re-seeded, otherwise every spin would roll the same fragment.
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	gs.Flux = 10000

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("CreateFragment", mock.Anything, mock.Anything).Return(nil)
	tx.On("UpdateGameState", mock.Anything, mock.Anything).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	svc := NewService(repo, fixedSeed(42))

	first, err := svc.Spin(context.Background(), testSessionID)
	require.NoError(t, err)
	second, err := svc.Spin(context.Background(), testSessionID)
	require.NoError(t, err)

	first.Fragment.ID = ""
	second.Fragment.ID = ""
	assert.NotEqual(t, first.Fragment, second.Fragment)
	assert.Equal(t, 2, second.TotalSpins)
}
