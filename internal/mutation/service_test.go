package mutation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/driftbyte/fluxforge/internal/domain"
)

const testSessionID = "session-abc"

func createTestState() *domain.GameState {
	gs := domain.NewGameState(testSessionID)
	gs.ID = "gs-1"
	gs.Flux = 1000
	return gs
}

func ownedBase() *domain.Fragment {
	return &domain.Fragment{
		ID:          "base-1",
		GameStateID: "gs-1",
		Name:        "Rift Blade",
		Type:        domain.FragmentBaseItem,
		Rarity:      domain.RarityCommon,
		BaseStats:   map[string]int{"power": 10},
		Quantity:    1,
	}
}

func ownedComponent(id string) *domain.Fragment {
	return &domain.Fragment{
		ID:          id,
		GameStateID: "gs-1",
		Name:        "Void Shard",
		Type:        domain.FragmentComponent,
		Rarity:      domain.RarityCommon,
		BaseStats:   map[string]int{"enhancement": 20},
		Quantity:    1,
	}
}

// scriptedService returns a service whose stochastic draws are replaced by
// the given values, consumed in order.
func scriptedService(repo *MockRepository, draws ...float64) *service {
	svc := NewService(repo).(*service)
	i := 0
	svc.rnd = func() float64 {
		v := draws[i]
		i++
		return v
	}
	return svc
}

func TestMutate_Success(t *testing.T) {
	// ARRANGE
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	base := ownedBase()
	comp := ownedComponent("c-1")

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)
	tx.On("DeleteFragment", mock.Anything, "base-1").Return(nil)
	tx.On("DeleteFragment", mock.Anything, "c-1").Return(nil)
	tx.On("CreateFragment", mock.Anything, mock.AnythingOfType("*domain.Fragment")).Return(nil)
	tx.On("UpdateGameState", mock.Anything, gs).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	// Success draw passes (0.10 < 0.85), evolution draw fails (0.50 >= 0.10).
	svc := scriptedService(repo, 0.10, 0.50)

	// ACT
	result, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	// ASSERT
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.Evolved)
	assert.Equal(t, 250, result.Cost)
	assert.InDelta(t, 0.85, result.SuccessRate, 1e-9)
	assert.Equal(t, 750, result.FluxRemaining)

	require.NotNil(t, result.Fragment)
	assert.Equal(t, "Mutated Rift Blade", result.Fragment.Name)
	assert.Equal(t, domain.RarityCommon, result.Fragment.Rarity)
	assert.Equal(t, "gs-1", result.Fragment.GameStateID)
	assert.NotEmpty(t, result.Fragment.ID)

	tx.AssertExpectations(t)
}

func TestMutate_FailureStillConsumesInputsAndFlux(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	base := ownedBase()
	comp := ownedComponent("c-1")

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)
	tx.On("DeleteFragment", mock.Anything, "base-1").Return(nil)
	tx.On("DeleteFragment", mock.Anything, "c-1").Return(nil)
	tx.On("UpdateGameState", mock.Anything, gs).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	// Success draw fails (0.99 >= 0.85). No evolution draw happens.
	svc := scriptedService(repo, 0.99)

	result, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.Fragment)
	assert.Equal(t, 250, result.Cost)
	assert.Equal(t, 750, result.FluxRemaining, "cost charged on failure")

	// Inputs are consumed even though the mutation failed.
	tx.AssertCalled(t, "DeleteFragment", mock.Anything, "base-1")
	tx.AssertCalled(t, "DeleteFragment", mock.Anything, "c-1")
	tx.AssertNotCalled(t, "CreateFragment", mock.Anything, mock.Anything)
}

func TestMutate_Evolution(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	base := ownedBase()
	comp := ownedComponent("c-1")

	var created *domain.Fragment
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)
	tx.On("DeleteFragment", mock.Anything, mock.Anything).Return(nil)
	tx.On("CreateFragment", mock.Anything, mock.AnythingOfType("*domain.Fragment")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Fragment) }).
		Return(nil)
	tx.On("UpdateGameState", mock.Anything, gs).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()

	// Both draws pass: success (0.10 < 0.85), evolution (0.05 < 0.10).
	svc := scriptedService(repo, 0.10, 0.05)

	result, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.Evolved)
	require.NotNil(t, created)
	assert.Equal(t, domain.RarityUncommon, created.Rarity, "evolved one tier above the base")
	assert.Equal(t, "Evolved Mutated Rift Blade", created.Name)
}

func TestMutate_RejectsNonBaseItem(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	notABase := ownedComponent("base-1")
	comp := ownedComponent("c-1")

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(notABase, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := scriptedService(repo)

	result, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBaseNotBaseItem)
	assert.Nil(t, result)

	// A precondition rejection must leave everything untouched.
	assert.Equal(t, 1000, gs.Flux)
	tx.AssertNotCalled(t, "DeleteFragment", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "UpdateGameState", mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMutate_RejectsInvalidComponentType(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	base := ownedBase()
	blueprint := &domain.Fragment{
		ID: "c-1", GameStateID: "gs-1", Type: domain.FragmentBlueprint, Rarity: domain.RarityCommon,
	}

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(blueprint, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := scriptedService(repo)

	_, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	assert.ErrorIs(t, err, domain.ErrInvalidComponent)
}

func TestMutate_RejectsTooManyComponents(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState() // slot level 1: max 3 components
	base := ownedBase()

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	ids := []string{"c-1", "c-2", "c-3", "c-4"}
	for _, id := range ids {
		tx.On("GetFragment", mock.Anything, id).Return(ownedComponent(id), nil)
	}
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := scriptedService(repo)

	_, err := svc.Mutate(context.Background(), testSessionID, "base-1", ids)

	assert.ErrorIs(t, err, domain.ErrTooManyComponents)
	tx.AssertNotCalled(t, "DeleteFragment", mock.Anything, mock.Anything)
}

func TestMutate_InsufficientFlux(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	gs.Flux = 100 // cost is 250
	base := ownedBase()
	comp := ownedComponent("c-1")

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	tx.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := scriptedService(repo)

	_, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	assert.ErrorIs(t, err, domain.ErrInsufficientFlux)
	assert.Equal(t, 100, gs.Flux)
	tx.AssertNotCalled(t, "DeleteFragment", mock.Anything, mock.Anything)
}

func TestMutate_ForeignFragmentRejected(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	gs := createTestState()
	foreign := ownedBase()
	foreign.GameStateID = "someone-else"

	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetGameStateForUpdate", mock.Anything, testSessionID).Return(gs, nil)
	tx.On("GetFragment", mock.Anything, "base-1").Return(foreign, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := scriptedService(repo)

	_, err := svc.Mutate(context.Background(), testSessionID, "base-1", []string{"c-1"})

	assert.ErrorIs(t, err, domain.ErrFragmentNotFound)
}

func TestPreviewMutation_ReportsWithoutTouchingState(t *testing.T) {
	repo := new(MockRepository)
	gs := createTestState()
	base := ownedBase()
	comp := ownedComponent("c-1")

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("GetFragment", mock.Anything, "base-1").Return(base, nil)
	repo.On("GetFragment", mock.Anything, "c-1").Return(comp, nil)

	svc := NewService(repo)

	preview, err := svc.PreviewMutation(context.Background(), testSessionID, "base-1", []string{"c-1"})

	require.NoError(t, err)
	assert.Equal(t, 250, preview.Cost)
	assert.InDelta(t, 0.85, preview.SuccessRate, 1e-9)
	assert.Equal(t, 3, preview.MaxComponents)

	assert.Equal(t, 1000, gs.Flux)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestPreviewMutation_RejectsNoComponents(t *testing.T) {
	repo := new(MockRepository)
	gs := createTestState()
	base := ownedBase()

	repo.On("GetGameStateBySession", mock.Anything, testSessionID).Return(gs, nil)
	repo.On("GetFragment", mock.Anything, "base-1").Return(base, nil)

	svc := NewService(repo)

	_, err := svc.PreviewMutation(context.Background(), testSessionID, "base-1", nil)

	assert.ErrorIs(t, err, domain.ErrNoComponents)
}
