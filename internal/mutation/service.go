package mutation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/logger"
	"github.com/driftbyte/fluxforge/internal/metrics"
	"github.com/driftbyte/fluxforge/internal/repository"
	"github.com/driftbyte/fluxforge/internal/rng"
)

// Preview reports the cost and success rate of a mutation before committing.
type Preview struct {
	Cost          int     `json:"cost"`
	SuccessRate   float64 `json:"success_rate"`
	MaxComponents int     `json:"max_components"`
}

// Result contains the outcome of a mutation attempt. The cost is paid and the
// inputs are consumed whether or not the attempt succeeded.
type Result struct {
	Success       bool             `json:"success"`
	Evolved       bool             `json:"evolved"`
	Cost          int              `json:"cost"`
	SuccessRate   float64          `json:"success_rate"`
	FluxRemaining int              `json:"flux_remaining"`
	Fragment      *domain.Fragment `json:"fragment,omitempty"`
}

// Service defines the interface for mutation operations
type Service interface {
	PreviewMutation(ctx context.Context, sessionID, baseID string, componentIDs []string) (*Preview, error)
	Mutate(ctx context.Context, sessionID, baseID string, componentIDs []string) (*Result, error)
}

// service runs mutations. The success and evolution draws come from an
// unseeded source on purpose: fragment generation stays replayable from a
// seed while crafting outcomes stay unpredictable. rnd is injectable so tests
// can script both draws.
type service struct {
	repo repository.Game
	rnd  func() float64
}

// NewService creates a new mutation service
func NewService(repo repository.Game) Service {
	return &service{
		repo: repo,
		rnd:  rng.UnseededFloat,
	}
}

// PreviewMutation computes cost and success rate without touching state.
func (s *service) PreviewMutation(ctx context.Context, sessionID, baseID string, componentIDs []string) (*Preview, error) {
	gs, err := s.gameState(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	base, components, err := s.loadInputs(ctx, gs, baseID, componentIDs)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(base, components, gs); err != nil {
		return nil, err
	}

	return &Preview{
		Cost:          Cost(base, components),
		SuccessRate:   SuccessRate(base, components, gs),
		MaxComponents: MaxComponents(gs),
	}, nil
}

// Mutate combines a base fragment with components. Preconditions are checked
// before anything changes; after that the cost is debited and every input
// consumed unconditionally - failed mutations are meant to hurt.
func (s *service) Mutate(ctx context.Context, sessionID, baseID string, componentIDs []string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgMutateCalled, "sessionID", sessionID, "baseID", baseID, "components", len(componentIDs))

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	gs, err := tx.GetGameStateForUpdate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	base, components, err := s.loadInputsTx(ctx, tx, gs, baseID, componentIDs)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(base, components, gs); err != nil {
		return nil, err
	}

	cost := Cost(base, components)
	if gs.Flux < cost {
		return nil, fmt.Errorf("%w: need %d flux, have %d", domain.ErrInsufficientFlux, cost, gs.Flux)
	}

	// Point of no return: debit and consume regardless of outcome.
	gs.Flux -= cost
	if err := tx.DeleteFragment(ctx, base.ID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteFragmentFailed, err)
	}
	for _, c := range components {
		if err := tx.DeleteFragment(ctx, c.ID); err != nil {
			return nil, fmt.Errorf(ErrMsgDeleteFragmentFailed, err)
		}
	}

	rate := SuccessRate(base, components, gs)
	result := &Result{
		Cost:        cost,
		SuccessRate: rate,
	}

	if s.rnd() < rate {
		result.Success = true
		mutated := Transform(base, components)
		mutated.ID = uuid.NewString()
		mutated.GameStateID = gs.ID

		// Independent evolution roll, separate from the success draw.
		if s.rnd() < evolveChance {
			Evolve(&mutated)
			result.Evolved = mutated.Rarity != base.Rarity
		}

		if err := tx.CreateFragment(ctx, &mutated); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateFragmentFailed, err)
		}
		result.Fragment = &mutated
	}

	if err := tx.UpdateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	result.FluxRemaining = gs.Flux

	outcome := metrics.OutcomeFailure
	if result.Evolved {
		outcome = metrics.OutcomeEvolved
	} else if result.Success {
		outcome = metrics.OutcomeSuccess
	}
	metrics.MutationsTotal.WithLabelValues(outcome).Inc()
	metrics.FluxSpent.WithLabelValues(metrics.OperationMutation).Add(float64(cost))

	log.Info(LogMsgMutationDone, "success", result.Success, "evolved", result.Evolved, "cost", cost)
	return result, nil
}

// validateInputs enforces the mutation preconditions. Called before any state
// change so a rejection leaves fragments and flux untouched.
func validateInputs(base *domain.Fragment, components []*domain.Fragment, gs *domain.GameState) error {
	if base.Type != domain.FragmentBaseItem {
		return fmt.Errorf("%w: got %s", domain.ErrBaseNotBaseItem, base.Type)
	}
	if len(components) == 0 {
		return domain.ErrNoComponents
	}
	for _, c := range components {
		if c.Type != domain.FragmentComponent && c.Type != domain.FragmentModifier {
			return fmt.Errorf("%w: got %s", domain.ErrInvalidComponent, c.Type)
		}
	}
	if max := MaxComponents(gs); len(components) > max {
		return fmt.Errorf("%w: %d components, device holds %d", domain.ErrTooManyComponents, len(components), max)
	}
	return nil
}

func (s *service) gameState(ctx context.Context, sessionID string) (*domain.GameState, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id required", domain.ErrInvalidInput)
	}
	return s.repo.GetGameStateBySession(ctx, sessionID)
}

// loadInputs fetches and ownership-checks the base and component fragments.
func (s *service) loadInputs(ctx context.Context, gs *domain.GameState, baseID string, componentIDs []string) (*domain.Fragment, []*domain.Fragment, error) {
	return loadFragments(ctx, s.repo.GetFragment, gs, baseID, componentIDs)
}

func (s *service) loadInputsTx(ctx context.Context, tx repository.Tx, gs *domain.GameState, baseID string, componentIDs []string) (*domain.Fragment, []*domain.Fragment, error) {
	return loadFragments(ctx, tx.GetFragment, gs, baseID, componentIDs)
}

type fragmentGetter func(ctx context.Context, fragmentID string) (*domain.Fragment, error)

func loadFragments(ctx context.Context, get fragmentGetter, gs *domain.GameState, baseID string, componentIDs []string) (*domain.Fragment, []*domain.Fragment, error) {
	base, err := getOwned(ctx, get, gs, baseID)
	if err != nil {
		return nil, nil, err
	}

	components := make([]*domain.Fragment, 0, len(componentIDs))
	for _, id := range componentIDs {
		c, err := getOwned(ctx, get, gs, id)
		if err != nil {
			return nil, nil, err
		}
		components = append(components, c)
	}
	return base, components, nil
}

func getOwned(ctx context.Context, get fragmentGetter, gs *domain.GameState, fragmentID string) (*domain.Fragment, error) {
	f, err := get(ctx, fragmentID)
	if err != nil {
		return nil, err
	}
	if f == nil || f.GameStateID != gs.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrFragmentNotFound, fragmentID)
	}
	return f, nil
}
