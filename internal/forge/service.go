package forge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/driftbyte/fluxforge/internal/concurrency"
	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/economy"
	"github.com/driftbyte/fluxforge/internal/logger"
	"github.com/driftbyte/fluxforge/internal/metrics"
	"github.com/driftbyte/fluxforge/internal/repository"
	"github.com/driftbyte/fluxforge/internal/rng"
)

// SpinResult contains the outcome of one spin.
type SpinResult struct {
	Fragment      domain.Fragment `json:"fragment"`
	Cost          int             `json:"cost"`
	FluxRemaining int             `json:"flux_remaining"`
	TotalSpins    int             `json:"total_spins"`
}

// Service defines the interface for fragment generation operations
type Service interface {
	Spin(ctx context.Context, sessionID string) (*SpinResult, error)
	GetState(ctx context.Context, sessionID string) (*domain.GameState, error)
	ListFragments(ctx context.Context, sessionID string) ([]domain.Fragment, error)
}

// service generates fragments. Each session owns one Sequence, created on
// first spin and guarded by a per-session lock, so seeded runs replay
// identically and concurrent spins never interleave a sequence.
type service struct {
	repo      repository.Game
	locks     *concurrency.LockManager
	sequences sync.Map // sessionID -> *rng.Sequence
	newSeq    func() *rng.Sequence
}

// NewService creates a new forge service. newSeq supplies the generator for
// each new session; pass a fixed-seed constructor for reproducible runs.
func NewService(repo repository.Game, newSeq func() *rng.Sequence) Service {
	if newSeq == nil {
		newSeq = rng.NewFromTime
	}
	return &service{
		repo:   repo,
		locks:  concurrency.NewLockManager(),
		newSeq: newSeq,
	}
}

// Spin debits the spin cost, rolls a fragment and persists both in one
// transaction.
func (s *service) Spin(ctx context.Context, sessionID string) (*SpinResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSpinCalled, "sessionID", sessionID)

	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id required", domain.ErrInvalidInput)
	}

	// Serialize spins per session so the sequence advances deterministically.
	lock := s.locks.GetLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.GetState(ctx, sessionID); err != nil {
		return nil, err
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

	cost := economy.SpinCost(gs)
	if gs.Flux < cost {
		return nil, fmt.Errorf("%w: need %d flux, have %d", domain.ErrInsufficientFlux, cost, gs.Flux)
	}

	seq := s.sequence(sessionID)
	fragment := Generate(seq, gs)
	fragment.ID = uuid.NewString()
	fragment.GameStateID = gs.ID

	gs.Flux -= cost
	gs.TotalSpins++

	if err := tx.CreateFragment(ctx, &fragment); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFragmentFailed, err)
	}
	if err := tx.UpdateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateStateFailed, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	metrics.SpinsTotal.Inc()
	metrics.FragmentsGenerated.WithLabelValues(string(fragment.Type), string(fragment.Rarity)).Inc()
	metrics.FluxSpent.WithLabelValues(metrics.OperationSpin).Add(float64(cost))

	log.Info(LogMsgFragmentGenerated, "fragmentID", fragment.ID, "type", fragment.Type, "rarity", fragment.Rarity, "cost", cost)
	return &SpinResult{
		Fragment:      fragment,
		Cost:          cost,
		FluxRemaining: gs.Flux,
		TotalSpins:    gs.TotalSpins,
	}, nil
}

// GetState fetches the session's game state, creating it on first access.
func (s *service) GetState(ctx context.Context, sessionID string) (*domain.GameState, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id required", domain.ErrInvalidInput)
	}

	gs, err := s.repo.GetGameStateBySession(ctx, sessionID)
	if err == nil {
		return gs, nil
	}
	if !errors.Is(err, domain.ErrGameStateNotFound) {
		return nil, err
	}

	gs = domain.NewGameState(sessionID)
	gs.ID = uuid.NewString()
	if err := s.repo.CreateGameState(ctx, gs); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateStateFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgStateCreated, "sessionID", sessionID, "gameStateID", gs.ID)
	return gs, nil
}

// ListFragments returns the session's fragments.
func (s *service) ListFragments(ctx context.Context, sessionID string) ([]domain.Fragment, error) {
	gs, err := s.GetState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFragments(ctx, gs.ID)
}

// sequence returns the session's generator, creating it on first use.
func (s *service) sequence(sessionID string) *rng.Sequence {
	if seq, ok := s.sequences.Load(sessionID); ok {
		return seq.(*rng.Sequence)
	}
	seq, _ := s.sequences.LoadOrStore(sessionID, s.newSeq())
	return seq.(*rng.Sequence)
}
