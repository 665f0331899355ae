package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/driftbyte/fluxforge/internal/domain"
	"github.com/driftbyte/fluxforge/internal/repository"
)

// GameRepository implements the game repository for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// GameTx implements repository.Tx
type GameTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *GameRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &GameTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *GameTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *GameTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetGameStateBySession retrieves a game state by its owning session.
func (r *GameRepository) GetGameStateBySession(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return getGameState(ctx, r.db, sessionID, false)
}

// GetGameStateForUpdate locks the session's game state for the duration of
// the transaction.
func (t *GameTx) GetGameStateForUpdate(ctx context.Context, sessionID string) (*domain.GameState, error) {
	return getGameState(ctx, t.tx, sessionID, true)
}

func getGameState(ctx context.Context, q querier, sessionID string, forUpdate bool) (*domain.GameState, error) {
	query := `SELECT game_state_id, session_id, flux, total_spins,
		spin_speed_level, rarity_odds_level, flux_cost_level, mutation_slots_level,
		created_at, updated_at
		FROM game_states WHERE session_id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var gs domain.GameState
	err := q.QueryRow(ctx, query, sessionID).Scan(
		&gs.ID, &gs.SessionID, &gs.Flux, &gs.TotalSpins,
		&gs.SpinSpeedLevel, &gs.RarityOddsLevel, &gs.FluxCostLevel, &gs.MutationSlotsLevel,
		&gs.CreatedAt, &gs.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: session %s", domain.ErrGameStateNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}
	return &gs, nil
}

// CreateGameState inserts a fresh game state row.
func (r *GameRepository) CreateGameState(ctx context.Context, gs *domain.GameState) error {
	_, err := r.db.Exec(ctx, `INSERT INTO game_states
		(game_state_id, session_id, flux, total_spins,
		 spin_speed_level, rarity_odds_level, flux_cost_level, mutation_slots_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		gs.ID, gs.SessionID, gs.Flux, gs.TotalSpins,
		gs.SpinSpeedLevel, gs.RarityOddsLevel, gs.FluxCostLevel, gs.MutationSlotsLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to create game state: %w", err)
	}
	return nil
}

// UpdateGameState persists the mutable progression fields.
func (t *GameTx) UpdateGameState(ctx context.Context, gs *domain.GameState) error {
	_, err := t.tx.Exec(ctx, `UPDATE game_states SET
		flux = $2, total_spins = $3,
		spin_speed_level = $4, rarity_odds_level = $5,
		flux_cost_level = $6, mutation_slots_level = $7,
		updated_at = NOW()
		WHERE game_state_id = $1`,
		gs.ID, gs.Flux, gs.TotalSpins,
		gs.SpinSpeedLevel, gs.RarityOddsLevel,
		gs.FluxCostLevel, gs.MutationSlotsLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to update game state: %w", err)
	}
	return nil
}
