package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driftbyte/fluxforge/internal/domain"
)

const fragmentColumns = `fragment_id, game_state_id, name, fragment_type, rarity,
	base_stats, implicit_mods, affixes, is_corrupted, quantity, created_at`

// GetFragment retrieves a fragment by id. Returns nil if absent.
func (r *GameRepository) GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error) {
	return getFragment(ctx, r.db, fragmentID)
}

// GetFragment for Tx
func (t *GameTx) GetFragment(ctx context.Context, fragmentID string) (*domain.Fragment, error) {
	return getFragment(ctx, t.tx, fragmentID)
}

func getFragment(ctx context.Context, q querier, fragmentID string) (*domain.Fragment, error) {
	row := q.QueryRow(ctx, `SELECT `+fragmentColumns+` FROM fragments WHERE fragment_id = $1`, fragmentID)
	f, err := scanFragment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Return nil if fragment not found
		}
		return nil, fmt.Errorf("failed to get fragment: %w", err)
	}
	return f, nil
}

// ListFragments returns all fragments owned by a game state, oldest first.
func (r *GameRepository) ListFragments(ctx context.Context, gameStateID string) ([]domain.Fragment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+fragmentColumns+`
		FROM fragments WHERE game_state_id = $1 ORDER BY created_at, fragment_id`, gameStateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fragments: %w", err)
	}
	defer rows.Close()

	var fragments []domain.Fragment
	for rows.Next() {
		f, err := scanFragment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fragment: %w", err)
		}
		fragments = append(fragments, *f)
	}
	return fragments, rows.Err()
}

// CreateFragment inserts a new fragment.
func (t *GameTx) CreateFragment(ctx context.Context, f *domain.Fragment) error {
	stats, err := json.Marshal(f.BaseStats)
	if err != nil {
		return fmt.Errorf("failed to marshal base stats: %w", err)
	}
	mods, err := json.Marshal(f.ImplicitMods)
	if err != nil {
		return fmt.Errorf("failed to marshal implicit mods: %w", err)
	}
	affixes, err := json.Marshal(f.Affixes)
	if err != nil {
		return fmt.Errorf("failed to marshal affixes: %w", err)
	}

	_, err = t.tx.Exec(ctx, `INSERT INTO fragments
		(fragment_id, game_state_id, name, fragment_type, rarity,
		 base_stats, implicit_mods, affixes, is_corrupted, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		f.ID, f.GameStateID, f.Name, f.Type, f.Rarity,
		stats, mods, affixes, f.IsCorrupted, f.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to create fragment: %w", err)
	}
	return nil
}

// DeleteFragment removes a fragment permanently.
func (t *GameTx) DeleteFragment(ctx context.Context, fragmentID string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM fragments WHERE fragment_id = $1`, fragmentID)
	if err != nil {
		return fmt.Errorf("failed to delete fragment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrFragmentNotFound, fragmentID)
	}
	return nil
}

// scanFragment maps one row onto a Fragment, decoding the JSONB columns.
func scanFragment(row pgx.Row) (*domain.Fragment, error) {
	var f domain.Fragment
	var stats, mods, affixes []byte

	err := row.Scan(
		&f.ID, &f.GameStateID, &f.Name, &f.Type, &f.Rarity,
		&stats, &mods, &affixes, &f.IsCorrupted, &f.Quantity, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(stats, &f.BaseStats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal base stats: %w", err)
	}
	if err := json.Unmarshal(mods, &f.ImplicitMods); err != nil {
		return nil, fmt.Errorf("failed to unmarshal implicit mods: %w", err)
	}
	if err := json.Unmarshal(affixes, &f.Affixes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal affixes: %w", err)
	}
	return &f, nil
}
