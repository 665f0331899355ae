package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driftbyte/fluxforge/internal/domain"
)

const listingColumns = `listing_id, fragment_type, rarity, base_price, current_price,
	demand, supply, price_history, updated_at`

// GetListing retrieves a listing by its (type, rarity) key. Returns nil when
// no listing covers the pair; callers fall back to the default price.
func (r *GameRepository) GetListing(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error) {
	return getListing(ctx, r.db, fragmentType, rarity, false)
}

// GetListingForUpdate locks the listing row for the transaction.
func (t *GameTx) GetListingForUpdate(ctx context.Context, fragmentType domain.FragmentType, rarity domain.Rarity) (*domain.MarketplaceListing, error) {
	return getListing(ctx, t.tx, fragmentType, rarity, true)
}

func getListing(ctx context.Context, q querier, fragmentType domain.FragmentType, rarity domain.Rarity, forUpdate bool) (*domain.MarketplaceListing, error) {
	query := `SELECT ` + listingColumns + ` FROM marketplace_listings
		WHERE fragment_type = $1 AND rarity = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}

	l, err := scanListing(q.QueryRow(ctx, query, fragmentType, rarity))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No listing for this pair
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return l, nil
}

// ListListings returns the full price board.
func (r *GameRepository) ListListings(ctx context.Context) ([]domain.MarketplaceListing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+listingColumns+`
		FROM marketplace_listings ORDER BY listing_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.MarketplaceListing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, *l)
	}
	return listings, rows.Err()
}

// UpdateListing persists the post-sale pricing state.
func (t *GameTx) UpdateListing(ctx context.Context, l *domain.MarketplaceListing) error {
	history, err := json.Marshal(l.PriceHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal price history: %w", err)
	}

	_, err = t.tx.Exec(ctx, `UPDATE marketplace_listings SET
		current_price = $2, demand = $3, supply = $4, price_history = $5, updated_at = NOW()
		WHERE listing_id = $1`,
		l.ID, l.CurrentPrice, l.Demand, l.Supply, history,
	)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

func scanListing(row pgx.Row) (*domain.MarketplaceListing, error) {
	var l domain.MarketplaceListing
	var history []byte

	err := row.Scan(
		&l.ID, &l.FragmentType, &l.Rarity, &l.BasePrice, &l.CurrentPrice,
		&l.Demand, &l.Supply, &history, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(history, &l.PriceHistory); err != nil {
		return nil, fmt.Errorf("failed to unmarshal price history: %w", err)
	}
	return &l, nil
}
