package storage

import (
	"context"
	"fmt"

	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/nature"
)

// SaveOverride records an explicit user nature decision. Saving the
// same key again replaces the previous decision.
func (s *SQLiteStore) SaveOverride(ctx context.Context, key string, nat model.ExpenseNature) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}
	if !nat.Valid() {
		return fmt.Errorf("invalid expense nature %q", nat)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nature_overrides (override_key, nature, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(override_key) DO UPDATE SET
			nature = excluded.nature,
			updated_at = excluded.updated_at
	`, key, string(nat))
	if err != nil {
		return fmt.Errorf("failed to save override: %w", err)
	}
	return nil
}

// GetOverrides loads the full override map for the resolver.
func (s *SQLiteStore) GetOverrides(ctx context.Context) (nature.Overrides, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT override_key, nature FROM nature_overrides`)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer func() { _ = rows.Close() }()

	overrides := make(nature.Overrides)
	for rows.Next() {
		var key, nat string
		if err := rows.Scan(&key, &nat); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		overrides[key] = model.ExpenseNature(nat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overrides: %w", err)
	}
	return overrides, nil
}
