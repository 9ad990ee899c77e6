package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/granabr/descritor/internal/model"
)

// SaveHistory records transaction evidence for the recurrence
// heuristic.
func (s *SQLiteStore) SaveHistory(ctx context.Context, entries []model.HistoryEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHistory(entries); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history (date, category_id, subcategory_id, merchant_key, amount)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx, entry.Date, entry.CategoryID,
			nullable(entry.SubcategoryID), nullable(entry.MerchantKey), entry.Amount); err != nil {
			return fmt.Errorf("failed to insert history entry: %w", err)
		}
	}
	return tx.Commit()
}

// GetHistory returns the recorded entries for a category/subcategory
// pair. Order is irrelevant to the heuristic; entries come back
// date-ascending for caller convenience.
func (s *SQLiteStore) GetHistory(ctx context.Context, categoryID, subcategoryID string) ([]model.HistoryEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(categoryID, "categoryID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, category_id, subcategory_id, merchant_key, amount
		FROM history
		WHERE category_id = ? AND COALESCE(subcategory_id, '') = ?
		ORDER BY date
	`, categoryID, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var subcategory, merchant sql.NullString
		if err := rows.Scan(&entry.Date, &entry.CategoryID, &subcategory, &merchant, &entry.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.SubcategoryID = subcategory.String
		entry.MerchantKey = merchant.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return entries, nil
}
