package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/granabr/descritor/internal/common"
	"github.com/granabr/descritor/internal/model"
)

// UpsertRule inserts or updates a learned keyword→category rule. On
// conflict the mapped category is last-write-wins and the match counter
// is incremented inside the statement, so concurrent import sessions
// never lose counts to read-modify-write races.
func (s *SQLiteStore) UpsertRule(ctx context.Context, rule model.LearnedRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRule(rule); err != nil {
		return err
	}
	if rule.LastMatched.IsZero() {
		rule.LastMatched = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO learned_rules (family_id, normalized_keyword, category_id, subcategory_id, match_count, last_matched)
		VALUES (?, ?, ?, ?, 1, ?)
		ON CONFLICT(family_id, normalized_keyword) DO UPDATE SET
			category_id = excluded.category_id,
			subcategory_id = excluded.subcategory_id,
			match_count = learned_rules.match_count + 1,
			last_matched = excluded.last_matched
	`, rule.FamilyID, rule.NormalizedKeyword, rule.CategoryID,
		nullable(rule.SubcategoryID), rule.LastMatched)
	if err != nil {
		return fmt.Errorf("failed to upsert learned rule: %w", err)
	}
	return nil
}

// GetRule retrieves a learned rule by its conflict key.
func (s *SQLiteStore) GetRule(ctx context.Context, familyID, normalizedKeyword string) (*model.LearnedRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(familyID, "familyID"); err != nil {
		return nil, err
	}
	if err := validateString(normalizedKeyword, "normalizedKeyword"); err != nil {
		return nil, err
	}

	var rule model.LearnedRule
	var subcategory sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT family_id, normalized_keyword, category_id, subcategory_id, match_count, last_matched
		FROM learned_rules
		WHERE family_id = ? AND normalized_keyword = ?
	`, familyID, normalizedKeyword).Scan(
		&rule.FamilyID,
		&rule.NormalizedKeyword,
		&rule.CategoryID,
		&subcategory,
		&rule.MatchCount,
		&rule.LastMatched,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get learned rule: %w", err)
	}
	rule.SubcategoryID = subcategory.String
	return &rule, nil
}

// ListRules returns all learned rules for a family, most-used first.
func (s *SQLiteStore) ListRules(ctx context.Context, familyID string) ([]model.LearnedRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(familyID, "familyID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT family_id, normalized_keyword, category_id, subcategory_id, match_count, last_matched
		FROM learned_rules
		WHERE family_id = ?
		ORDER BY match_count DESC, normalized_keyword
	`, familyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list learned rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.LearnedRule
	for rows.Next() {
		var rule model.LearnedRule
		var subcategory sql.NullString
		if err := rows.Scan(
			&rule.FamilyID,
			&rule.NormalizedKeyword,
			&rule.CategoryID,
			&subcategory,
			&rule.MatchCount,
			&rule.LastMatched,
		); err != nil {
			return nil, fmt.Errorf("failed to scan learned rule: %w", err)
		}
		rule.SubcategoryID = subcategory.String
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate learned rules: %w", err)
	}
	return rules, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
