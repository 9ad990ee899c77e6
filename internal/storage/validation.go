package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/granabr/descritor/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidRule  = errors.New("invalid learned rule")
	ErrInvalidEntry = errors.New("invalid history entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRule validates a learned rule before persistence.
func validateRule(rule model.LearnedRule) error {
	if rule.FamilyID == "" {
		return fmt.Errorf("%w: missing family", ErrInvalidRule)
	}
	if rule.NormalizedKeyword == "" {
		return fmt.Errorf("%w: missing normalized keyword", ErrInvalidRule)
	}
	if rule.CategoryID == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidRule)
	}
	return nil
}

// validateHistory validates history entries before persistence.
func validateHistory(entries []model.HistoryEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: entries", ErrEmptySlice)
	}
	for i, entry := range entries {
		if entry.CategoryID == "" {
			return fmt.Errorf("entry at index %d: %w: missing category", i, ErrInvalidEntry)
		}
		if entry.Date.IsZero() {
			return fmt.Errorf("entry at index %d: %w: missing date", i, ErrInvalidEntry)
		}
	}
	return nil
}
