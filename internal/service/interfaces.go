// Package service defines the storage contracts consumed by the
// engine's collaborators. The engine itself owns no persistence; these
// interfaces describe what an import workflow needs from its store.
package service

import (
	"context"

	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/nature"
)

// RuleStore persists learned keyword→category rules. UpsertRule must be
// idempotent under concurrent writers for the same family: the mapped
// category is last-write-wins and the match counter is incremented
// atomically at the storage layer, never read-modify-written by
// application code.
type RuleStore interface {
	UpsertRule(ctx context.Context, rule model.LearnedRule) error
	GetRule(ctx context.Context, familyID, normalizedKeyword string) (*model.LearnedRule, error)
	ListRules(ctx context.Context, familyID string) ([]model.LearnedRule, error)
}

// HistoryStore supplies read-only transaction evidence for the
// recurrence heuristic and records ingested statement lines.
type HistoryStore interface {
	SaveHistory(ctx context.Context, entries []model.HistoryEntry) error
	GetHistory(ctx context.Context, categoryID, subcategoryID string) ([]model.HistoryEntry, error)
}

// OverrideStore persists explicit user nature decisions keyed by the
// canonical override key format.
type OverrideStore interface {
	SaveOverride(ctx context.Context, key string, nat model.ExpenseNature) error
	GetOverrides(ctx context.Context) (nature.Overrides, error)
}

// Store is the full persistence contract implemented by the reference
// SQLite store.
type Store interface {
	RuleStore
	HistoryStore
	OverrideStore

	Migrate(ctx context.Context) error
	Close() error
}
