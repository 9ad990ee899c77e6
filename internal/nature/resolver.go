package nature

import (
	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/tables"
)

// Overrides maps override keys (category[::subcategory[::merchant]])
// to the nature the user picked. Lifecycle is owned by the caller;
// duplicate keys resolve last-write-wins at the map level.
type Overrides map[string]model.ExpenseNature

// Human-readable reasons per resolution path. Display text only.
const (
	reasonUser      = "defined by the user"
	reasonEventual  = "category covers one-off expenses"
	reasonFixed     = "recurring commitment for this category"
	reasonVariable  = "spending follows monthly consumption"
	reasonUndefined = "not automatically determined"
)

// Resolver classifies expense nature over a fixed rule-table version.
// Instances are immutable and safe for concurrent use.
type Resolver struct {
	rules *RuleTable
}

// NewResolver builds a Resolver from the given nature tables.
func NewResolver(nt tables.NatureTables) *Resolver {
	return &Resolver{rules: NewRuleTable(nt)}
}

var defaultResolver = NewResolver(tables.Default().Nature)

// Default returns the Resolver built over the built-in tables.
func Default() *Resolver { return defaultResolver }

// Classify resolves the expense nature for one input. The priority
// chain is strict and the first stage that produces a result wins:
// user override, rule table, recurrence heuristic, UNKNOWN default.
func (r *Resolver) Classify(in model.ClassificationInput, overrides Overrides, history []model.HistoryEntry) model.ExpenseNatureResult {
	if nat, ok := overrides[in.OverrideKey()]; ok {
		return model.ExpenseNatureResult{
			Nature:     nat,
			Source:     model.SourceUser,
			Confidence: model.ConfidenceUser,
			Reason:     reasonUser,
		}
	}

	if res, ok := r.resolveRule(in); ok {
		return res
	}

	if in.SubcategoryID != "" && len(history) > 0 &&
		r.rules.IsHeuristicCandidate(in.CategoryID, in.SubcategoryID) {
		if res, ok := promoteByRecurrence(in, history); ok {
			return res
		}
	}

	return model.ExpenseNatureResult{
		Nature:     model.NatureUnknown,
		Source:     model.SourceSystemRule,
		Confidence: model.ConfidenceUnknown,
		Reason:     reasonUndefined,
	}
}

// resolveRule evaluates the deterministic rule table in its fixed
// order: eventual list, then fixed mapping, then variable list.
func (r *Resolver) resolveRule(in model.ClassificationInput) (model.ExpenseNatureResult, bool) {
	switch {
	case r.rules.IsEventual(in.CategoryID):
		return ruleResult(model.NatureEventual, reasonEventual), true
	case r.rules.IsFixed(in.CategoryID, in.SubcategoryID):
		return ruleResult(model.NatureFixed, reasonFixed), true
	case r.rules.IsVariable(in.CategoryID):
		return ruleResult(model.NatureVariable, reasonVariable), true
	}
	return model.ExpenseNatureResult{}, false
}

func ruleResult(nat model.ExpenseNature, reason string) model.ExpenseNatureResult {
	return model.ExpenseNatureResult{
		Nature:     nat,
		Source:     model.SourceSystemRule,
		Confidence: model.ConfidenceRule,
		Reason:     reason,
	}
}

// ClassifyBatch classifies each input independently and returns the
// results keyed by override key. There is no shared state between
// items, so results are identical to calling Classify one at a time.
func (r *Resolver) ClassifyBatch(inputs []model.ClassificationInput, overrides Overrides, history []model.HistoryEntry) map[string]model.ExpenseNatureResult {
	results := make(map[string]model.ExpenseNatureResult, len(inputs))
	for _, in := range inputs {
		results[in.OverrideKey()] = r.Classify(in, overrides, history)
	}
	return results
}
