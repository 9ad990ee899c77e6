// Package nature classifies the economic nature of expenses. The
// resolver combines evidence in a strict priority order: user override,
// deterministic rule table, recurrence heuristic, then UNKNOWN.
package nature

import (
	"github.com/granabr/descritor/internal/tables"
)

// RuleTable is the compiled form of the deterministic nature rules.
// Lookups are evaluated in a fixed order: eventual categories first,
// then the fixed mapping, then the variable category list.
type RuleTable struct {
	eventual   map[string]struct{}
	fixed      map[string]map[string]struct{}
	variable   map[string]struct{}
	heuristics map[string]map[string]struct{}
}

// NewRuleTable compiles the nature tables for lookup.
func NewRuleTable(nt tables.NatureTables) *RuleTable {
	t := &RuleTable{
		eventual:   make(map[string]struct{}, len(nt.Eventual)),
		fixed:      make(map[string]map[string]struct{}, len(nt.Fixed)),
		variable:   make(map[string]struct{}, len(nt.Variable)),
		heuristics: make(map[string]map[string]struct{}, len(nt.Heuristics)),
	}
	for _, cat := range nt.Eventual {
		t.eventual[cat] = struct{}{}
	}
	for _, rule := range nt.Fixed {
		t.fixed[rule.Category] = subSet(rule.Subcategories)
	}
	for _, cat := range nt.Variable {
		t.variable[cat] = struct{}{}
	}
	for _, rule := range nt.Heuristics {
		t.heuristics[rule.Category] = subSet(rule.Subcategories)
	}
	return t
}

func subSet(subs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(subs))
	for _, s := range subs {
		set[s] = struct{}{}
	}
	return set
}

// IsEventual reports whether the whole category is classified EVENTUAL.
func (t *RuleTable) IsEventual(category string) bool {
	_, ok := t.eventual[category]
	return ok
}

// IsFixed reports whether the category/subcategory pair is in the FIXED
// mapping. An entry without subcategories covers the whole category.
func (t *RuleTable) IsFixed(category, subcategory string) bool {
	subs, ok := t.fixed[category]
	if !ok {
		return false
	}
	if len(subs) == 0 {
		return true
	}
	_, ok = subs[subcategory]
	return ok
}

// IsVariable reports whether the whole category is classified VARIABLE.
func (t *RuleTable) IsVariable(category string) bool {
	_, ok := t.variable[category]
	return ok
}

// IsHeuristicCandidate reports whether the category/subcategory pair is
// eligible for recurrence-based promotion.
func (t *RuleTable) IsHeuristicCandidate(category, subcategory string) bool {
	subs, ok := t.heuristics[category]
	if !ok {
		return false
	}
	if len(subs) == 0 {
		return true
	}
	_, ok = subs[subcategory]
	return ok
}
