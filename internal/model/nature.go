// Package model defines the core domain models used throughout the application.
package model

// ExpenseNature describes the economic nature of an expense.
type ExpenseNature string

// Expense nature constants.
const (
	NatureFixed    ExpenseNature = "FIXED"
	NatureVariable ExpenseNature = "VARIABLE"
	NatureEventual ExpenseNature = "EVENTUAL"
	NatureUnknown  ExpenseNature = "UNKNOWN"
)

// Valid reports whether n is one of the known expense natures.
func (n ExpenseNature) Valid() bool {
	switch n {
	case NatureFixed, NatureVariable, NatureEventual, NatureUnknown:
		return true
	}
	return false
}

// NatureSource indicates which evidence source produced a classification.
type NatureSource string

// Classification source constants.
const (
	SourceUser        NatureSource = "USER"
	SourceSystemRule  NatureSource = "SYSTEM_RULE"
	SourceAIInference NatureSource = "AI_INFERENCE"
)

// Fixed confidence calibration points per source. These are not tunable
// per call; callers compare results across transactions and need the
// scale to be stable.
const (
	ConfidenceUser      = 1.0
	ConfidenceRule      = 0.95
	ConfidenceHeuristic = 0.75
	ConfidenceUnknown   = 0.3
)

// ExpenseNatureResult is the output of the classification resolver.
// Reason is display text for the UI and must never be parsed by callers.
type ExpenseNatureResult struct {
	Nature     ExpenseNature `json:"nature"`
	Source     NatureSource  `json:"source"`
	Confidence float64       `json:"confidence"`
	Reason     string        `json:"reason"`
}
