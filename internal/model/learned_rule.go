package model

import "time"

// LearnedRule is a keyword→category association produced when a user
// accepts a category different from the system suggestion during import
// review. The normalized keyword is the conflict key: upserts for the
// same (family, keyword) pair update the category and increment the
// match counter.
type LearnedRule struct {
	LastMatched       time.Time `json:"last_matched"`
	FamilyID          string    `json:"family_id"`
	NormalizedKeyword string    `json:"normalized_keyword"`
	CategoryID        string    `json:"category_id"`
	SubcategoryID     string    `json:"subcategory_id,omitempty"`
	MatchCount        int       `json:"match_count"`
}

// StatementEntry is a single transaction line lifted from an imported
// bank or card statement, before any normalization.
type StatementEntry struct {
	Date       time.Time `json:"date"`
	ID         string    `json:"id"`
	Descriptor string    `json:"descriptor"`
	AccountID  string    `json:"account_id"`
	Type       string    `json:"type,omitempty"`
	Amount     float64   `json:"amount"`
}
