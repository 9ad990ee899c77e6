package model

import (
	"strings"
	"time"
)

// ClassificationInput identifies what is being classified. Category and
// subcategory identifiers are opaque strings owned by the category
// taxonomy; MerchantKey is optional and usually a fingerprint key.
type ClassificationInput struct {
	CategoryID    string `json:"category_id"`
	SubcategoryID string `json:"subcategory_id,omitempty"`
	MerchantKey   string `json:"merchant_key,omitempty"`
}

// OverrideKey builds the override lookup key in the canonical
// category[::subcategory[::merchant]] format, omitting absent parts.
func (c ClassificationInput) OverrideKey() string {
	parts := []string{c.CategoryID}
	if c.SubcategoryID != "" {
		parts = append(parts, c.SubcategoryID)
		if c.MerchantKey != "" {
			parts = append(parts, c.MerchantKey)
		}
	}
	return strings.Join(parts, "::")
}

// HistoryEntry is one read-only piece of transaction evidence fed to
// the recurrence heuristic. Ordering is irrelevant; entries are grouped
// by calendar month before evaluation.
type HistoryEntry struct {
	Date          time.Time `json:"date"`
	CategoryID    string    `json:"category_id"`
	SubcategoryID string    `json:"subcategory_id,omitempty"`
	MerchantKey   string    `json:"merchant_key,omitempty"`
	Amount        float64   `json:"amount"`
}

// Month returns the calendar-month bucket of the entry.
func (h HistoryEntry) Month() string {
	return h.Date.Format("2006-01")
}
