package model

// Fingerprint is the merchant-identity signal derived from a raw
// statement descriptor. Strong is set only when the descriptor resolved
// to an entry of the merchant dictionary; Weak is the lower-confidence
// token fallback. Empty strings mean "absent".
type Fingerprint struct {
	Strong               string `json:"strong,omitempty"`
	Weak                 string `json:"weak,omitempty"`
	NormalizedDescriptor string `json:"normalized_descriptor"`
	MerchantCanon        string `json:"merchant_canon,omitempty"`
}

// HasStrong reports whether the descriptor matched a known merchant.
func (f Fingerprint) HasStrong() bool { return f.Strong != "" }

// Key returns the best available grouping key: the strong fingerprint
// when present, the weak one otherwise.
func (f Fingerprint) Key() string {
	if f.Strong != "" {
		return f.Strong
	}
	return f.Weak
}
