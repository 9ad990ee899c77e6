// Package normalize turns raw bank and card statement descriptors into
// deterministic, bounded matching keys. Every function is total and
// pure: malformed input degrades to an empty result, never an error.
package normalize

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/granabr/descritor/internal/tables"
)

const (
	// maxTokens bounds how many meaningful tokens feed the key.
	maxTokens = 5
	// orderedTokens is how many leading tokens keep their original
	// position; the remainder is sorted so word order beyond the
	// discriminating prefix does not change the key.
	orderedTokens = 3
	// maxKeyLen bounds the assembled key.
	maxKeyLen = 100
	// maxDisplayTokens bounds the display merchant name.
	maxDisplayTokens = 4
	// rawFallbackLen is how much raw text the display helper keeps
	// when nothing survives normalization.
	rawFallbackLen = 30
)

// Normalizer derives matching keys from descriptors using a fixed table
// version. Instances are immutable and safe for concurrent use.
type Normalizer struct {
	stopwords map[string]struct{}
	prefixes  []tables.PrefixRule
}

// New builds a Normalizer over the given reference tables.
func New(t *tables.Tables) *Normalizer {
	stop := make(map[string]struct{}, len(t.Stopwords))
	for _, w := range t.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{
		prefixes:  t.Prefixes,
		stopwords: stop,
	}
}

var defaultNormalizer = New(tables.Default())

// Default returns the Normalizer built over the built-in tables.
func Default() *Normalizer { return defaultNormalizer }

// Key derives the canonical matching key for a descriptor. Identical
// descriptors always yield identical keys; the key is lower-case,
// underscore-joined and at most 100 characters.
func (n *Normalizer) Key(descriptor string) string {
	return assembleKey(n.KeyTokens(descriptor))
}

// KeyTokens returns the canonical token sequence feeding the key, in
// original descriptor order and capped at five tokens.
func (n *Normalizer) KeyTokens(descriptor string) []string {
	s := strings.TrimSpace(descriptor)
	if s == "" {
		return nil
	}
	s = n.standardizePrefix(s)
	s = StripDiacritics(strings.ToUpper(s))
	s = stripNoise(s)
	toks := n.Tokens(s)
	if len(toks) > maxTokens {
		toks = toks[:maxTokens]
	}
	return toks
}

// MerchantName extracts a short display name from a descriptor: the
// first surviving tokens after prefix and noise removal. Falls back to
// the first 30 raw characters when nothing survives.
func (n *Normalizer) MerchantName(descriptor string) string {
	raw := strings.TrimSpace(descriptor)
	if raw == "" {
		return ""
	}
	s := n.stripPrefix(raw)
	s = StripDiacritics(strings.ToUpper(s))
	s = stripNoise(s)
	toks := n.Tokens(s)
	if len(toks) == 0 {
		if utf8.RuneCountInString(raw) > rawFallbackLen {
			return string([]rune(raw)[:rawFallbackLen])
		}
		return raw
	}
	if len(toks) > maxDisplayTokens {
		toks = toks[:maxDisplayTokens]
	}
	return strings.Join(toks, " ")
}

// standardizePrefix replaces a known descriptor prefix with its code.
// The table is ordered most-specific first and the scan stops at the
// first match.
func (n *Normalizer) standardizePrefix(s string) string {
	lower := strings.ToLower(s)
	for _, rule := range n.prefixes {
		if strings.HasPrefix(lower, rule.Prefix) {
			return rule.Code + " " + s[len(rule.Prefix):]
		}
	}
	return s
}

// stripPrefix removes a known prefix without substituting its code.
// Used by the display helper only.
func (n *Normalizer) stripPrefix(s string) string {
	lower := strings.ToLower(s)
	for _, rule := range n.prefixes {
		if strings.HasPrefix(lower, rule.Prefix) {
			return s[len(rule.Prefix):]
		}
	}
	return s
}

// Tokens splits a cleaned descriptor into meaningful tokens: separators
// are whitespace and -_./,;: and tokens shorter than two runes, purely
// numeric tokens and stopwords are dropped.
func (n *Normalizer) Tokens(s string) []string {
	var out []string
	for _, tok := range SplitTokens(s) {
		if utf8.RuneCountInString(tok) < 2 || isNumeric(tok) {
			continue
		}
		if _, stop := n.stopwords[strings.ToLower(tok)]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// SplitTokens splits on the descriptor separator set without any
// filtering. The fingerprint generator uses it for merchant lookup,
// where stopwords must survive.
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("-_./,;:", r)
	})
}

// assembleKey joins tokens into the final key: the first three keep
// their original order, the rest are sorted for stability.
func assembleKey(toks []string) string {
	if len(toks) == 0 {
		return ""
	}
	head := toks
	var tail []string
	if len(toks) > orderedTokens {
		head = toks[:orderedTokens]
		tail = append([]string(nil), toks[orderedTokens:]...)
		sort.Strings(tail)
	}
	key := strings.ToLower(strings.Join(append(append([]string(nil), head...), tail...), "_"))
	if len(key) > maxKeyLen {
		key = key[:maxKeyLen]
	}
	return key
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

var markStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining marks via NFD decomposition, so
// "crédito" and "credito" normalize identically.
func StripDiacritics(s string) string {
	out, _, err := transform.String(markStripper, s)
	if err != nil {
		return s
	}
	return out
}
