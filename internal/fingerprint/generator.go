// Package fingerprint derives merchant-identity fingerprints from raw
// statement descriptors: a strong, dictionary-backed signal when the
// descriptor resolves to a known merchant, and a weak token-based
// fallback otherwise.
package fingerprint

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/granabr/descritor/internal/model"
	"github.com/granabr/descritor/internal/normalize"
	"github.com/granabr/descritor/internal/tables"
)

// Fingerprint key prefixes. Strong keys come from the merchant
// dictionary, weak keys from the normalized descriptor.
const (
	StrongPrefix = "F:"
	WeakPrefix   = "W:"
)

// weakSynthTokens is how many tokens the weak-fingerprint fallback
// synthesis keeps when the normalized descriptor is empty.
const weakSynthTokens = 3

// MatchPolicy tunes the substring-containment rule used for merchant
// lookup. Containment between a token and a dictionary entry counts as
// a match only when the shorter side has at least MinContainmentLen
// runes, or the entry itself has at most ShortEntryMaxLen runes (short
// brand codes). The rule is deliberately fuzzy; DefaultMatchPolicy pins
// the historical thresholds.
type MatchPolicy struct {
	MinContainmentLen int
	ShortEntryMaxLen  int
}

// DefaultMatchPolicy returns the thresholds the engine has always used.
func DefaultMatchPolicy() MatchPolicy {
	return MatchPolicy{MinContainmentLen: 4, ShortEntryMaxLen: 5}
}

// Generator produces fingerprints over a fixed table version.
// Instances are immutable and safe for concurrent use.
type Generator struct {
	norm      *normalize.Normalizer
	states    map[string]struct{}
	cities    map[string]struct{}
	gateways  []string
	merchants []string
	policy    MatchPolicy
}

// cepPattern matches Brazilian 5+3 digit postal codes.
var cepPattern = regexp.MustCompile(`\b\d{5}-?\d{3}\b`)

// New builds a Generator over the given reference tables.
func New(t *tables.Tables, policy MatchPolicy) *Generator {
	states := make(map[string]struct{}, len(t.States)+2)
	for _, st := range t.States {
		states[strings.ToUpper(st)] = struct{}{}
	}
	// location literals removed alongside the states
	states["BRASIL"] = struct{}{}
	states["BR"] = struct{}{}

	cities := make(map[string]struct{}, len(t.Cities))
	for _, c := range t.Cities {
		cities[strings.ToUpper(c)] = struct{}{}
	}

	return &Generator{
		norm:      normalize.New(t),
		gateways:  t.Gateways,
		states:    states,
		cities:    cities,
		merchants: t.Merchants,
		policy:    policy,
	}
}

var defaultGenerator = New(tables.Default(), DefaultMatchPolicy())

// Default returns the Generator built over the built-in tables.
func Default() *Generator { return defaultGenerator }

// Generate derives the fingerprint for a raw descriptor. Empty input
// yields a zero Fingerprint; the function never fails.
func (g *Generator) Generate(raw string) model.Fingerprint {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.Fingerprint{}
	}

	s = normalize.StripDiacritics(strings.ToUpper(s))
	s = g.stripGateway(s)
	s = g.stripLocation(s)

	normalized := g.norm.Key(s)
	toks := lookupTokens(s)

	if merchant, ok := g.strongMatch(toks); ok {
		return model.Fingerprint{
			Strong:               StrongPrefix + merchant,
			NormalizedDescriptor: normalized,
			MerchantCanon:        merchant,
		}
	}

	return model.Fingerprint{
		Weak:                 g.weak(normalized, toks),
		NormalizedDescriptor: normalized,
	}
}

// stripGateway removes a payment-gateway prefix (entry plus optional
// asterisk) anchored at the start of the descriptor. The entry must end
// at an asterisk, separator or end of string so that e.g. PAG does not
// eat PAGAMENTO.
func (g *Generator) stripGateway(s string) string {
	for _, gw := range g.gateways {
		if !strings.HasPrefix(s, gw) {
			continue
		}
		rest := s[len(gw):]
		switch {
		case rest == "":
			return ""
		case rest[0] == '*':
			return strings.TrimLeft(rest[1:], " *")
		case rest[0] == ' ' || rest[0] == '-' || rest[0] == '.':
			return strings.TrimLeft(rest, " -.")
		}
	}
	return s
}

// stripLocation drops state abbreviations, BRASIL/BR literals and
// CEP-like postal codes. City-name tokens are dropped only when the
// descriptor also carries a state abbreviation; a bare city word is
// usually part of the merchant name.
func (g *Generator) stripLocation(s string) string {
	s = cepPattern.ReplaceAllString(s, " ")
	toks := normalize.SplitTokens(s)

	hasState := false
	for _, tok := range toks {
		if _, ok := g.states[tok]; ok {
			hasState = true
			break
		}
	}

	kept := toks[:0]
	for _, tok := range toks {
		if _, drop := g.states[tok]; drop {
			continue
		}
		if hasState {
			if _, drop := g.cities[tok]; drop {
				continue
			}
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// lookupTokens tokenizes for merchant lookup: same separator and
// length/numeric rules as the normalizer, but stopwords survive so
// brand names that collide with noise words remain visible.
func lookupTokens(s string) []string {
	var out []string
	for _, tok := range normalize.SplitTokens(s) {
		if utf8.RuneCountInString(tok) < 2 || allDigits(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// strongMatch scans tokens against the merchant dictionary. The
// dictionary is ordered and the first hit wins, so the result is
// deterministic for a given table version.
func (g *Generator) strongMatch(toks []string) (string, bool) {
	for _, merchant := range g.merchants {
		for _, tok := range toks {
			if tok == merchant {
				return merchant, true
			}
			if g.containmentMatch(tok, merchant) {
				return merchant, true
			}
		}
	}
	return "", false
}

func (g *Generator) containmentMatch(tok, merchant string) bool {
	if !strings.Contains(tok, merchant) && !strings.Contains(merchant, tok) {
		return false
	}
	shorter := utf8.RuneCountInString(tok)
	if ml := utf8.RuneCountInString(merchant); ml < shorter {
		shorter = ml
	}
	if shorter >= g.policy.MinContainmentLen {
		return true
	}
	return utf8.RuneCountInString(merchant) <= g.policy.ShortEntryMaxLen
}

// weak builds the fallback fingerprint: the normalized descriptor when
// available, otherwise a synthesis from the three shortest usable
// tokens sorted lexicographically.
func (g *Generator) weak(normalized string, toks []string) string {
	if normalized != "" {
		return WeakPrefix + normalized
	}
	var usable []string
	for _, tok := range toks {
		if utf8.RuneCountInString(tok) >= 3 && !allDigits(tok) {
			usable = append(usable, tok)
		}
	}
	if len(usable) == 0 {
		return ""
	}
	sort.SliceStable(usable, func(i, j int) bool {
		return len(usable[i]) < len(usable[j])
	})
	if len(usable) > weakSynthTokens {
		usable = usable[:weakSynthTokens]
	}
	sort.Strings(usable)
	return WeakPrefix + strings.ToLower(strings.Join(usable, "_"))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
