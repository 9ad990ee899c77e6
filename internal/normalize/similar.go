package normalize

import "strings"

// Similar reports whether two normalized keys likely refer to the same
// merchant. Exact equality always matches; otherwise the keys match
// when they share at least two tokens, or at least one token when the
// smaller key has exactly one token. The single-token fallback is
// deliberately broad to catch short merchant names and is known to
// produce occasional false positives; downstream grouping depends on
// that breadth.
func Similar(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	at := keyTokenSet(a)
	bt := keyTokenSet(b)
	shared := 0
	for tok := range at {
		if _, ok := bt[tok]; ok {
			shared++
		}
	}
	if shared >= 2 {
		return true
	}
	smaller := len(at)
	if len(bt) < smaller {
		smaller = len(bt)
	}
	return smaller == 1 && shared >= 1
}

func keyTokenSet(key string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Split(key, "_") {
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}
