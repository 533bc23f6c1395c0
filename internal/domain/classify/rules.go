package classify

import "strings"

// Predicate reports whether normalized text satisfies a rule.
type Predicate func(text string) bool

// Rule maps a predicate to a label. Rules are evaluated in slice order and
// the first match wins.
type Rule struct {
	Label string
	Match Predicate
}

// Resolve returns the label of the first matching rule, or fallback.
func Resolve(rules []Rule, text, fallback string) string {
	for _, r := range rules {
		if r.Match(text) {
			return r.Label
		}
	}
	return fallback
}

// Normalize lower-cases s and collapses every non-alphanumeric run into a
// single space, padding both ends so whole-word lookups are a substring test.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	if !space {
		b.WriteByte(' ')
	}
	return b.String()
}

// AnyWord matches when the normalized text contains any of the keywords as
// a whole word or phrase.
func AnyWord(keywords ...string) Predicate {
	needles := make([]string, len(keywords))
	for i, k := range keywords {
		needles[i] = Normalize(k)
	}
	return func(text string) bool {
		for _, n := range needles {
			if strings.Contains(text, n) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(text string) bool { return !p(text) }
}

// All matches when every predicate matches.
func All(ps ...Predicate) Predicate {
	return func(text string) bool {
		for _, p := range ps {
			if !p(text) {
				return false
			}
		}
		return true
	}
}

// Any matches when at least one predicate matches.
func Any(ps ...Predicate) Predicate {
	return func(text string) bool {
		for _, p := range ps {
			if p(text) {
				return true
			}
		}
		return false
	}
}
