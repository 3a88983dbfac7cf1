package invtotal

import "strings"

// IgnoreSet is a set of item names excluded from valuation.
// Matching is case-insensitive. The nil set ignores nothing.
type IgnoreSet map[string]struct{}

// ParseIgnoreSet parses a user supplied comma separated list of item names.
// Whitespace around names is dropped and empty tokens are skipped. There is
// no failure mode: a token that names no item simply never matches.
func ParseIgnoreSet(list string) IgnoreSet {
	set := make(IgnoreSet)
	for _, token := range strings.Split(list, ",") {
		name := normalizeName(token)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether the item name is ignored.
func (s IgnoreSet) Contains(name string) bool {
	if len(s) == 0 {
		return false
	}
	_, ok := s[normalizeName(name)]
	return ok
}

// Len returns the number of ignored names.
func (s IgnoreSet) Len() int { return len(s) }

// normalizeName collapses inner whitespace and case.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ignoreCache memoizes ParseIgnoreSet on the raw configuration text, so the
// list is parsed once per configuration change instead of once per tick.
type ignoreCache struct {
	raw string
	set IgnoreSet
}

// get returns the set for the raw list, parsing it only when it changed.
func (c *ignoreCache) get(raw string) IgnoreSet {
	if c.set == nil || raw != c.raw {
		c.raw = raw
		c.set = ParseIgnoreSet(raw)
	}
	return c.set
}
