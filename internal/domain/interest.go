package domain

import (
	"sort"
	"strings"
)

// InterestSet is an immutable, case-folded set of topic keywords.
type InterestSet struct {
	terms []string
}

// NewInterestSet lower-cases and de-duplicates terms. Blank terms are dropped.
func NewInterestSet(terms ...string) InterestSet {
	seen := make(map[string]bool, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return InterestSet{terms: out}
}

// Terms returns the sorted terms.
func (s InterestSet) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

func (s InterestSet) Len() int { return len(s.terms) }

func (s InterestSet) Empty() bool { return len(s.terms) == 0 }

// String renders the set as a sorted, comma-separated list ("" when empty).
func (s InterestSet) String() string {
	return strings.Join(s.terms, ", ")
}
