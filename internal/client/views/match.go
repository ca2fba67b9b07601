package views

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// matcher does case-insensitive substring search for one query. The query is
// used as given; only "" disables filtering.
type matcher struct {
	q string
}

func newMatcher(q string) matcher {
	return matcher{q: strings.ToLower(q)}
}

func (m matcher) empty() bool { return m.q == "" }

func (m matcher) any(fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), m.q) {
			return true
		}
	}
	return false
}

func (m matcher) anyOf(items []string) bool {
	return m.any(items...)
}

// newCollator builds a fresh collator; collate.Collator is not safe for
// concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

// unique returns the distinct non-empty values in collation order.
func unique(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range groups {
		for _, v := range g {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	c := newCollator()
	slices.SortStableFunc(out, c.CompareString)
	return out
}

func window[T any](items []T, q matcher, preview int) []T {
	if q.empty() && preview > 0 && len(items) > preview {
		return items[:preview:preview]
	}
	return items
}
