package dropdown

import (
	"sort"
	"strings"
)

// filterOptions keeps the options whose label contains query as a
// case-insensitive substring. Prefix matches sort ahead of plain substring
// matches; within each group the caller's order is preserved. An empty query
// returns a copy of the full set.
func filterOptions[T any](options []T, label func(T) string, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]T(nil), options...)
	}

	q := strings.ToLower(query)
	type match struct {
		option   T
		isPrefix bool
	}
	matches := make([]match, 0, len(options))
	for _, option := range options {
		lowered := strings.ToLower(label(option))
		if !strings.Contains(lowered, q) {
			continue
		}
		matches = append(matches, match{option: option, isPrefix: strings.HasPrefix(lowered, q)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].isPrefix && !matches[j].isPrefix
	})

	out := make([]T, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.option)
	}
	return out
}
