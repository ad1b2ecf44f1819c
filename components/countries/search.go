package countries

import (
	"sort"
	"strings"
)

// Option is one row of the JSON payload the handler serves. Value carries the
// dial code, the token the signup draft stores.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func Search(list []Country, query string, limit int, opts Options) []Country {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(list) <= limit {
				return append([]Country{}, list...)
			}
			return append([]Country{}, list[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedCountry, 0, 32)
	for _, c := range list {
		lowerName := strings.ToLower(c.Name)
		if !strings.Contains(lowerName, q) &&
			!strings.Contains(strings.ToLower(c.ISO), q) &&
			!strings.Contains(c.DialCode, q) {
			continue
		}
		matches = append(matches, matchedCountry{
			country:  c,
			isPrefix: strings.HasPrefix(lowerName, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].country.Name < matches[j].country.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Country, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.country)
	}
	return out
}

func SearchOptions(list []Country, query string, limit int, opts Options) []Option {
	results := Search(list, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, c := range results {
		out = append(out, Option{Value: c.DialCode, Label: Label(c)})
	}
	return out
}

// Label renders the display form used across the handler and the prompts.
func Label(c Country) string {
	return c.Name + " (" + c.DialCode + ")"
}

type matchedCountry struct {
	country  Country
	isPrefix bool
}
