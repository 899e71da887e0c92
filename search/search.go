package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search returns every line of contents that contains query.
// The match is case-sensitive.
func Search(query, contents string) Result {
	return filter(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// SearchCaseInsensitive returns every line of contents that contains query,
// comparing the lowercased forms of both. The returned lines keep their
// original case.
func SearchCaseInsensitive(query, contents string) Result {
	// Caser keeps state between calls, so each search gets its own.
	lower := cases.Lower(language.Und)
	query = lower.String(query)

	return filter(contents, func(line string) bool {
		return strings.Contains(lower.String(line), query)
	})
}

func filter(contents string, match func(string) bool) Result {
	results := make(Result, 0)
	for _, line := range Lines(contents) {
		if match(line) {
			results = append(results, line)
		}
	}
	return results
}
