// Package search turns free-text queries into full-text match expressions.
package search

import "strings"

// BuildMatch converts a raw user query into a prefix-matching conjunctive
// FTS5 expression: embedded quotes are doubled, each whitespace-delimited
// token gets a wildcard suffix, and tokens are joined with AND. The second
// return value is false when the query is empty after trimming, in which
// case no query should be executed at all.
func BuildMatch(raw string) (string, bool) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", false
	}

	q = strings.ReplaceAll(q, `"`, `""`)
	words := strings.Fields(q)
	for i, w := range words {
		words[i] = w + "*"
	}
	return strings.Join(words, " AND "), true
}
