// Package script holds pure script-content logic.
package script

import "strings"

// CountWords returns the number of whitespace-delimited non-empty tokens in
// content. This is the authoritative word count: it is recomputed on every
// save regardless of what the caller claims.
func CountWords(content string) int64 {
	return int64(len(strings.Fields(content)))
}
