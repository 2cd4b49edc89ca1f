// Package sqlite implements the persistence ports on top of the embedded
// database engine.
package sqlite

import (
	"fmt"

	"github.com/example/creatorvault/internal/db"
)

// asInt64 reads a numeric column. SQLite integers arrive as int64; COUNT
// and aggregate results can come back as float64 from some expressions.
func asInt64(row db.Row, col string) int64 {
	switch v := row[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		var n int64
		fmt.Sscan(v, &n)
		return n
	default:
		return 0
	}
}

// asString reads a text column, mapping NULL to "".
func asString(row db.Row, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
