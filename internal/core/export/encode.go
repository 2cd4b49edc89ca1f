// Package export encodes metadata rows for file export.
//
// The CSV form quotes every field and doubles embedded quote characters.
// encoding/csv cannot produce this format (it quotes only when required), so
// the encoder is written out by hand.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formats accepted by metadata export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Script export formats.
const (
	FormatTxt      = "txt"
	FormatMarkdown = "md"
)

// CSV renders rows with an unquoted header line followed by one line per
// row, every field quoted. Column order is explicit: Go maps are unordered,
// so the caller names the columns. Missing or nil values render as empty
// quoted fields.
func CSV(columns []string, rows []map[string]any) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(columns, ","))
	for _, row := range rows {
		b.WriteString("\n")
		for i, col := range columns {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(`"`)
			b.WriteString(strings.ReplaceAll(fieldString(row[col]), `"`, `""`))
			b.WriteString(`"`)
		}
	}
	return b.String()
}

// JSON renders rows as indented JSON.
func JSON(rows []map[string]any) ([]byte, error) {
	return json.MarshalIndent(rows, "", "  ")
}

// Slugify turns a title into a safe default filename stem: non-alphanumeric
// runs become underscores and the result is lowercased.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

func fieldString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
