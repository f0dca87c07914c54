package analysis

import (
	"encoding/csv"
	"strings"

	"equiprof/domain/tabular"
)

// BuildPreview re-serializes the first few rows as delimited text with the
// original header, regardless of the input format. Missing cells serialize
// as empty strings.
func BuildPreview(t *tabular.Table, limit int) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	_ = w.Write(t.Header)
	for i, row := range t.Rows {
		if i >= limit {
			break
		}
		record := make([]string, len(t.Header))
		for j, col := range t.Header {
			record[j] = row.Get(col).Text()
		}
		_ = w.Write(record)
	}
	w.Flush()
	return sb.String()
}
