// Package analysis implements the statistical engines of the profiler:
// schema validation, type inference, summary statistics, data quality,
// correlation, moments, outlier and anomaly detection, and clustering.
// Every engine is a pure function over an immutable Table; insufficient
// data degrades to empty results rather than errors.
package analysis

import (
	"equiprof/domain/core"
	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// ValidateSchema enforces the two fatal preconditions: every required column
// exists in the header, and every non-empty value in a base numeric column
// parses as a float. The first numeric failure wins and names the column and
// 1-based row.
func ValidateSchema(t *tabular.Table, p config.Params) error {
	var missing []string
	for _, col := range p.RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return core.NewMissingColumnsError(missing)
	}

	for _, row := range t.Rows {
		for _, col := range p.BaseNumericColumns {
			v := row.Get(col)
			if v.IsEmpty() {
				continue
			}
			if _, ok := v.Float(); !ok {
				return core.NewNumericFieldError(col, row.Record)
			}
		}
	}
	return nil
}
