package analysis

import (
	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// NumericColumn is a column name with its parsed float sequence, built by
// dropping absent, empty, and unparseable cells.
type NumericColumn struct {
	Name   string
	Values []float64
}

// InferNumericColumns classifies every non-anchor header column: a column is
// numeric when at least NumericDetectRatio of its non-empty values parse as
// floats (boundary inclusive) and at least one value parsed. When no column
// qualifies, any base numeric column present in the header is used as a
// fallback regardless of the ratio.
func InferNumericColumns(t *tabular.Table, p config.Params) []NumericColumn {
	anchors := make(map[string]bool, len(p.CategoricalAnchors))
	for _, a := range p.CategoricalAnchors {
		anchors[a] = true
	}

	var numeric []NumericColumn
	for _, col := range t.Header {
		if anchors[col] {
			continue
		}
		nonEmpty := 0
		var parsed []float64
		for _, row := range t.Rows {
			v := row.Get(col)
			if v.IsEmpty() {
				continue
			}
			nonEmpty++
			if f, ok := v.Float(); ok {
				parsed = append(parsed, f)
			}
		}
		if nonEmpty == 0 {
			continue
		}
		if float64(len(parsed))/float64(nonEmpty) >= p.NumericDetectRatio && len(parsed) > 0 {
			numeric = append(numeric, NumericColumn{Name: col, Values: parsed})
		}
	}

	if len(numeric) == 0 {
		numeric = baseColumnFallback(t, p)
	}
	return numeric
}

// baseColumnFallback collects the base numeric columns wholesale. A single
// unparseable non-empty value disqualifies the whole column.
func baseColumnFallback(t *tabular.Table, p config.Params) []NumericColumn {
	var numeric []NumericColumn
	for _, col := range p.BaseNumericColumns {
		if !t.HasColumn(col) {
			continue
		}
		var parsed []float64
		ok := true
		for _, row := range t.Rows {
			v := row.Get(col)
			if v.IsEmpty() {
				continue
			}
			f, parses := v.Float()
			if !parses {
				ok = false
				break
			}
			parsed = append(parsed, f)
		}
		if ok && len(parsed) > 0 {
			numeric = append(numeric, NumericColumn{Name: col, Values: parsed})
		}
	}
	return numeric
}

// NumericColumnNames returns the ordered names of the inferred columns
func NumericColumnNames(columns []NumericColumn) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}
