// Package tabular defines the immutable record model shared by every
// analytics engine: an ordered header, rows of typed cell values, and a
// synthetic 1-based Record index assigned at parse time.
package tabular

import (
	"strconv"
	"strings"
)

// Value is a single cell. A missing cell is distinct from a present-but-empty
// string and from a value that parses to zero.
type Value struct {
	Raw     string
	Missing bool
}

// NewValue wraps a raw cell string
func NewValue(raw string) Value {
	return Value{Raw: raw}
}

// MissingValue is the explicit absent-cell variant
func MissingValue() Value {
	return Value{Missing: true}
}

// IsEmpty reports whether the cell is absent or the empty string. Both count
// as "missing" for aggregation purposes.
func (v Value) IsEmpty() bool {
	return v.Missing || v.Raw == ""
}

// Float parses the cell as a float64. Surrounding whitespace is tolerated.
func (v Value) Float() (float64, bool) {
	if v.IsEmpty() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.Raw), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Text returns the raw string, empty for missing cells
func (v Value) Text() string {
	if v.Missing {
		return ""
	}
	return v.Raw
}

// Row is one record: cell values keyed by column name plus the stable
// 1-based Record index used by clustering and anomaly results.
type Row struct {
	Record int
	Cells  map[string]Value
}

// NewRow creates a row with the given record index
func NewRow(record int) Row {
	return Row{Record: record, Cells: make(map[string]Value)}
}

// Get returns the cell for a column, MissingValue when the row has no cell
func (r Row) Get(column string) Value {
	if v, ok := r.Cells[column]; ok {
		return v
	}
	return MissingValue()
}

// Table is the (Header, Rows) pair every engine consumes
type Table struct {
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header contains the column
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}

// ColumnValues returns every cell of a column in row order
func (t *Table) ColumnValues(column string) []Value {
	values := make([]Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.Get(column))
	}
	return values
}

// FloatColumn returns the parsed floats of a column, dropping cells that are
// absent, empty, or unparseable.
func (t *Table) FloatColumn(column string) []float64 {
	parsed := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if f, ok := row.Get(column).Float(); ok {
			parsed = append(parsed, f)
		}
	}
	return parsed
}
