package analysis

import (
	"sort"

	"equiprof/domain/core"
	"equiprof/domain/tabular"
	"equiprof/internal/config"
)

// DuplicateReport carries the duplicate-row total and up to a few full-row
// samples. The first occurrence of a row is never flagged.
type DuplicateReport struct {
	Count   int                 `json:"count"`
	Samples []map[string]string `json:"samples"`
}

// Range is the observed min/max of a column's parseable values
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QualityReport bundles the data-quality diagnostics
type QualityReport struct {
	MissingValues map[string]int      `json:"missing_values"`
	DuplicateRows DuplicateReport     `json:"duplicate_rows"`
	Ranges        map[string]Range    `json:"ranges"`
	ColumnTypes   map[string]string   `json:"column_types"`
	SchemaDrift   map[string][]string `json:"schema_drift"`
}

// missingSentinel keeps an absent cell canonically distinct from a
// present-but-empty one in duplicate fingerprints.
const missingSentinel = "\x00missing"

// ComputeQuality computes missing-value counts, duplicate detection, numeric
// ranges, all-or-nothing column typing, and schema drift against an optional
// previous header.
func ComputeQuality(t *tabular.Table, previousHeader []string, p config.Params) QualityReport {
	report := QualityReport{
		MissingValues: make(map[string]int, len(t.Header)),
		DuplicateRows: DuplicateReport{Samples: []map[string]string{}},
		Ranges:        make(map[string]Range),
		ColumnTypes:   make(map[string]string, len(t.Header)),
		SchemaDrift:   map[string][]string{},
	}

	for _, col := range t.Header {
		report.MissingValues[col] = 0
	}
	for _, row := range t.Rows {
		for _, col := range t.Header {
			if row.Get(col).IsEmpty() {
				report.MissingValues[col]++
			}
		}
	}

	seen := make(map[core.RowFingerprint]bool, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, 0, len(t.Header))
		for _, col := range t.Header {
			v := row.Get(col)
			if v.Missing {
				cells = append(cells, missingSentinel)
			} else {
				cells = append(cells, v.Raw)
			}
		}
		fp := core.NewRowFingerprint(cells)
		if seen[fp] {
			report.DuplicateRows.Count++
			if len(report.DuplicateRows.Samples) < p.DuplicateSampleLimit {
				sample := make(map[string]string, len(t.Header))
				for _, col := range t.Header {
					sample[col] = row.Get(col).Text()
				}
				report.DuplicateRows.Samples = append(report.DuplicateRows.Samples, sample)
			}
		} else {
			seen[fp] = true
		}
	}

	for _, col := range t.Header {
		vals := t.FloatColumn(col)
		if len(vals) == 0 {
			continue
		}
		r := Range{Min: vals[0], Max: vals[0]}
		for _, v := range vals[1:] {
			if v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
		}
		report.Ranges[col] = r
	}

	report.ColumnTypes = inferColumnTypes(t)

	if previousHeader != nil {
		report.SchemaDrift = schemaDrift(previousHeader, t.Header)
	}

	return report
}

// inferColumnTypes is the quality engine's all-or-nothing typing: a column is
// numeric only when every non-empty value parses as a float. This is stricter
// than the ratio-based inference on purpose; the two views answer different
// questions. The synthetic Record column is skipped.
func inferColumnTypes(t *tabular.Table) map[string]string {
	types := make(map[string]string, len(t.Header))
	for _, col := range t.Header {
		if col == "Record" {
			continue
		}
		numeric := true
		for _, row := range t.Rows {
			v := row.Get(col)
			if v.IsEmpty() {
				continue
			}
			if _, ok := v.Float(); !ok {
				numeric = false
				break
			}
		}
		if numeric {
			types[col] = "numeric"
		} else {
			types[col] = "string"
		}
	}
	return types
}

// schemaDrift reports column names added, removed, and unchanged relative to
// a previously observed header, each list sorted.
func schemaDrift(previous, current []string) map[string][]string {
	prev := make(map[string]bool, len(previous))
	for _, c := range previous {
		prev[c] = true
	}
	cur := make(map[string]bool, len(current))
	for _, c := range current {
		cur[c] = true
	}

	added := []string{}
	unchanged := []string{}
	for c := range cur {
		if prev[c] {
			unchanged = append(unchanged, c)
		} else {
			added = append(added, c)
		}
	}
	removed := []string{}
	for c := range prev {
		if !cur[c] {
			removed = append(removed, c)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)
	sort.Strings(unchanged)

	return map[string][]string{
		"added_columns":     added,
		"removed_columns":   removed,
		"unchanged_columns": unchanged,
	}
}
