package analysis

import (
	"equiprof/domain/tabular"
)

// tableFrom builds a Table from row maps; absent keys become missing cells
// and Record ids follow row order starting at 1.
func tableFrom(header []string, rows []map[string]string) *tabular.Table {
	t := &tabular.Table{Header: header}
	for i, cells := range rows {
		row := tabular.NewRow(i + 1)
		for col, v := range cells {
			row.Cells[col] = tabular.NewValue(v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

var baseHeader = []string{"Equipment Name", "Type", "Flowrate", "Pressure", "Temperature"}

// plantRows is the shared two-pumps-and-a-valve fixture
func plantRows() []map[string]string {
	return []map[string]string{
		{"Equipment Name": "P1", "Type": "Pump", "Flowrate": "10", "Pressure": "100", "Temperature": "25"},
		{"Equipment Name": "P2", "Type": "Pump", "Flowrate": "12", "Pressure": "105", "Temperature": "26"},
		{"Equipment Name": "V1", "Type": "Valve", "Flowrate": "200", "Pressure": "900", "Temperature": "25"},
	}
}
