// Package excel decodes raw CSV or XLSX bytes into the tabular record model.
// The two paths deliberately differ: the spreadsheet reader drops trailing
// blank header cells and truncates rows to the header length, while the text
// reader keeps the header verbatim and tolerates ragged rows.
package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"equiprof/domain/core"
	"equiprof/domain/tabular"
	"equiprof/internal"

	"github.com/xuri/excelize/v2"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DataReader handles reading Excel and CSV byte buffers
type DataReader struct {
	filename string
	fileType string // "xlsx" or "csv"
	log      *internal.Logger
}

// NewDataReader creates a reader whose decode path is selected by the
// filename extension: .xlsx uses the spreadsheet reader, anything else is
// decoded as UTF-8 delimited text.
func NewDataReader(filename string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filename: filename, fileType: fileType, log: internal.DefaultLogger}
}

// Read decodes the byte buffer into a Table. It is a pure transform: the same
// bytes always produce the same table or the same parse error.
func (r *DataReader) Read(data []byte) (*tabular.Table, error) {
	switch r.fileType {
	case "xlsx":
		return r.readExcel(data)
	default:
		return r.readCSV(data)
	}
}

// readExcel reads the first sheet of an XLSX workbook
func (r *DataReader) readExcel(data []byte) (*tabular.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, core.NewParseError("failed to open spreadsheet", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.NewParseError("spreadsheet has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, core.NewParseError(fmt.Sprintf("failed to read sheet %s", sheets[0]), err)
	}
	if len(rows) == 0 {
		return nil, core.NewParseError("spreadsheet has no header row", nil)
	}

	header := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		header = append(header, strings.TrimSpace(cell))
	}
	// Drop trailing blank header cells
	for len(header) > 0 && header[len(header)-1] == "" {
		header = header[:len(header)-1]
	}
	if len(header) == 0 {
		return nil, core.NewParseError("spreadsheet has no header row", nil)
	}

	table := &tabular.Table{Header: header}
	for i := 1; i < len(rows); i++ {
		row := tabular.NewRow(i)
		// Values beyond the header length are discarded
		for j, cell := range rows[i] {
			if j >= len(header) {
				break
			}
			row.Cells[header[j]] = tabular.NewValue(strings.TrimSpace(cell))
		}
		table.Rows = append(table.Rows, row)
	}

	r.log.Debug("[DataReader] XLSX decoded (%d columns, %d rows)", len(header), len(table.Rows))
	return table, nil
}

// readCSV reads UTF-8 delimited text with the first line as header
func (r *DataReader) readCSV(data []byte) (*tabular.Table, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, core.NewParseError("input is not valid UTF-8", nil)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewParseError("failed to read delimited text", err)
	}
	if len(records) == 0 {
		return nil, core.NewParseError("delimited text has no header row", nil)
	}

	header := records[0]
	table := &tabular.Table{Header: header}
	for i := 1; i < len(records); i++ {
		row := tabular.NewRow(i)
		for j, cell := range records[i] {
			if j >= len(header) {
				break
			}
			row.Cells[header[j]] = tabular.NewValue(cell)
		}
		table.Rows = append(table.Rows, row)
	}

	r.log.Debug("[DataReader] CSV decoded (%d columns, %d rows)", len(header), len(table.Rows))
	return table, nil
}
