package property

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an ordered collection of records sharing a column set.
// One spreadsheet row maps to one record.
type Table struct {
	Columns []string
	Records []Record
}

// derived column names appended on SEO-enriched export.
var seoColumns = []string{
	"Meta Description",
	"Word Count",
	"SEO Score",
	"Has CTA",
	"Location Mentions",
}

// Load reads a table from a CSV or XLSX file, chosen by extension.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path) //#nosec G304 -- CLI tool reads user-specified input file
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		return LoadCSV(f)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadCSV reads a delimited table. The first row is the header; headers
// are matched case-sensitively against the recognized field vocabulary.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows)
}

// LoadXLSX reads the first sheet of a workbook.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("input is empty")
	}

	header := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		header = append(header, strings.TrimSpace(h))
	}

	t := &Table{Columns: header}
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if col == "" || i >= len(row) {
				continue
			}
			rec.Set(col, row[i])
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// FromRecords builds a table from scraped records, deriving the column
// set from the recognized vocabulary plus any extra fields present.
func FromRecords(records []Record) *Table {
	seen := make(map[string]bool, len(RecognizedFields))
	var cols []string
	for _, f := range RecognizedFields {
		for _, rec := range records {
			if rec.Has(f) {
				cols = append(cols, f)
				seen[f] = true
				break
			}
		}
	}
	for _, rec := range records {
		for k := range rec {
			if !seen[k] {
				cols = append(cols, k)
				seen[k] = true
			}
		}
	}
	return &Table{Columns: cols, Records: records}
}

// SEOEnricher computes the derived export columns for one record's
// generated content. Wired to the seo package by the caller to keep
// this package free of analysis logic.
type SEOEnricher func(rec Record, content string) (meta string, wordCount, score, locationMentions int, hasCTA bool)

// exportColumns returns the column set for an export, appending the
// content and derived columns when requested.
func (t *Table) exportColumns(includeSEO bool) []string {
	cols := make([]string, 0, len(t.Columns)+len(seoColumns)+1)
	cols = append(cols, t.Columns...)

	hasContent := false
	for _, c := range cols {
		if c == FieldContent {
			hasContent = true
			break
		}
	}
	if !hasContent {
		cols = append(cols, FieldContent)
	}
	if includeSEO {
		cols = append(cols, seoColumns...)
	}
	return cols
}

// exportRow renders one record against the export column set.
func (t *Table) exportRow(rec Record, cols []string, includeSEO bool, enrich SEOEnricher) []string {
	row := make([]string, len(cols))
	for i, col := range cols {
		row[i] = rec[col]
	}

	if !includeSEO || enrich == nil {
		return row
	}
	content := rec.Get(FieldContent)
	if content == "" {
		return row
	}

	meta, words, score, mentions, hasCTA := enrich(rec, content)
	derived := map[string]string{
		"Meta Description":  meta,
		"Word Count":        strconv.Itoa(words),
		"SEO Score":         fmt.Sprintf("%d%%", score),
		"Has CTA":           boolWord(hasCTA),
		"Location Mentions": strconv.Itoa(mentions),
	}
	for i, col := range cols {
		if v, ok := derived[col]; ok {
			row[i] = v
		}
	}
	return row
}

// ExportCSV writes the table, with derived SEO columns when includeSEO
// is set and an enricher is supplied.
func (t *Table) ExportCSV(w io.Writer, includeSEO bool, enrich SEOEnricher) error {
	cols := t.exportColumns(includeSEO)

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, rec := range t.Records {
		if err := cw.Write(t.exportRow(rec, cols, includeSEO, enrich)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportXLSX writes the table to a workbook at path.
func (t *Table) ExportXLSX(path string, includeSEO bool, enrich SEOEnricher) error {
	cols := t.exportColumns(includeSEO)

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Property Descriptions"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("xlsx: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx: remove default sheet: %w", err)
	}

	writeRow := func(rowIdx int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		out := make([]any, len(values))
		for i, v := range values {
			out[i] = v
		}
		return f.SetSheetRow(sheet, cell, &out)
	}

	if err := writeRow(1, cols); err != nil {
		return fmt.Errorf("xlsx: write header: %w", err)
	}
	for i, rec := range t.Records {
		if err := writeRow(i+2, t.exportRow(rec, cols, includeSEO, enrich)); err != nil {
			return fmt.Errorf("xlsx: write row %d: %w", i+1, err)
		}
	}
	return f.SaveAs(path)
}

func boolWord(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
