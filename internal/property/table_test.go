package property

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Property Name,Address,City,Key Features
Gateway Tower,500 Congress Ave,Austin,"Meeting rooms, Parking"
Harbor Point,,Seattle,
`

func TestLoadCSV(t *testing.T) {
	table, err := LoadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadCSV() error: %v", err)
	}

	wantCols := []string{"Property Name", "Address", "City", "Key Features"}
	if len(table.Columns) != len(wantCols) {
		t.Fatalf("columns = %v, want %v", table.Columns, wantCols)
	}
	for i, c := range wantCols {
		if table.Columns[i] != c {
			t.Errorf("column %d = %q, want %q", i, table.Columns[i], c)
		}
	}

	if len(table.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(table.Records))
	}
	if got := table.Records[0].Get(FieldKeyFeatures); got != "Meeting rooms, Parking" {
		t.Errorf("quoted field = %q", got)
	}
	if table.Records[1].Has(FieldAddress) {
		t.Error("empty cell should leave the field absent")
	}
	if got := table.Records[1].Get(FieldCity); got != "Seattle" {
		t.Errorf("second record city = %q", got)
	}
}

func TestLoadCSV_RaggedRows(t *testing.T) {
	table, err := LoadCSV(strings.NewReader("Property Name,City\nLone Star\n"))
	if err != nil {
		t.Fatalf("LoadCSV() error: %v", err)
	}
	rec := table.Records[0]
	if rec.Get(FieldName) != "Lone Star" || rec.Has(FieldCity) {
		t.Errorf("short row handled badly: %v", rec)
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	if _, err := LoadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	if _, err := Load("records.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestExportCSV_WithSEOColumns(t *testing.T) {
	table := &Table{
		Columns: []string{FieldName, FieldCity},
		Records: []Record{
			{FieldName: "Gateway Tower", FieldCity: "Austin", FieldContent: "Some generated copy."},
			{FieldName: "No Content Yet", FieldCity: "Seattle"},
		},
	}

	enrich := func(rec Record, content string) (string, int, int, int, bool) {
		return "meta for " + rec.Get(FieldName), 42, 80, 3, true
	}

	var buf bytes.Buffer
	if err := table.ExportCSV(&buf, true, enrich); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-read exported csv: %v", err)
	}

	wantHeader := []string{
		FieldName, FieldCity, FieldContent,
		"Meta Description", "Word Count", "SEO Score", "Has CTA", "Location Mentions",
	}
	if strings.Join(rows[0], "|") != strings.Join(wantHeader, "|") {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	first := rows[1]
	if first[3] != "meta for Gateway Tower" || first[4] != "42" || first[5] != "80%" ||
		first[6] != "Yes" || first[7] != "3" {
		t.Errorf("derived columns wrong: %v", first)
	}

	// A record without content gets empty derived cells.
	second := rows[2]
	for i := 3; i < len(second); i++ {
		if second[i] != "" {
			t.Errorf("contentless record has derived value %q in column %d", second[i], i)
		}
	}
}

func TestExportCSV_WithoutSEO(t *testing.T) {
	table := &Table{
		Columns: []string{FieldName},
		Records: []Record{{FieldName: "Gateway Tower"}},
	}

	var buf bytes.Buffer
	if err := table.ExportCSV(&buf, false, nil); err != nil {
		t.Fatalf("ExportCSV() error: %v", err)
	}

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if strings.Contains(header, "SEO Score") {
		t.Errorf("SEO columns present without includeSEO: %q", header)
	}
	if !strings.Contains(header, FieldContent) {
		t.Errorf("content column missing: %q", header)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	table := &Table{
		Columns: []string{FieldName, FieldCity},
		Records: []Record{
			{FieldName: "Gateway Tower", FieldCity: "Austin", FieldContent: "Copy."},
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	if err := table.ExportXLSX(path, false, nil); err != nil {
		t.Fatalf("ExportXLSX() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got.Records) != 1 {
		t.Fatalf("records = %d, want 1", len(got.Records))
	}
	rec := got.Records[0]
	if rec.Get(FieldName) != "Gateway Tower" || rec.Get(FieldContent) != "Copy." {
		t.Errorf("round-tripped record = %v", rec)
	}
}

func TestFromRecords_ColumnOrder(t *testing.T) {
	records := []Record{
		{FieldCity: "Austin", "Custom Column": "x"},
		{FieldName: "Gateway Tower"},
	}

	table := FromRecords(records)

	// Recognized fields come first in vocabulary order, extras after.
	var nameIdx, cityIdx, customIdx int
	for i, c := range table.Columns {
		switch c {
		case FieldName:
			nameIdx = i
		case FieldCity:
			cityIdx = i
		case "Custom Column":
			customIdx = i
		}
	}
	if !(nameIdx < cityIdx && cityIdx < customIdx) {
		t.Errorf("column order wrong: %v", table.Columns)
	}
}

func TestRecord_Basics(t *testing.T) {
	rec := Record{}
	rec.Set(FieldName, "  Gateway Tower  ")
	if got := rec.Get(FieldName); got != "Gateway Tower" {
		t.Errorf("Get() = %q, want trimmed value", got)
	}

	if got := rec.GetOr(FieldCity, "N/A"); got != "N/A" {
		t.Errorf("GetOr() = %q, want fallback", got)
	}
	if rec.DisplayName("fallback") != "Gateway Tower" {
		t.Errorf("DisplayName() = %q", rec.DisplayName("fallback"))
	}
	if (Record{}).DisplayName("fallback") != "fallback" {
		t.Error("DisplayName fallback not used")
	}

	clone := rec.Clone()
	clone.Set(FieldName, "Changed")
	if rec.Get(FieldName) != "Gateway Tower" {
		t.Error("Clone shares storage with the original")
	}
}
