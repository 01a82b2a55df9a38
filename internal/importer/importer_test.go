package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/toolbox/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Width,Length\nTraufe,30,16\nKehle,50,3\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Bezeichnung;Breite;Länge\nTraufe;33,3;16\nKehle;50;3,5\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tWidth\tLength\nTraufe\t30\t16\nKehle\t50\t3\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Width|Length\nTraufe|30|16\nKehle|50|3\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Label", "Width", "Length", "Quantity", "Material"})
	require.True(t, ok)
	assert.Equal(t, ColumnMapping{Label: 0, Width: 1, Length: 2, Quantity: 3, Material: 4}, mapping)
}

func TestDetectColumns_GermanHeaders(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Werkstoff", "Länge (m)", "Breite (cm)", "Bezeichnung"})
	require.True(t, ok)
	assert.Equal(t, 3, mapping.Label)
	assert.Equal(t, 2, mapping.Width)
	assert.Equal(t, 1, mapping.Length)
	assert.Equal(t, 0, mapping.Material)
	assert.Equal(t, -1, mapping.Quantity)
}

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	mapping, ok := DetectColumns([]string{"  LABEL ", "WiDtH", "LENGTH"})
	require.True(t, ok)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 2, mapping.Length)
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, ok := DetectColumns([]string{"Traufe", "30", "16"})
	assert.False(t, ok)
	assert.Equal(t, ColumnMapping{Label: 0, Width: 1, Length: 2, Quantity: 3, Material: 4}, mapping)
}

// ─── ParseNumber Tests ─────────────────────────────────────

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"30", 30, true},
		{" 33.3 ", 33.3, true},
		{"33,3", 33.3, true},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Label,Width,Length,Quantity,Material\nTraufe,30,16,2,Kupfer\nKehle,50,3.5,1,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cuts) != 3 {
		t.Fatalf("expected 3 cuts, got %d", len(result.Cuts))
	}

	first := result.Cuts[0]
	if first.Label != "Traufe" {
		t.Errorf("expected label 'Traufe', got '%s'", first.Label)
	}
	assert.InDelta(t, 0.3, first.Width, 1e-12, "width is converted from cm")
	assert.Equal(t, 16.0, first.Length)
	assert.Equal(t, "Kupfer", first.MaterialLabel)
	assert.NotEqual(t, result.Cuts[0].ID, result.Cuts[1].ID)
	assert.Equal(t, "Kehle", result.Cuts[2].Label)
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Traufe,30,16\nKehle,50,3\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d (errors: %v)", len(result.Cuts), result.Errors)
	}
	if result.Cuts[0].Label != "Traufe" {
		t.Errorf("expected label 'Traufe', got '%s'", result.Cuts[0].Label)
	}
}

func TestImportCSVFromReader_UnknownHeaderSkipped(t *testing.T) {
	data := "Teil,Maß1,Maß2\nTraufe,30,16\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')
	require.Len(t, result.Cuts, 1)
	assert.Contains(t, result.Warnings, "Detected header row, skipping")
}

func TestImportCSVFromReader_DecimalComma(t *testing.T) {
	data := "Bezeichnung;Breite;Länge;Anzahl\nTraufe;33,3;16,5;1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ';')
	require.Empty(t, result.Errors)
	require.Len(t, result.Cuts, 1)
	assert.InDelta(t, 0.333, result.Cuts[0].Width, 1e-12)
	assert.Equal(t, 16.5, result.Cuts[0].Length)
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

func TestImportCSVFromReader_InvalidValues(t *testing.T) {
	data := "Label,Width,Length\nA,abc,2\nB,30,xyz\nC,-5,2\nD,30,0\nE,,2\nF,30,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')
	assert.Empty(t, result.Cuts)
	assert.Len(t, result.Errors, 6)
}

func TestImportCSVFromReader_Quantity(t *testing.T) {
	data := "Label,Width,Length,Qty\nA,30,2,0\nB,30,2,x\nC,30,2,3\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	require.Len(t, result.Errors, 1, "zero quantity is an error")
	require.Len(t, result.Cuts, 4, "invalid quantity falls back to 1")
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Invalid quantity") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestImportCSVFromReader_EmptyRowsAndLabels(t *testing.T) {
	data := "Label,Width,Length\n,30,2\n\n,,\nB,40,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')
	require.Len(t, result.Cuts, 2)
	assert.Equal(t, "Zuschnitt 1", result.Cuts[0].Label)
	assert.Equal(t, "B", result.Cuts[1].Label)
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Label,Width,Material\nA,30,Kupfer\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Length")
	assert.Empty(t, result.Cuts)
}

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cuts.csv")
	content := "Label,Width,Length\nTraufe,30,16\nKehle,50,3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cuts) != 2 {
		t.Fatalf("expected 2 cuts, got %d", len(result.Cuts))
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cuts.csv")
	content := "Bezeichnung;Breite;Länge\nTraufe;33,3;16\nKehle;50;3,5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)
	if len(result.Cuts) != 2 {
		t.Errorf("expected 2 cuts, got %d (errors: %v)", len(result.Cuts), result.Errors)
	}

	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSVData_Whitespace(t *testing.T) {
	result := ImportCSVData([]byte("   \n\n"))
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "File is empty", result.Errors[0])
}

// ─── AppendTo Tests ────────────────────────────────────────

func TestImportResultAppendTo(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("A,30,2\nB,150,2\nC,40,1\n"), ',')
	require.Len(t, result.Cuts, 3)

	var cl model.CutList
	rejected := result.AppendTo(&cl, 1.0)

	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0], "B")
	require.Len(t, cl, 2)
	assert.NotEmpty(t, cl[0].ColorTag)
	assert.NotEqual(t, cl[0].ColorTag, cl[1].ColorTag)
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cuts.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Bezeichnung", "Breite", "Länge", "Anzahl"},
		{"Traufe", 30, 16, 1},
		{"Kehle", 50.5, 3.2, 2},
	})

	result := ImportExcel(path)
	require.Empty(t, result.Errors)
	require.Len(t, result.Cuts, 3)
	assert.InDelta(t, 0.505, result.Cuts[1].Width, 1e-12)
	assert.Equal(t, 3.2, result.Cuts[1].Length)
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Traufe", 30, 16},
	})

	result := ImportExcel(path)
	require.Len(t, result.Cuts, 1)
	assert.Equal(t, "Traufe", result.Cuts[0].Label)
}

func TestImportExcelFromReader(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Width", "Length"},
		{"A", 25, 2},
	})
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	result := ImportExcelFromReader(f)
	require.Empty(t, result.Errors)
	require.Len(t, result.Cuts, 1)
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/path/file.xlsx")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Label", "Width", "Length"},
		{"A", "breit", 2},
		{"B", 30, 2},
	})

	result := ImportExcel(path)
	assert.Len(t, result.Errors, 1)
	assert.Len(t, result.Cuts, 1)
}
