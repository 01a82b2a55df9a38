package export

import (
	"bytes"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX_Sheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.xlsx")
	cuts, result := buildTestResult(t)

	require.NoError(t, ExportXLSX(path, cuts, result, testReportInfo()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetCuts, SheetLayout, SheetSummary}, f.GetSheetList())

	cutRows, err := f.GetRows(SheetCuts)
	require.NoError(t, err)
	assert.Len(t, cutRows, len(cuts)+1)
	assert.Equal(t, "Traufe", cutRows[1][1])
	width, err := strconv.ParseFloat(cutRows[1][2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, width, 1e-9)

	layoutRows, err := f.GetRows(SheetLayout)
	require.NoError(t, err)
	assert.Len(t, layoutRows, result.PlacementCount()+1)

	project, err := f.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "Dach Meier", project)
}

func TestWriteXLSX_Reopens(t *testing.T) {
	cuts, result := buildTestResult(t)
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, cuts, result, testReportInfo()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	segments, err := f.GetCellValue(SheetSummary, "B7")
	require.NoError(t, err)
	assert.NotEmpty(t, segments)
}
