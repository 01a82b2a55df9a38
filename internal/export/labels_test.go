package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/toolbox/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	_, result := buildTestResult(t)
	labels := CollectLabelInfos(result)

	require.Len(t, labels, result.PlacementCount())
	first := labels[0]
	assert.Equal(t, 1, first.SheetIndex)
	assert.Equal(t, 1, first.PieceIndex)
	assert.NotEmpty(t, first.CutID)

	for _, l := range labels {
		assert.NotEmpty(t, l.Label, "unnamed pieces get a placeholder")
		assert.Greater(t, l.WidthCM, 0.0)
	}
}

func TestLabelInfoJSON(t *testing.T) {
	info := LabelInfo{CutID: "ab12cd34", Label: "Traufe", WidthCM: 30, LengthM: 4, SheetIndex: 1, PieceIndex: 2}
	data, err := json.Marshal(info)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Traufe", decoded["label"])
	assert.Equal(t, 30.0, decoded["width_cm"])
	assert.Equal(t, 4.0, decoded["length_m"])
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	_, result := buildTestResult(t)

	require.NoError(t, ExportLabels(path, result))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestExportLabels_ManyPagesToWriter(t *testing.T) {
	sheet := model.Sheet{}
	for i := 0; i < 35; i++ {
		sheet.Placements = append(sheet.Placements, model.Placement{
			SourceCutID: "c1", Label: "Streifen mit einem sehr langen Namen", Width: 0.1, Length: 1, Y: float64(i),
		})
	}
	result := model.OptimizationResult{Roll: model.DefaultRollConfig(), Sheets: []model.Sheet{sheet}}

	var buf bytes.Buffer
	require.NoError(t, WriteLabels(&buf, result))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportLabels_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	assert.Error(t, ExportLabels(path, model.OptimizationResult{}))

	empty := model.OptimizationResult{Sheets: []model.Sheet{{}}}
	assert.Error(t, ExportLabels(path, empty))
}
