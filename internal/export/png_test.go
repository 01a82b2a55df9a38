package export

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/toolbox/internal/model"
)

func TestRenderSheetPNG(t *testing.T) {
	_, result := buildTestResult(t)

	var buf bytes.Buffer
	require.NoError(t, RenderSheetPNG(&buf, result.Sheets[0], result.Roll, 800))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestRenderSheetPNG_DefaultWidth(t *testing.T) {
	sheet := model.Sheet{
		Placements: []model.Placement{{Width: 0.5, Length: 2, ColorTag: "hsl(120, 70%, 75%)", Label: "A"}},
		UsedLength: 2,
	}
	var buf bytes.Buffer
	require.NoError(t, RenderSheetPNG(&buf, sheet, model.DefaultRollConfig(), 0))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultPNGWidth, img.Bounds().Dx())
}

func TestRenderSheetPNG_InvalidRoll(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderSheetPNG(&buf, model.Sheet{}, model.RollConfig{}, 100))
}
