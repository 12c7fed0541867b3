package heatmap

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestTwoSlopeNorm(t *testing.T) {
	n, err := newTwoSlopeNorm(1, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.0, n.normalize(1))
	assert.Equal(t, 0.5, n.normalize(2))
	assert.Equal(t, 1.0, n.normalize(10))
	// Independent spans on either side of the center.
	assert.Equal(t, 0.25, n.normalize(1.5))
	assert.Equal(t, 0.75, n.normalize(6))
	assert.True(t, math.IsNaN(n.normalize(math.NaN())))
}

func TestTwoSlopeNorm_RejectsDegenerateBounds(t *testing.T) {
	for _, tc := range [][3]float64{
		{1, 1, 2},
		{1, 2, 2},
		{1, 1, 1},
		{2, 1, 3},
	} {
		_, err := newTwoSlopeNorm(tc[0], tc[1], tc[2])
		require.Error(t, err)
	}
}

func TestGreenWhiteRedPalette(t *testing.T) {
	colors := greenWhiteRed(paletteSteps).Colors()
	require.Len(t, colors, 20)

	assert.Equal(t, color.NRGBA{R: 0, G: 179, B: 0, A: 0xff}, colors[0])
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0, B: 0, A: 0xff}, colors[19])
	// The gradient brightens towards white around the middle.
	mid := colors[10].(color.NRGBA)
	assert.Greater(t, mid.R, uint8(200))
	assert.Greater(t, mid.G, uint8(200))
}

func testTable(t *testing.T) Table {
	t.Helper()
	table, err := CoerceTable(
		[]string{"c0", "c1"},
		[]string{"r0", "r1"},
		[][]string{
			{"1", "2"},
			{"3", "NaN"},
		},
	)
	require.NoError(t, err)
	return table
}

func Test_cellAnnotations(t *testing.T) {
	labels, err := cellAnnotations(testTable(t))
	require.NoError(t, err)

	// Three numeric cells annotated, the missing one left blank.
	require.Len(t, labels.Labels, 3)
	assert.ElementsMatch(t, []string{"1.0000", "2.0000", "3.0000"}, labels.Labels)

	// Row 0 of the table is drawn at the top.
	assert.Equal(t, 1.0, labels.XYs[0].Y)
	assert.Equal(t, 0.0, labels.XYs[2].Y)
}

func TestRender(t *testing.T) {
	p, err := Render(testTable(t), "test render")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "test render", p.Title.Text)

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = wt.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", buf.String()[:4])
}

func TestRender_EmptyTable(t *testing.T) {
	table, err := FromValues(nil, nil, nil)
	require.NoError(t, err)
	_, err = Render(table, "empty")
	require.Error(t, err)
}

func TestRender_NoNumericCells(t *testing.T) {
	table, err := CoerceTable([]string{"c"}, []string{"r"}, [][]string{{"junk"}})
	require.NoError(t, err)
	_, err = Render(table, "missing")
	require.Error(t, err)
}

func TestRender_UniformTable(t *testing.T) {
	table, err := FromValues([]string{"c0", "c1"}, []string{"r"}, [][]float64{{4, 4}})
	require.NoError(t, err)
	// min == median == max cannot anchor a diverging scale.
	_, err = Render(table, "uniform")
	require.Error(t, err)
}

func Test_labelTicks(t *testing.T) {
	ticks := labelTicks{labels: []string{"a", "b", "c"}}.Ticks(-0.5, 2.5)
	require.Len(t, ticks, 3)
	assert.Equal(t, "a", ticks[0].Label)
	assert.Equal(t, 2.0, ticks[2].Value)
}
