package heatmap

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// grid adapts a Table to plotter.GridXYZ. Values are passed through the
// two-slope normalization so the plotter's linear color mapping reproduces
// the median-centered scale. The vertical axis is flipped: input row 0
// appears at the top.
type grid struct {
	t    Table
	norm twoSlopeNorm
}

func (g grid) Dims() (c, r int) { return g.t.Dims() }

func (g grid) Z(c, r int) float64 {
	_, rows := g.t.Dims()
	return g.norm.normalize(g.t.At(rows-1-r, c))
}

func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// Render builds the annotated heatmap plot for t. It fails if the table is
// empty or has no numeric cell, or if the computed min, median and max do
// not form a strictly ascending color scale.
func Render(t Table, title string) (*plot.Plot, error) {
	cols, rows := t.Dims()
	if cols == 0 || rows == 0 {
		return nil, errors.New("heatmap: empty table")
	}
	vmin, vmax := t.Min(), t.Max()
	vcenter := t.MedianOfMedians()
	if math.IsNaN(vcenter) {
		return nil, errors.New("heatmap: table has no numeric cells")
	}
	norm, err := newTwoSlopeNorm(vmin, vcenter, vmax)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = vg.Points(20)

	h := plotter.NewHeatMap(grid{t: t, norm: norm}, greenWhiteRed(paletteSteps))
	h.Min, h.Max = 0, 1
	p.Add(h)

	annotations, err := cellAnnotations(t)
	if err != nil {
		return nil, err
	}
	p.Add(annotations)

	p.X.Tick.Marker = labelTicks{labels: t.cols}
	p.Y.Tick.Marker = labelTicks{labels: reversed(t.rows)}
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XLeft
	return p, nil
}

// cellAnnotations overlays every non-missing cell with its value formatted
// to four decimal places, centered in the cell.
func cellAnnotations(t Table) (*plotter.Labels, error) {
	cols, rows := t.Dims()
	var xyl plotter.XYLabels
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if t.IsMissing(i, j) {
				continue
			}
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(j), Y: float64(rows - 1 - i)})
			xyl.Labels = append(xyl.Labels, fmt.Sprintf("%.4f", t.At(i, j)))
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
	}
	return labels, nil
}

// labelTicks places one unmarked tick per category at the cell center.
type labelTicks struct {
	labels []string
}

func (lt labelTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(lt.labels))
	for i, l := range lt.labels {
		v := float64(i)
		if v < min || v > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: l})
	}
	return ticks
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
