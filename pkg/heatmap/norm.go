package heatmap

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/palette"
)

// paletteSteps is the number of discrete colors in the heatmap gradient.
const paletteSteps = 20

// twoSlopeNorm maps values into [0, 1] with independent linear spans on
// either side of the center, so the center lands exactly on 0.5 even when
// the data is skewed.
type twoSlopeNorm struct {
	vmin, vcenter, vmax float64
}

func newTwoSlopeNorm(vmin, vcenter, vmax float64) (twoSlopeNorm, error) {
	if !(vmin < vcenter && vcenter < vmax) {
		return twoSlopeNorm{}, errors.Errorf(
			"heatmap: color scale bounds must be strictly ascending, got min=%v center=%v max=%v",
			vmin, vcenter, vmax)
	}
	return twoSlopeNorm{vmin: vmin, vcenter: vcenter, vmax: vmax}, nil
}

// normalize maps v to [0, 1]; NaN passes through unchanged.
func (n twoSlopeNorm) normalize(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return v
	case v <= n.vmin:
		return 0
	case v >= n.vmax:
		return 1
	case v <= n.vcenter:
		return 0.5 * (v - n.vmin) / (n.vcenter - n.vmin)
	default:
		return 0.5 + 0.5*(v-n.vcenter)/(n.vmax-n.vcenter)
	}
}

// diverging is a fixed list of colors satisfying palette.Palette.
type diverging struct {
	colors []color.Color
}

func (d diverging) Colors() []color.Color { return d.colors }

// greenWhiteRed builds a discretized gradient from bright green through
// white to red, the low-median-high colors of the heatmap.
func greenWhiteRed(steps int) palette.Palette {
	var (
		low  = [3]float64{0, 0.7, 0}
		mid  = [3]float64{1, 1, 1}
		high = [3]float64{1, 0, 0}
	)
	colors := make([]color.Color, steps)
	for i := range colors {
		t := float64(i) / float64(steps-1)
		from, to := low, mid
		if t > 0.5 {
			from, to = mid, high
			t -= 0.5
		}
		t *= 2
		colors[i] = color.NRGBA{
			R: channel(from[0] + t*(to[0]-from[0])),
			G: channel(from[1] + t*(to[1]-from[1])),
			B: channel(from[2] + t*(to[2]-from[2])),
			A: 0xff,
		}
	}
	return diverging{colors: colors}
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 0xff))
}
