package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// DefaultDPI maps the 10x6 inch figure to 1000x600 pixels.
const DefaultDPI = 100.0

// ComputeChartDimensions converts a figure size in inches to pixels, clamped so the
// legend and axis labels always fit.
func ComputeChartDimensions(widthIn, heightIn, dpi float64) (int, int) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	w := int(math.Round(widthIn * dpi))
	h := int(math.Round(heightIn * dpi))
	if w < 400 {
		w = 400
	}
	if h < 240 {
		h = 240
	}
	return w, h
}

// niceAxisBounds pads [lo,hi] by 5% and snaps both ends outward to the span's order
// of magnitude. Non-negative data keeps a zero floor.
func niceAxisBounds(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return lo, hi
	}
	if hi <= lo {
		hi = lo + 1
	}
	span := hi - lo
	unit := math.Pow(10, math.Floor(math.Log10(span)))
	a := math.Floor((lo-span*0.05)/unit) * unit
	b := math.Ceil((hi+span*0.05)/unit) * unit
	if lo >= 0 && a < 0 {
		a = 0
	}
	return a, b
}

// yTickCount is the number of y ticks wanted for a plot heightPx tall, one per 100px.
func yTickCount(heightPx int) int {
	n := heightPx / 100
	if n < 4 {
		return 4
	}
	if n > 10 {
		return 10
	}
	return n
}

var tickSteps = []float64{1, 2, 2.5, 5, 10}

// niceTicks lays ticks over [lo,hi] using the 1/2/2.5/5 step whose count is closest to n.
func niceTicks(lo, hi float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if hi <= lo {
		hi = lo + 1
	}
	span := hi - lo
	unit := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	miss := func(step float64) float64 {
		return math.Abs(math.Max(2, math.Ceil(span/step)) - float64(n))
	}
	step := unit
	for _, c := range tickSteps {
		if miss(c*unit) < miss(step) {
			step = c * unit
		}
	}
	first := math.Floor(lo/step) * step
	var ticks []chart.Tick
	for i := 0; i <= n+2; i++ {
		v := first + float64(i)*step
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if v >= hi {
			break
		}
	}
	return ticks
}

// paddedRange widens [xs[0], xs[last]] by a fraction of the sample spacing so the end
// markers are drawn whole.
func paddedRange(xs []float64) (float64, float64) {
	lo, hi := xs[0], xs[len(xs)-1]
	if len(xs) < 2 || hi <= lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) / float64(len(xs)-1) / 10
	return lo - pad, hi + pad
}

// xTicks places one tick on every x sample, the way the array sizes are read.
func xTicks(xs []float64) []chart.Tick {
	ticks := make([]chart.Tick, 0, len(xs))
	for _, x := range xs {
		ticks = append(ticks, chart.Tick{Value: x, Label: formatTick(x)})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
