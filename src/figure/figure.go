// Package figure turns the comparison dataset into backend-neutral chart descriptions.
package figure

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/kartikeyakrishna/ADSA/src/dataset"
)

// Default figure size in inches.
const (
	DefaultWidthIn  = 10.0
	DefaultHeightIn = 6.0
)

// Series is one labeled line.
type Series struct {
	Label string
	Y     []float64
}

// Figure describes a single chart. X is shared by every series.
type Figure struct {
	Name     string // file-name stem
	Title    string
	XLabel   string
	YLabel   string
	X        []float64
	Series   []Series
	Legend   bool
	Grid     bool
	Markers  bool
	WidthIn  float64
	HeightIn float64
}

// Build validates ds and returns one figure per metric, in metric order.
func Build(ds dataset.Dataset) ([]Figure, error) {
	if err := ds.Validate(); err != nil {
		return nil, errors.Wrap(err, "build figures")
	}
	var figs []Figure
	for _, m := range dataset.Metrics() {
		x, ys, labels := ds.Series(m)
		f := Figure{
			Name:     m.Slug(),
			Title:    fmt.Sprintf("%s Comparison", m),
			XLabel:   "Array Size",
			YLabel:   fmt.Sprintf("%s (%s)", m, dataset.Unit),
			X:        x,
			Legend:   true,
			Grid:     true,
			Markers:  true,
			WidthIn:  DefaultWidthIn,
			HeightIn: DefaultHeightIn,
		}
		for i := range ys {
			f.Series = append(f.Series, Series{Label: labels[i], Y: ys[i]})
		}
		figs = append(figs, f)
	}
	return figs, nil
}

// Validate rejects figures a backend could only mis-plot.
func (f Figure) Validate() error {
	if len(f.X) == 0 {
		return errors.Newf("figure %q: no x values", f.Name)
	}
	if len(f.Series) == 0 {
		return errors.Newf("figure %q: no series", f.Name)
	}
	for _, s := range f.Series {
		if len(s.Y) != len(f.X) {
			return errors.Newf("figure %q: series %q has %d values for %d x values",
				f.Name, s.Label, len(s.Y), len(f.X))
		}
	}
	return nil
}

// LegendLabels returns the series labels in drawing order.
func (f Figure) LegendLabels() []string {
	out := make([]string, 0, len(f.Series))
	for _, s := range f.Series {
		out = append(out, s.Label)
	}
	return out
}

// YRange returns the min and max over all series, NaN values skipped.
func (f Figure) YRange() (float64, float64) {
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range f.Series {
		for _, v := range s.Y {
			if math.IsNaN(v) {
				continue
			}
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if minY > maxY {
		return 0, 0
	}
	return minY, maxY
}
