// Package dataset holds the fixed comparison tables that the charts are drawn from.
//
// Every number here is an example value. Replace the tables in Sample with measured
// timings once they exist; the shape checks in Validate keep edits honest.
package dataset

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrShape marks every data-shape violation reported by Validate.
var ErrShape = errors.New("dataset shape")

// Metric names one of the three timed operations.
type Metric string

const (
	ConstructionTime Metric = "Construction Time"
	QueryTime        Metric = "Query Time"
	UpdateTime       Metric = "Update Time"
)

// Metrics returns the metrics in plotting order.
func Metrics() []Metric { return []Metric{ConstructionTime, QueryTime, UpdateTime} }

// Slug returns a lower_snake form suitable for file names.
func (m Metric) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(m)), " ", "_")
}

// Unit is the unit of every sample value.
const Unit = "nanoseconds"

// Variant is one labeled comparison group.
type Variant struct {
	Label   string           `yaml:"label" json:"label"`
	Samples map[Metric][]int `yaml:"samples" json:"samples"`
}

// Dataset is the shared x-axis plus the variants plotted against it.
type Dataset struct {
	ArraySizes []int     `yaml:"array_sizes" json:"array_sizes"`
	Variants   []Variant `yaml:"variants" json:"variants"`
}

const (
	LabelLazy   = "Lazy Propagation"
	LabelNoLazy = "Without Lazy Propagation"
)

// Sample returns a fresh copy of the example data.
func Sample() Dataset {
	return Dataset{
		ArraySizes: []int{1000, 2000, 3000, 4000, 5000},
		Variants: []Variant{
			{
				Label: LabelLazy,
				Samples: map[Metric][]int{
					ConstructionTime: {100, 120, 130, 140, 150},
					QueryTime:        {50, 55, 60, 65, 70},
					UpdateTime:       {80, 85, 90, 95, 100},
				},
			},
			{
				Label: LabelNoLazy,
				Samples: map[Metric][]int{
					ConstructionTime: {200, 220, 240, 260, 280},
					QueryTime:        {70, 75, 80, 85, 90},
					UpdateTime:       {120, 125, 130, 135, 140},
				},
			},
		},
	}
}

// Validate checks that every sample sequence lines up with the array sizes.
func (d Dataset) Validate() error {
	if len(d.ArraySizes) < 2 {
		return errors.Mark(errors.Newf("need at least 2 array sizes, have %d", len(d.ArraySizes)), ErrShape)
	}
	for i := 1; i < len(d.ArraySizes); i++ {
		if d.ArraySizes[i] <= d.ArraySizes[i-1] {
			return errors.Mark(errors.Newf("array sizes not strictly increasing at index %d: %d <= %d",
				i, d.ArraySizes[i], d.ArraySizes[i-1]), ErrShape)
		}
	}
	if len(d.Variants) == 0 {
		return errors.Mark(errors.New("no variants"), ErrShape)
	}
	seen := map[string]bool{}
	for _, v := range d.Variants {
		if strings.TrimSpace(v.Label) == "" {
			return errors.Mark(errors.New("variant with empty label"), ErrShape)
		}
		if seen[v.Label] {
			return errors.Mark(errors.Newf("duplicate variant label %q", v.Label), ErrShape)
		}
		seen[v.Label] = true
		for _, m := range Metrics() {
			vals, ok := v.Samples[m]
			if !ok {
				return errors.Mark(errors.Newf("variant %q has no %q samples", v.Label, m), ErrShape)
			}
			if len(vals) != len(d.ArraySizes) {
				return errors.Mark(errors.Newf("variant %q %q: %d samples for %d array sizes",
					v.Label, m, len(vals), len(d.ArraySizes)), ErrShape)
			}
			for i, x := range vals {
				if x < 0 {
					return errors.Mark(errors.Newf("variant %q %q: negative sample %d at index %d",
						v.Label, m, x, i), ErrShape)
				}
			}
		}
	}
	return nil
}

// Series returns the float view of one metric: the shared x values, one y slice per
// variant and the variant labels, all in variant order.
func (d Dataset) Series(m Metric) (x []float64, ys [][]float64, labels []string) {
	x = toFloat(d.ArraySizes)
	for _, v := range d.Variants {
		ys = append(ys, toFloat(v.Samples[m]))
		labels = append(labels, v.Label)
	}
	return x, ys, labels
}

func toFloat(in []int) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
