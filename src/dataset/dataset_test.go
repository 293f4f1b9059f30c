package dataset

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_Shape(t *testing.T) {
	d := Sample()
	require.NoError(t, d.Validate())
	require.Equal(t, []int{1000, 2000, 3000, 4000, 5000}, d.ArraySizes)
	require.Len(t, d.Variants, 2)
	assert.Equal(t, LabelLazy, d.Variants[0].Label)
	assert.Equal(t, LabelNoLazy, d.Variants[1].Label)

	for _, v := range d.Variants {
		require.Len(t, v.Samples, 3, "variant %s", v.Label)
		for _, m := range Metrics() {
			vals := v.Samples[m]
			require.Len(t, vals, 5, "%s %s", v.Label, m)
			for _, x := range vals {
				assert.GreaterOrEqual(t, x, 0)
			}
		}
	}
}

func TestSample_ArraySizesStrictlyIncreasing(t *testing.T) {
	sizes := Sample().ArraySizes
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Fatalf("sizes not increasing at %d: %v", i, sizes)
		}
	}
}

func TestSample_FreshCopy(t *testing.T) {
	a := Sample()
	a.ArraySizes[0] = 7
	a.Variants[0].Samples[QueryTime][0] = 9999
	b := Sample()
	assert.Equal(t, 1000, b.ArraySizes[0])
	assert.Equal(t, 50, b.Variants[0].Samples[QueryTime][0])
}

func TestMetricSlug(t *testing.T) {
	assert.Equal(t, "construction_time", ConstructionTime.Slug())
	assert.Equal(t, "query_time", QueryTime.Slug())
	assert.Equal(t, "update_time", UpdateTime.Slug())
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(d *Dataset)
	}{
		{"short sample", func(d *Dataset) { d.Variants[1].Samples[UpdateTime] = []int{1, 2, 3, 4} }},
		{"long sample", func(d *Dataset) { d.Variants[0].Samples[QueryTime] = append(d.Variants[0].Samples[QueryTime], 1) }},
		{"missing metric", func(d *Dataset) { delete(d.Variants[0].Samples, ConstructionTime) }},
		{"negative", func(d *Dataset) { d.Variants[0].Samples[QueryTime][2] = -1 }},
		{"unordered sizes", func(d *Dataset) { d.ArraySizes[3] = 2000 }},
		{"single size", func(d *Dataset) { d.ArraySizes = []int{1000} }},
		{"no variants", func(d *Dataset) { d.Variants = nil }},
		{"empty label", func(d *Dataset) { d.Variants[0].Label = " " }},
		{"duplicate label", func(d *Dataset) { d.Variants[1].Label = d.Variants[0].Label }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Sample()
			tc.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrShape), "error not marked: %v", err)
		})
	}
}

func TestSeries(t *testing.T) {
	x, ys, labels := Sample().Series(UpdateTime)
	assert.Equal(t, []float64{1000, 2000, 3000, 4000, 5000}, x)
	assert.Equal(t, []string{LabelLazy, LabelNoLazy}, labels)
	require.Len(t, ys, 2)
	assert.Equal(t, []float64{80, 85, 90, 95, 100}, ys[0])
	assert.Equal(t, []float64{120, 125, 130, 135, 140}, ys[1])
}
