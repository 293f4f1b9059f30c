package render

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kartikeyakrishna/ADSA/src/figure"
)

// PageTitle is the browser title of the html page.
const PageTitle = "Lazy Propagation Comparison"

// PageHTMLRenderer writes every figure into one go-echarts page.
type PageHTMLRenderer struct {
	DPI float64
}

func (r PageHTMLRenderer) line(fig figure.Figure) (*charts.Line, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	w, h := ComputeChartDimensions(fig.WidthIn, fig.HeightIn, r.DPI)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:   fmt.Sprintf("%dpx", w),
			Height:  fmt.Sprintf("%dpx", h),
			ChartID: fig.Name,
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(fig.Legend), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      fig.XLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(fig.Grid)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      fig.YLabel,
			SplitLine: &opts.SplitLine{Show: opts.Bool(fig.Grid)},
		}),
	)
	xs := make([]string, len(fig.X))
	for i, x := range fig.X {
		xs[i] = formatTick(x)
	}
	line.SetXAxis(xs)
	for _, s := range fig.Series {
		data := make([]opts.LineData, len(s.Y))
		for i, y := range s.Y {
			data[i] = opts.LineData{Value: y}
		}
		line.AddSeries(s.Label, data, charts.WithLineChartOpts(opts.LineChart{
			ShowSymbol: opts.Bool(fig.Markers),
			Symbol:     "circle",
		}))
	}
	return line, nil
}

// RenderPage implements PageRenderer.
func (r PageHTMLRenderer) RenderPage(w io.Writer, figs []figure.Figure) error {
	if len(figs) == 0 {
		return errors.New("html page: no figures")
	}
	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	for _, f := range figs {
		line, err := r.line(f)
		if err != nil {
			return err
		}
		page.AddCharts(line)
	}
	return errors.Wrap(page.Render(w), "render html page")
}
