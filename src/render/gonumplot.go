package render

import (
	"io"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgeps" // registers eps
	_ "gonum.org/v1/plot/vg/vgpdf" // registers pdf

	"github.com/kartikeyakrishna/ADSA/src/figure"
)

// PlotRenderer draws figures with gonum/plot as PDF or EPS.
type PlotRenderer struct {
	Format Format // FormatPDF or FormatEPS
}

// Plot builds the gonum plot of fig. Exposed for tests.
func (r PlotRenderer) Plot(fig figure.Figure) (*plot.Plot, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = fig.Title
	p.X.Label.Text = fig.XLabel
	p.Y.Label.Text = fig.YLabel
	if fig.Grid {
		p.Add(plotter.NewGrid())
	}

	ticks := make(plot.ConstantTicks, 0, len(fig.X))
	for _, x := range fig.X {
		ticks = append(ticks, plot.Tick{Value: x, Label: formatTick(x)})
	}
	p.X.Tick.Marker = ticks
	p.X.Min, p.X.Max = paddedRange(fig.X)
	yMin, yMax := niceAxisBounds(fig.YRange())
	p.Y.Min, p.Y.Max = yMin, yMax

	var args []interface{}
	for _, s := range fig.Series {
		pts := make(plotter.XYs, len(fig.X))
		for i := range fig.X {
			pts[i].X = fig.X[i]
			pts[i].Y = s.Y[i]
		}
		if fig.Legend {
			args = append(args, s.Label)
		}
		args = append(args, pts)
	}
	if fig.Markers {
		if err := plotutil.AddLinePoints(p, args...); err != nil {
			return nil, errors.Wrapf(err, "plot %s", fig.Name)
		}
	} else if err := plotutil.AddLines(p, args...); err != nil {
		return nil, errors.Wrapf(err, "plot %s", fig.Name)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// Render implements FigureRenderer.
func (r PlotRenderer) Render(w io.Writer, fig figure.Figure) error {
	if r.Format != FormatPDF && r.Format != FormatEPS {
		return errors.Mark(errors.Newf("gonum/plot cannot write %q", r.Format), ErrUnknownFormat)
	}
	p, err := r.Plot(fig)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(fig.WidthIn)*vg.Inch, vg.Length(fig.HeightIn)*vg.Inch, string(r.Format))
	if err != nil {
		return errors.Wrapf(err, "%s %s", r.Format, fig.Name)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrapf(err, "write %s %s", r.Format, fig.Name)
}
