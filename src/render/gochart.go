package render

import (
	"bytes"
	"image/png"
	"io"

	"github.com/cockroachdb/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/kartikeyakrishna/ADSA/src/figure"
)

// seriesColors follows the usual blue-then-orange pairing so the two variants read apart.
var seriesColors = []drawing.Color{chart.ColorBlue, chart.ColorOrange, chart.ColorGreen, chart.ColorRed}

func seriesColor(i int) drawing.Color { return seriesColors[i%len(seriesColors)] }

// lineStyle returns a connected line with a dot on every sample when markers are on.
func lineStyle(col drawing.Color, markers bool) chart.Style {
	st := chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
	if markers {
		st.DotWidth = 4
		st.DotColor = col
	}
	return st
}

func gridStyle(on bool) chart.Style {
	if !on {
		return chart.Style{Hidden: true}
	}
	return chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1}
}

// ChartRenderer draws figures with go-chart as PNG or SVG.
type ChartRenderer struct {
	Format   Format // FormatPNG or FormatSVG
	DPI      float64
	Footnote bool // PNG only
}

// Chart builds the go-chart description of fig. Exposed for tests.
func (r ChartRenderer) Chart(fig figure.Figure) (chart.Chart, error) {
	if err := fig.Validate(); err != nil {
		return chart.Chart{}, err
	}
	series := make([]chart.Series, 0, len(fig.Series))
	for i, s := range fig.Series {
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: fig.X,
			YValues: s.Y,
			Style:   lineStyle(seriesColor(i), fig.Markers),
		})
	}
	minY, maxY := fig.YRange()
	yMin, yMax := niceAxisBounds(minY, maxY)
	minX, maxX := paddedRange(fig.X)

	w, h := ComputeChartDimensions(fig.WidthIn, fig.HeightIn, r.DPI)
	padBottom := 16
	if r.Footnote && r.Format == FormatPNG {
		padBottom += 18
	}
	ch := chart.Chart{
		Title:      fig.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           fig.XLabel,
			Ticks:          xTicks(fig.X),
			Range:          &chart.ContinuousRange{Min: minX, Max: maxX},
			GridMajorStyle: gridStyle(fig.Grid),
			GridMinorStyle: gridStyle(fig.Grid),
		},
		YAxis: chart.YAxis{
			Name:           fig.YLabel,
			Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:          niceTicks(yMin, yMax, yTickCount(h)),
			GridMajorStyle: gridStyle(fig.Grid),
			GridMinorStyle: gridStyle(fig.Grid),
		},
		Series: series,
	}
	if fig.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch, nil
}

// Render implements FigureRenderer.
func (r ChartRenderer) Render(w io.Writer, fig figure.Figure) error {
	ch, err := r.Chart(fig)
	if err != nil {
		return err
	}
	switch r.Format {
	case FormatSVG:
		return errors.Wrapf(ch.Render(chart.SVG, w), "svg %s", fig.Name)
	case FormatPNG:
		var buf bytes.Buffer
		if err := ch.Render(chart.PNG, &buf); err != nil {
			return errors.Wrapf(err, "png %s", fig.Name)
		}
		if !r.Footnote {
			_, err := w.Write(buf.Bytes())
			return err
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return errors.Wrapf(err, "decode png %s", fig.Name)
		}
		return errors.Wrapf(png.Encode(w, drawFootnote(img, FootnoteText)), "encode png %s", fig.Name)
	}
	return errors.Mark(errors.Newf("go-chart cannot write %q", r.Format), ErrUnknownFormat)
}
