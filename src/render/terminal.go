package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"

	"github.com/kartikeyakrishna/ADSA/src/figure"
)

var terminalColors = []asciigraph.AnsiColor{asciigraph.Blue, asciigraph.DarkOrange, asciigraph.Green, asciigraph.Red}

// TerminalRenderer prints figures as ASCII plots. It is the display step of a run.
type TerminalRenderer struct {
	Width  int  // plot columns, 0 picks a default
	Height int  // plot rows, 0 picks a default
	Color  bool // ANSI colors; only when writing to a terminal
}

// Render implements FigureRenderer.
func (r TerminalRenderer) Render(w io.Writer, fig figure.Figure) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	width, height := r.Width, r.Height
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 12
	}
	data := make([][]float64, 0, len(fig.Series))
	for _, s := range fig.Series {
		data = append(data, s.Y)
	}
	lo, hi := niceAxisBounds(fig.YRange())
	opts := []asciigraph.Option{
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.LowerBound(lo),
		asciigraph.UpperBound(hi),
		asciigraph.Precision(0),
		asciigraph.Caption(fig.YLabel),
	}
	// asciigraph legends need SeriesColors and always emit ANSI codes.
	if r.Color {
		cols := make([]asciigraph.AnsiColor, len(fig.Series))
		for i := range cols {
			cols[i] = terminalColors[i%len(terminalColors)]
		}
		opts = append(opts, asciigraph.SeriesColors(cols...))
		if fig.Legend {
			opts = append(opts, asciigraph.SeriesLegends(fig.LegendLabels()...))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", fig.Title)
	b.WriteString(asciigraph.PlotMany(data, opts...))
	b.WriteString("\n")
	labels := make([]string, len(fig.X))
	for i, x := range fig.X {
		labels[i] = formatTick(x)
	}
	fmt.Fprintf(&b, "%s: %s\n", fig.XLabel, strings.Join(labels, " "))
	if fig.Legend && !r.Color {
		fmt.Fprintf(&b, "Legend: %s\n", strings.Join(fig.LegendLabels(), ", "))
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return errors.Wrapf(err, "print %s", fig.Name)
}

// RenderPage implements PageRenderer by printing every figure in order.
func (r TerminalRenderer) RenderPage(w io.Writer, figs []figure.Figure) error {
	for _, f := range figs {
		if err := r.Render(w, f); err != nil {
			return err
		}
	}
	return nil
}
