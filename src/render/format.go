// Package render draws figures with the available chart backends and writes the results.
//
// Backends:
//   - go-chart: png, svg (one file per figure)
//   - gonum/plot: pdf, eps (one file per figure)
//   - go-echarts: html (one page holding every figure)
//   - asciigraph: term (all figures printed to the terminal, always last)
package render

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/kartikeyakrishna/ADSA/src/figure"
)

// ErrUnknownFormat marks format names no backend handles.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format name.
type Format string

const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
	FormatHTML Format = "html"
	FormatTerm Format = "term"
)

// AllFormats lists every supported format in write order.
var AllFormats = []Format{FormatPNG, FormatSVG, FormatPDF, FormatEPS, FormatHTML, FormatTerm}

// DefaultFormats is what a bare invocation produces.
var DefaultFormats = []Format{FormatPNG, FormatTerm}

// PageFileName is the file the html backend writes.
const PageFileName = "charts.html"

// FigureRenderer produces one output per figure.
type FigureRenderer interface {
	Render(w io.Writer, fig figure.Figure) error
}

// PageRenderer produces one output holding every figure.
type PageRenderer interface {
	RenderPage(w io.Writer, figs []figure.Figure) error
}

// ParseFormats accepts names (or comma separated lists of names), case-insensitively,
// drops duplicates and returns them in AllFormats order.
func ParseFormats(names []string) ([]Format, error) {
	want := map[Format]bool{}
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			f := Format(part)
			if !f.Known() {
				return nil, errors.Mark(errors.Newf("format %q (want one of %s)", part, joinFormats(AllFormats)), ErrUnknownFormat)
			}
			want[f] = true
		}
	}
	if len(want) == 0 {
		return nil, errors.Mark(errors.New("no output format selected"), ErrUnknownFormat)
	}
	var out []Format
	for _, f := range AllFormats {
		if want[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

// Known reports whether a backend handles f.
func (f Format) Known() bool {
	for _, k := range AllFormats {
		if f == k {
			return true
		}
	}
	return false
}

// PerFigure reports whether f writes one file per figure.
func (f Format) PerFigure() bool {
	switch f {
	case FormatPNG, FormatSVG, FormatPDF, FormatEPS:
		return true
	}
	return false
}

func joinFormats(fs []Format) string {
	s := make([]string, len(fs))
	for i, f := range fs {
		s[i] = string(f)
	}
	return strings.Join(s, ", ")
}
