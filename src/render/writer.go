package render

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/kartikeyakrishna/ADSA/src/figure"
	"github.com/kartikeyakrishna/ADSA/src/logging"
)

// Writer renders figures in every configured format. Files go under OutDir; the
// terminal rendering goes to Stdout after all files are written.
type Writer struct {
	OutDir   string
	Formats  []Format
	Stdout   io.Writer
	DPI      float64
	Footnote bool
	Terminal TerminalRenderer
}

func (wr *Writer) figureRenderer(f Format) (FigureRenderer, error) {
	switch f {
	case FormatPNG, FormatSVG:
		return ChartRenderer{Format: f, DPI: wr.DPI, Footnote: wr.Footnote}, nil
	case FormatPDF, FormatEPS:
		return PlotRenderer{Format: f}, nil
	}
	return nil, errors.Mark(errors.Newf("no per-figure backend for %q", f), ErrUnknownFormat)
}

// WriteAll renders figs sequentially and returns the written file paths in order:
// per-figure formats (figure order within format order), then the html page.
func (wr *Writer) WriteAll(figs []figure.Figure) ([]string, error) {
	defer logging.TimeTrack(time.Now(), "write all figures")
	if len(figs) == 0 {
		return nil, errors.New("no figures to write")
	}
	for _, f := range wr.Formats {
		if !f.Known() {
			return nil, errors.Mark(errors.Newf("format %q", f), ErrUnknownFormat)
		}
	}
	var written []string
	needDir := false
	for _, f := range wr.Formats {
		if f != FormatTerm {
			needDir = true
		}
	}
	if needDir {
		if err := os.MkdirAll(wr.OutDir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create out dir")
		}
	}

	for _, f := range wr.Formats {
		if !f.PerFigure() {
			continue
		}
		r, err := wr.figureRenderer(f)
		if err != nil {
			return written, err
		}
		for _, fig := range figs {
			var buf bytes.Buffer
			if err := r.Render(&buf, fig); err != nil {
				return written, errors.Wrapf(err, "render %s.%s", fig.Name, f)
			}
			outPath := filepath.Join(wr.OutDir, fig.Name+"."+string(f))
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return written, errors.Wrapf(err, "write %s", outPath)
			}
			logging.Infof("wrote %s (%d bytes)", outPath, buf.Len())
			written = append(written, outPath)
		}
	}

	if wr.has(FormatHTML) {
		var buf bytes.Buffer
		if err := (PageHTMLRenderer{DPI: wr.DPI}).RenderPage(&buf, figs); err != nil {
			return written, err
		}
		outPath := filepath.Join(wr.OutDir, PageFileName)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return written, errors.Wrapf(err, "write %s", outPath)
		}
		logging.Infof("wrote %s (%d figures)", outPath, len(figs))
		written = append(written, outPath)
	}

	if wr.has(FormatTerm) {
		out := wr.Stdout
		if out == nil {
			out = os.Stdout
		}
		if err := wr.Terminal.RenderPage(out, figs); err != nil {
			return written, err
		}
	}
	return written, nil
}

func (wr *Writer) has(f Format) bool {
	for _, x := range wr.Formats {
		if x == f {
			return true
		}
	}
	return false
}
