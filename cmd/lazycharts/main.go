// lazycharts renders the lazy propagation comparison charts.
//
// A bare run writes construction_time.png, query_time.png and update_time.png under
// ./charts and then prints all three charts to the terminal. The plotted numbers are
// example values kept in src/dataset.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kartikeyakrishna/ADSA/src/config"
	"github.com/kartikeyakrishna/ADSA/src/dataset"
	"github.com/kartikeyakrishna/ADSA/src/figure"
	"github.com/kartikeyakrishna/ADSA/src/logging"
	"github.com/kartikeyakrishna/ADSA/src/render"
)

type rootOptions struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{cfg: config.Default()}
	cmd := &cobra.Command{
		Use:           "lazycharts",
		Short:         "Render construction, query and update time charts for lazy vs. non-lazy propagation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "Optional YAML or JSONC file with output settings")
	f.StringVar(&o.cfg.OutDir, "out-dir", o.cfg.OutDir, "Directory for chart files")
	f.StringSliceVar(&o.cfg.Formats, "format", o.cfg.Formats, "Output formats (png|svg|pdf|eps|html|term), repeatable or comma separated")
	f.Float64Var(&o.cfg.DPI, "dpi", o.cfg.DPI, "Pixels per inch for raster and html output (figures are 10x6 in)")
	f.BoolVar(&o.cfg.Footnote, "footnote", o.cfg.Footnote, "Stamp the example-data note onto PNG charts")
	f.StringVar(&o.cfg.LogLevel, "log-level", o.cfg.LogLevel, "Log level (debug|info|warn|error)")

	cmd.AddCommand(newValidateCmd(), newDataCmd())
	return cmd
}

// resolve layers defaults, then the config file, then flags the user actually set.
func (o *rootOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	// flag level applies while the config file loads
	logging.SetLogLevel(o.cfg.LogLevel)
	if o.configPath == "" {
		return o.cfg, o.cfg.Validate()
	}
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("out-dir") {
		cfg.OutDir = o.cfg.OutDir
	}
	if f.Changed("format") {
		cfg.Formats = o.cfg.Formats
	}
	if f.Changed("dpi") {
		cfg.DPI = o.cfg.DPI
	}
	if f.Changed("footnote") {
		cfg.Footnote = o.cfg.Footnote
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.cfg.LogLevel
	}
	logging.SetLogLevel(cfg.LogLevel)
	return cfg, cfg.Validate()
}

func run(cfg config.Config, out io.Writer) error {
	logging.SetLogLevel(cfg.LogLevel)
	defer logging.TimeTrack(time.Now(), "lazycharts")

	formats, err := cfg.ParsedFormats()
	if err != nil {
		return err
	}
	figs, err := figure.Build(dataset.Sample())
	if err != nil {
		return err
	}
	logging.Debugf("built %d figures, formats=%v out=%s", len(figs), formats, cfg.OutDir)

	wr := &render.Writer{
		OutDir:   cfg.OutDir,
		Formats:  formats,
		Stdout:   out,
		DPI:      cfg.DPI,
		Footnote: cfg.Footnote,
		Terminal: render.TerminalRenderer{Color: isTerminal(out)},
	}
	paths, err := wr.WriteAll(figs)
	if err != nil {
		return err
	}
	logging.Infof("rendered %d figures into %d files", len(figs), len(paths))
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every sample sequence matches the array sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds := dataset.Sample()
			if err := ds.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %d variants x %d metrics x %d array sizes\n",
				len(ds.Variants), len(dataset.Metrics()), len(ds.ArraySizes))
			return nil
		},
	}
}

func newDataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Print the plotted example data as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(dataset.Sample()); err != nil {
				return errors.Wrap(err, "encode dataset")
			}
			return enc.Close()
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
