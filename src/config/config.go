// Package config loads output settings for lazycharts.
//
// Only how and where charts are written is configurable; the plotted data, titles and
// labels are fixed in package dataset.
package config

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/kartikeyakrishna/ADSA/src/logging"
	"github.com/kartikeyakrishna/ADSA/src/render"
)

// ErrConfig marks invalid or unreadable configuration.
var ErrConfig = errors.New("config")

// Config holds the output settings.
type Config struct {
	OutDir   string   `yaml:"out_dir" json:"out_dir"`
	Formats  []string `yaml:"formats" json:"formats"`
	DPI      float64  `yaml:"dpi" json:"dpi"`
	Footnote bool     `yaml:"footnote" json:"footnote"`
	LogLevel string   `yaml:"log_level" json:"log_level"`
}

// Default returns the settings of a bare invocation.
func Default() Config {
	formats := make([]string, len(render.DefaultFormats))
	for i, f := range render.DefaultFormats {
		formats[i] = string(f)
	}
	return Config{
		OutDir:   "charts",
		Formats:  formats,
		DPI:      render.DefaultDPI,
		Footnote: true,
		LogLevel: "info",
	}
}

// StripJSONC loads a JSONC file (full-line // comments) and returns raw JSON bytes suitable for unmarshalling.
func StripJSONC(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []byte
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		// Inline // is kept: it may be part of a path or URL value.
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// Load reads path over the defaults. Keys missing from the file keep their default.
// The format is picked by extension: .yaml/.yml or .json/.jsonc.
func Load(path string) (Config, error) {
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Mark(errors.Wrapf(err, "read %s", path), ErrConfig)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Mark(errors.Wrapf(err, "parse %s", path), ErrConfig)
		}
	case ".json", ".jsonc":
		b, err := StripJSONC(path)
		if err != nil {
			return cfg, errors.Mark(errors.Wrapf(err, "read %s", path), ErrConfig)
		}
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, errors.Mark(errors.Wrapf(err, "parse %s", path), ErrConfig)
		}
	default:
		return cfg, errors.Mark(errors.Newf("unsupported config extension %q for %s", ext, path), ErrConfig)
	}
	logging.Debugf("loaded config %s: %+v", path, cfg)
	return cfg, cfg.Validate()
}

// Validate rejects settings the writer cannot honor.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return errors.Mark(errors.New("out_dir is empty"), ErrConfig)
	}
	if c.DPI <= 0 {
		return errors.Mark(errors.Newf("dpi must be positive, got %v", c.DPI), ErrConfig)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return errors.Mark(errors.Newf("unknown log_level %q", c.LogLevel), ErrConfig)
	}
	if _, err := c.ParsedFormats(); err != nil {
		return errors.Mark(err, ErrConfig)
	}
	return nil
}

// ParsedFormats returns the configured formats in write order.
func (c Config) ParsedFormats() ([]render.Format, error) {
	return render.ParseFormats(c.Formats)
}
