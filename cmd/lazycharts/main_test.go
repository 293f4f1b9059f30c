package main

import (
	"bytes"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartikeyakrishna/ADSA/src/config"
	"github.com/kartikeyakrishna/ADSA/src/logging"
	"github.com/kartikeyakrishna/ADSA/src/render"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_DefaultFormats(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--out-dir", dir, "--log-level", "error")
	require.NoError(t, err)

	for _, name := range []string{"construction_time", "query_time", "update_time"} {
		f, err := os.Open(filepath.Join(dir, name+".png"))
		require.NoError(t, err)
		cfg, _, err := image.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.Width)
		assert.Equal(t, 600, cfg.Height)
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "exactly three figures")

	// the terminal display lists each chart once, each with both legend labels
	assert.Equal(t, 3, strings.Count(out, "Comparison\n"))
	assert.Equal(t, 3, strings.Count(out, "Array Size: "))
	assert.Contains(t, out, "Lazy Propagation")
	assert.Contains(t, out, "Without Lazy Propagation")
}

func TestRoot_TerminalOnlyToPipe(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unused")
	out, err := execute(t, "--out-dir", dir, "--format", "term", "--log-level", "error")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, 3, strings.Count(out, "Legend: Lazy Propagation, Without Lazy Propagation"))
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestRoot_RunTwiceSameCharts(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	outA, err := execute(t, "--out-dir", a, "--format", "svg,term", "--log-level", "error")
	require.NoError(t, err)
	outB, err := execute(t, "--out-dir", b, "--format", "svg", "--format", "term", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
	for _, name := range []string{"construction_time.svg", "query_time.svg", "update_time.svg"} {
		x, err := os.ReadFile(filepath.Join(a, name))
		require.NoError(t, err)
		y, err := os.ReadFile(filepath.Join(b, name))
		require.NoError(t, err)
		assert.Equal(t, x, y, name)
	}
}

func TestRoot_ConfigFileAndFlagOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lazycharts.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("out_dir: "+filepath.Join(dir, "from-config")+"\nformats: [html]\nlog_level: error\n"), 0o644))

	_, err := execute(t, "--config", cfgPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "from-config", render.PageFileName))
	require.NoError(t, err)

	override := filepath.Join(dir, "from-flag")
	_, err = execute(t, "--config", cfgPath, "--out-dir", override, "--format", "pdf")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(override, "query_time.pdf"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(override, render.PageFileName))
	assert.True(t, os.IsNotExist(err), "flag formats replace config formats")
}

func TestRoot_LogLevelAppliesToConfigLoading(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "lazycharts.jsonc")
	require.NoError(t, os.WriteFile(cfgPath, []byte("// terminal only\n{\"formats\": [\"term\"]}\n"), 0o644))

	var logs bytes.Buffer
	logging.SetOutput(&logs)
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.SetLogLevel("info")
	})

	_, err := execute(t, "--config", cfgPath, "--log-level", "debug")
	require.NoError(t, err)
	if !strings.Contains(logs.String(), "loaded config "+cfgPath) {
		t.Fatalf("debug level not active while loading config, logs:\n%s", logs.String())
	}

	logs.Reset()
	_, err = execute(t, "--config", cfgPath, "--log-level", "warn")
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "loaded config")
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "--out-dir", t.TempDir(), "--format", "gif")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfig))

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)

	_, err = execute(t, "extra-arg")
	require.Error(t, err)
}

func TestValidateCmd(t *testing.T) {
	out, err := execute(t, "validate")
	require.NoError(t, err)
	assert.Equal(t, "ok: 2 variants x 3 metrics x 5 array sizes\n", out)
}

func TestDataCmd(t *testing.T) {
	out, err := execute(t, "data")
	require.NoError(t, err)
	assert.Contains(t, out, "array_sizes:")
	assert.Contains(t, out, "- 5000")
	assert.Contains(t, out, "label: Lazy Propagation")
	assert.Contains(t, out, "label: Without Lazy Propagation")
	assert.Contains(t, out, "Update Time:")
}
