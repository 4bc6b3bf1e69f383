package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paintmix/catalog"
	"github.com/katalvlaran/paintmix/catalogfile"
	"github.com/katalvlaran/paintmix/color"
	"github.com/katalvlaran/paintmix/mix"
)

const testCatalog = `paints:
  - name: Red
    hex: "#ff0000"
    density: 1
  - name: Blue
    rgb: [0, 0, 255]
    density: 3
  - name: Green
    hex: green
`

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "paints.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

// run executes the root command and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- match ---

func TestMatch_Text(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "match", "--catalog", path, "--target", "#800080", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "target rgb(128, 0, 128) #800080")
	assert.Contains(t, out, "1. 50.0% Red + 50.0% Blue → #800080 (err 0.71)")
}

func TestMatch_JSON(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "match", "-c", path, "-t", "255,0,0", "--json", "--strategy", "grid", "--step", "0.1")
	require.NoError(t, err)

	var got matchJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "#ff0000", got.Target.Hex)
	require.NotEmpty(t, got.Recipes)
	require.Equal(t, "Red", got.Recipes[0].Components[0].Paint)
	require.Equal(t, 100.0, got.Recipes[0].Components[0].Percentage)
	require.Zero(t, got.Recipes[0].Error)
	require.Positive(t, got.Evaluated)
}

func TestMatch_DensityMode(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "match", "-c", path, "-t", "#3f00bf", "--mode", "density", "-k", "2", "-n", "1")
	require.NoError(t, err)
	// 1:3 by density is exactly (63.75, 0, 191.25).
	assert.Contains(t, out, "25.0% Red + 75.0% Blue")
}

func TestMatch_ThresholdNoRecipe(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "match", "-c", path, "-t", "#808080", "--threshold", "0.5")
	require.ErrorIs(t, err, mix.ErrNoValidRecipe)
	assert.Contains(t, out, "no recipe within the error threshold")
}

func TestMatch_Errors(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	empty := writeCatalog(t, "paints: []\n")

	_, _, err := run(t, "match", "-c", empty, "-t", "red")
	require.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	_, _, err = run(t, "match", "-c", path, "-t", "not-a-color")
	require.ErrorIs(t, err, color.ErrUnknownColor)

	_, _, err = run(t, "match", "-c", path, "-t", "red", "--strategy", "simplex")
	require.Error(t, err)

	_, _, err = run(t, "match", "-c", path, "-t", "red", "--mode", "fast")
	require.Error(t, err)

	_, _, err = run(t, "match", "-c", path, "-t", "red", "--step", "0")
	require.ErrorIs(t, err, mix.ErrInvalidOptions)

	_, _, err = run(t, "match", "-c", path, "-t", "red", "--strategy", "grid", "--max-evals", "5")
	require.ErrorIs(t, err, mix.ErrSearchTooLarge)

	_, _, err = run(t, "match", "-c", filepath.Join(t.TempDir(), "missing.yaml"), "-t", "red")
	var op *catalogfile.OpError
	require.ErrorAs(t, err, &op)

	_, _, err = run(t, "match", "-c", path)
	require.Error(t, err) // --target is required
}

func TestMatch_DebugLogsJSON(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	_, errOut, err := run(t, "--debug", "--log-json", "match", "-c", path, "-t", "#800080")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"catalog.loaded"`)
	assert.Contains(t, errOut, `"msg":"mix.solve"`)
	assert.Contains(t, errOut, `"msg":"match.done"`)
}

func TestExecute_ReportsErrorOnce(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--debug", "match", "-c", path, "-t", "red", "--strategy", "grid", "--max-evals", "5"})
	require.Equal(t, 1, execute(cmd))
	require.Equal(t, 1, strings.Count(errOut.String(), mix.ErrSearchTooLarge.Error()), errOut.String())
	assert.Contains(t, errOut.String(), "Error: ")
}

func TestExecute_NoValidRecipeExitsQuietly(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"match", "-c", path, "-t", "#808080", "--threshold", "0.5"})
	require.Equal(t, 1, execute(cmd))
	assert.Contains(t, out.String(), "no recipe within the error threshold")
	assert.NotContains(t, errOut.String(), "Error:")
	assert.NotContains(t, errOut.String(), mix.ErrNoValidRecipe.Error())
}

// --- blend ---

func TestBlend_Text(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "blend", "-c", path, "Red=2", "Blue=1")
	require.NoError(t, err)
	assert.Contains(t, out, " 66.7% Red\n")
	assert.Contains(t, out, " 33.3% Blue\n")
	assert.Contains(t, out, "→ #aa0055")
}

func TestBlend_WithTargetJSON(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "blend", "-c", path, "Red=1", "Blue=1", "--target", "#800080", "--json")
	require.NoError(t, err)

	var r mix.Recipe
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Equal(t, "#800080", r.MixedHex)
	require.InDelta(t, 0.7071, r.Error, 1e-4)
	require.Len(t, r.Components, 2)
}

func TestBlend_Errors(t *testing.T) {
	path := writeCatalog(t, testCatalog)

	_, _, err := run(t, "blend", "-c", path, "Purple=1")
	require.ErrorIs(t, err, catalog.ErrUnknownPaint)

	_, _, err = run(t, "blend", "-c", path, "Red")
	require.Error(t, err)

	_, _, err = run(t, "blend", "-c", path, "Red=lots")
	require.Error(t, err)

	_, _, err = run(t, "blend", "-c", path, "Red=0", "Blue=0")
	require.ErrorIs(t, err, mix.ErrZeroRatioSum)

	_, _, err = run(t, "blend", "-c", path, "Red=-1")
	require.ErrorIs(t, err, mix.ErrNegativeRatio)

	_, _, err = run(t, "blend", "-c", path)
	require.Error(t, err) // at least one NAME=PARTS
}

// --- catalog ---

func TestCatalog_Text(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "catalog", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "#ff0000")
	assert.Contains(t, out, "rgb(0, 128, 0)")
	assert.Contains(t, out, "Blue")
}

func TestCatalog_JSON(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "catalog", "-c", path, "--json")
	require.NoError(t, err)

	var got []paintJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, []paintJSON{
		{Name: "Red", RGB: [3]uint8{255, 0, 0}, Hex: "#ff0000", Density: 1},
		{Name: "Blue", RGB: [3]uint8{0, 0, 255}, Hex: "#0000ff", Density: 3},
		{Name: "Green", RGB: [3]uint8{0, 128, 0}, Hex: "#008000"},
	}, got)
}

// --- helpers ---

func TestParseStrategyAndMode(t *testing.T) {
	s, err := parseStrategy("grid")
	require.NoError(t, err)
	require.Equal(t, mix.GridSearch, s)
	s, err = parseStrategy("lsq")
	require.NoError(t, err)
	require.Equal(t, mix.LeastSquares, s)

	m, err := parseMode("density")
	require.NoError(t, err)
	require.Equal(t, mix.DensityWeighted, m)
	_, err = parseMode("DENSITY")
	require.Error(t, err)
}

func TestDefaultCatalogEnv(t *testing.T) {
	t.Setenv("PAINTMIX_CATALOG", "/tmp/x.yaml")
	require.Equal(t, "/tmp/x.yaml", defaultCatalog())
}
