package driver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/driver"
	"github.com/firrtlator/firrtlator/ferr"
	_ "github.com/firrtlator/firrtlator/backend/dot"
	_ "github.com/firrtlator/firrtlator/backend/firrtl"
	_ "github.com/firrtlator/firrtlator/backend/tree"
	_ "github.com/firrtlator/firrtlator/frontend"
	_ "github.com/firrtlator/firrtlator/pass/stripinfo"
)

const sampleCircuit = "circuit top :\n  module top :\n    input a : UInt<1> @[x 1:1]\n    output b : UInt<1>\n    b <= a\n"

func TestDriverParsePassGenerateRoundTrip(t *testing.T) {
	d := driver.New()
	ok, err := d.Parse(sampleCircuit, "firrtl")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, d.IR().Modules[0].Ports[0].Info)

	require.NoError(t, d.Pass("stripinfo"))
	require.Empty(t, d.IR().Modules[0].Ports[0].Info)

	out := filepath.Join(t.TempDir(), "top.fir")
	require.NoError(t, d.Generate(out, "FIRRTL"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "circuit top :")
}

func TestDriverMethodsBeforeParseAreAssertionErrors(t *testing.T) {
	d := driver.New()
	err := d.Pass("stripinfo")
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Assertion))
	err = d.Generate(filepath.Join(t.TempDir(), "out.fir"), "FIRRTL")
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Assertion))
}

func TestDriverParseFailureLeavesDriverInvalid(t *testing.T) {
	d := driver.New()
	ok, err := d.Parse("circuit :\n", "firrtl")
	require.Error(t, err)
	require.False(t, ok)
	require.Error(t, d.Pass("stripinfo"))
}

func TestGetFrontendAndBackendByExtension(t *testing.T) {
	name, err := driver.GetFrontend(".fir")
	require.NoError(t, err)
	require.Equal(t, "firrtl", name)

	_, err = driver.GetBackend(".nope")
	require.Error(t, err)
}

func TestManifestLoadAndRun(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "top.fir")
	outputPath := filepath.Join(dir, "top.tree")
	require.NoError(t, os.WriteFile(inputPath, []byte(sampleCircuit), 0o644))

	manifestYAML := "- input: " + inputPath + "\n" +
		"  passes: [stripinfo]\n" +
		"  output: " + outputPath + "\n"
	manifestPath := filepath.Join(dir, "manifest.yaml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestYAML), 0o644))

	manifests, err := driver.LoadManifests(manifestPath)
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	require.Equal(t, inputPath, manifests[0].Input)
	require.Equal(t, []string{"stripinfo"}, manifests[0].Passes)

	require.NoError(t, driver.Run(manifests[0], "firrtl"))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "(circuit)")
}

func TestLoadManifestsMissingFileIsIOError(t *testing.T) {
	_, err := driver.LoadManifests(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.IO))
}
