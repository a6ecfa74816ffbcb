package driver

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/firrtlator/firrtlator/ferr"
)

// Manifest describes one batch compilation entry: read Input, run Passes in
// order, write Output. A supplemental feature in the spirit of the
// original's Firrtlator.cpp command loop, not modeled textually there.
type Manifest struct {
	Input  string   `yaml:"input"`
	Passes []string `yaml:"passes"`
	Output string   `yaml:"output"`
}

// LoadManifests reads a YAML document containing a list of Manifest entries.
func LoadManifests(path string) ([]Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferr.IOError(err, "cannot read manifest %q", path)
	}
	var manifests []Manifest
	if err := yaml.Unmarshal(data, &manifests); err != nil {
		return nil, ferr.IOError(err, "cannot parse manifest %q", path)
	}
	return manifests, nil
}

// Run executes a single manifest entry end to end: parse Input with the
// frontend named by frontendName, run each named pass in order, then
// generate Output with the backend matched by its extension.
func Run(m Manifest, frontendName string) error {
	d := New()
	src, err := os.ReadFile(m.Input)
	if err != nil {
		return ferr.IOError(err, "cannot read input %q", m.Input)
	}
	if ok, err := d.Parse(string(src), frontendName); !ok {
		return err
	}
	for _, p := range m.Passes {
		if err := d.Pass(p); err != nil {
			return err
		}
	}
	ext := extOf(m.Output)
	backendName, err := GetBackend(ext)
	if err != nil {
		return err
	}
	return d.Generate(m.Output, backendName)
}

func extOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i:]
		}
		if path[i] == '/' {
			break
		}
	}
	return ""
}
