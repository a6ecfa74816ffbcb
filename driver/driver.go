// Package driver implements the single pipeline entry point:
// frontend -> [pass]* -> backend, owning the in-flight *ir.Circuit the way
// the original's Firrtlator class does (original_source/firrtlator/src/Firrtlator.cpp),
// with phase-boundary logging the way jyane-jnes's CPUBus logs its own
// dispatch boundaries (nes/cpubus.go) via golang/glog.
package driver

import (
	"os"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/firrtlator/firrtlator/backend"
	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/frontend"
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/pass"
)

// Driver orchestrates one compilation run. It owns at most one *ir.Circuit
// at a time; valid is false until a successful Parse, matching spec.md
// §4.7's "driver calls thereafter are undefined until a successful parse" —
// here surfaced as ferr.AssertionError rather than left undefined.
type Driver struct {
	RunID uuid.UUID

	ir    *ir.Circuit
	valid bool
}

// New constructs a Driver with a fresh run identifier.
func New() *Driver {
	return &Driver{RunID: uuid.New()}
}

// IR returns the currently loaded circuit, or nil before any successful
// Parse.
func (d *Driver) IR() *ir.Circuit { return d.ir }

// Parse runs the named frontend over source and stores the resulting IR.
// It returns false (with a non-nil error) on any lexical or syntactic
// failure, per spec.md §4.7's failure semantics; the driver's IR is left
// unloaded (valid stays false) in that case.
func (d *Driver) Parse(source, frontendName string) (bool, error) {
	glog.V(1).Infof("run %s: parsing with frontend %q", d.RunID, frontendName)
	fe, err := frontend.Frontends.Create(frontendName)
	if err != nil {
		return false, err
	}
	c, err := fe.Parse(source)
	if err != nil {
		glog.Infof("run %s: parse failed: %v", d.RunID, err)
		return false, err
	}
	d.ir = c
	d.valid = true
	glog.Infof("run %s: parsed circuit %q", d.RunID, c.ID)
	return true, nil
}

// Pass runs the named pass over the loaded IR in place.
func (d *Driver) Pass(name string) error {
	if !d.valid {
		return ferr.AssertionError("Pass called before a successful Parse")
	}
	glog.V(1).Infof("run %s: running pass %q", d.RunID, name)
	p, err := pass.Passes.Create(name)
	if err != nil {
		return err
	}
	out, err := p.Run(d.ir)
	if err != nil {
		return err
	}
	d.ir = out
	return nil
}

// Generate runs the named backend over the loaded IR, writing to path.
func (d *Driver) Generate(path, backendName string) error {
	if !d.valid {
		return ferr.AssertionError("Generate called before a successful Parse")
	}
	glog.V(1).Infof("run %s: generating %q with backend %q", d.RunID, path, backendName)
	be, err := backend.Backends.Create(backendName)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return ferr.IOError(err, "cannot create output %q", path)
	}
	defer f.Close()
	if err := be.Generate(f, d.ir); err != nil {
		return err
	}
	glog.Infof("run %s: wrote %q", d.RunID, path)
	return nil
}

// GetFrontend resolves a file extension (including the leading dot) to a
// registered frontend name.
func GetFrontend(ext string) (string, error) {
	name, ok := frontend.Frontends.FindByExtension(ext)
	if !ok {
		return "", ferr.RegistryError("no frontend registered for extension %q", ext)
	}
	return name, nil
}

// GetBackend resolves a file extension (including the leading dot) to a
// registered backend name.
func GetBackend(ext string) (string, error) {
	name, ok := backend.Backends.FindByExtension(ext)
	if !ok {
		return "", ferr.RegistryError("no backend registered for extension %q", ext)
	}
	return name, nil
}
