// Package pass defines the transformation-pass plugin capability,
// generalizing the original implementation's Pass base class
// (FirrtlatorPass.h) the same way frontend/backend generalize their own
// base classes: one small interface plus a registry.
package pass

import (
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/registry"
)

// Pass transforms an *ir.Circuit, returning the (possibly same) circuit by
// reference. Passes have no file extensions, unlike frontends and backends.
type Pass interface {
	Name() string
	Description() string
	Run(c *ir.Circuit) (*ir.Circuit, error)
}

// Passes is the process-wide pass registry. Plugins register themselves
// against it from their package's init().
var Passes = registry.New[Pass]()
