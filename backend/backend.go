// Package backend defines the Backend plugin capability shared by the
// firrtl, dot, and tree emitters, generalizing the original
// implementation's BackendBase/BackendFactory/Backend::Registry trio
// (FirrtlatorBackend.h) into one Go interface.
package backend

import (
	"io"

	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/registry"
)

// Backend emits an *ir.Circuit to w in its own output format.
type Backend interface {
	Name() string
	Description() string
	// Extensions lists the file extensions (leading dot) this backend
	// claims, e.g. ".fir". Backends registers them automatically.
	Extensions() []string
	Generate(w io.Writer, c *ir.Circuit) error
}

// Backends is the process-wide backend registry. Plugins register
// themselves against it from their package's init().
var Backends = registry.New[Backend]()
