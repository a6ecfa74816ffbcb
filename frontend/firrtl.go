package frontend

import (
	"github.com/firrtlator/firrtlator/ir"
	"github.com/firrtlator/firrtlator/parser"
	"github.com/firrtlator/firrtlator/registry"
)

// Frontends is the process-wide frontend registry. Plugins register
// themselves against it from their package's init(), the Go analogue of the
// original's static Factory self-registration (FirrtlatorFrontend.h).
var Frontends = registry.New[Frontend]()

// firrtlFrontend is the textual FIRRTL frontend, grounded on
// FirrtlFrontend.cpp: tokenize then parse the whole input as a single
// circuit; any leftover unconsumed input is a parse error.
type firrtlFrontend struct{}

func (firrtlFrontend) Name() string        { return "firrtl" }
func (firrtlFrontend) Description() string { return "FIRRTL textual format" }

func (firrtlFrontend) Parse(src string) (*ir.Circuit, error) {
	return parser.ParseCircuit(src)
}

func init() {
	must(Frontends.Register("firrtl", func() Frontend { return firrtlFrontend{} }))
	must(Frontends.RegisterExtensions("firrtl", ".fir"))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
