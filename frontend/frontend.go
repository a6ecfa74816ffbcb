// Package frontend defines the Frontend plugin capability and the registry
// of available frontends, generalizing the original implementation's
// FrontendBase / FrontendFactory / Frontend::Registry trio
// (FirrtlatorFrontend.h) into one Go interface plus a registry.Registry.
package frontend

import "github.com/firrtlator/firrtlator/ir"

// Frontend parses source text into an *ir.Circuit.
type Frontend interface {
	Name() string
	Description() string
	Parse(src string) (*ir.Circuit, error)
}
