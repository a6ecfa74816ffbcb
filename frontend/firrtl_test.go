package frontend_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/frontend"
)

func TestFirrtlFrontendRegisteredByNameAndExtension(t *testing.T) {
	fe, err := frontend.Frontends.Create("firrtl")
	require.NoError(t, err)
	require.Equal(t, "firrtl", fe.Name())

	name, ok := frontend.Frontends.FindByExtension(".fir")
	require.True(t, ok)
	require.Equal(t, "firrtl", name)
}

func TestFirrtlFrontendParsesSource(t *testing.T) {
	fe, err := frontend.Frontends.Create("firrtl")
	require.NoError(t, err)

	c, err := fe.Parse("circuit top :\n  module top :\n    input a : UInt<1>\n")
	require.NoError(t, err)
	require.Equal(t, "top", c.ID)
	require.Len(t, c.Modules, 1)
}

func TestFirrtlFrontendRejectsMalformedSource(t *testing.T) {
	fe, err := frontend.Frontends.Create("firrtl")
	require.NoError(t, err)

	_, err = fe.Parse("circuit :\n")
	require.Error(t, err)
}

func TestUnknownFrontendNameIsRegistryError(t *testing.T) {
	_, err := frontend.Frontends.Create("vhdl")
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Registry))
}
