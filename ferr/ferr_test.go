package ferr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/token"
)

func TestErrorMessageIncludesPositionWhenValid(t *testing.T) {
	pos := token.Position{Line: 3, Column: 5}
	err := ferr.LexError(pos, "bad dedent")
	require.Contains(t, err.Error(), "bad dedent")
	require.Contains(t, err.Error(), "lex error")
	require.Contains(t, err.Error(), "3:5")
}

func TestRegistryAndIOErrorsCarryNoPosition(t *testing.T) {
	err := ferr.RegistryError("unknown plugin %q", "vhdl")
	require.Equal(t, "registry error: unknown plugin \"vhdl\"", err.Error())

	cause := errors.New("permission denied")
	ioErr := ferr.IOError(cause, "cannot open %q", "a.fir")
	require.ErrorIs(t, ioErr, cause)
}

func TestIsMatchesKindAndRejectsOtherErrors(t *testing.T) {
	err := ferr.SemanticError(token.Position{}, "bad")
	require.True(t, ferr.Is(err, ferr.Semantic))
	require.False(t, ferr.Is(err, ferr.Parse))
	require.False(t, ferr.Is(errors.New("plain"), ferr.Semantic))
}
