package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/firrtlator/firrtlator/ferr"
	"github.com/firrtlator/firrtlator/registry"
)

type fakePlugin struct{ name string }

func (f fakePlugin) Name() string        { return f.name }
func (f fakePlugin) Description() string { return "fake " + f.name }

func TestRegisterCreateAndList(t *testing.T) {
	r := registry.New[fakePlugin]()
	require.NoError(t, r.Register("a", func() fakePlugin { return fakePlugin{"a"} }))
	require.NoError(t, r.Register("b", func() fakePlugin { return fakePlugin{"b"} }))
	require.NoError(t, r.RegisterExtensions("a", ".a"))

	p, err := r.Create("a")
	require.NoError(t, err)
	require.Equal(t, "a", p.Name())

	name, ok := r.FindByExtension(".a")
	require.True(t, ok)
	require.Equal(t, "a", name)

	descs := r.List()
	require.Len(t, descs, 2)
	require.Equal(t, "a", descs[0].Name)
	require.Equal(t, []string{".a"}, descs[0].Filetypes)
	require.Equal(t, "b", descs[1].Name)
	require.Empty(t, descs[1].Filetypes)
}

func TestDuplicateRegistrationIsRegistryError(t *testing.T) {
	r := registry.New[fakePlugin]()
	require.NoError(t, r.Register("a", func() fakePlugin { return fakePlugin{"a"} }))
	err := r.Register("a", func() fakePlugin { return fakePlugin{"a"} })
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Registry))
}

func TestExtensionClaimedByAnotherPluginIsError(t *testing.T) {
	r := registry.New[fakePlugin]()
	require.NoError(t, r.Register("a", func() fakePlugin { return fakePlugin{"a"} }))
	require.NoError(t, r.Register("b", func() fakePlugin { return fakePlugin{"b"} }))
	require.NoError(t, r.RegisterExtensions("a", ".x"))
	err := r.RegisterExtensions("b", ".x")
	require.Error(t, err)
}

func TestCreateUnknownNameIsRegistryError(t *testing.T) {
	r := registry.New[fakePlugin]()
	_, err := r.Create("missing")
	require.Error(t, err)
	require.True(t, ferr.Is(err, ferr.Registry))
}

func TestExtensionsForUnknownPluginIsError(t *testing.T) {
	r := registry.New[fakePlugin]()
	err := r.RegisterExtensions("missing", ".x")
	require.Error(t, err)
}
