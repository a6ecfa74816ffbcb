// Package registry implements the process-wide plugin registries for
// frontends, passes, and backends. The original implementation keeps three
// independent std::map<string, Factory*> registries plus static Factory
// subobjects that self-register via their constructors' side effects
// (FirrtlatorFrontend.h's REGISTER_FRONTEND macro). Go has no reliable
// static-initializer ordering across packages, so registration instead
// happens explicitly, from each plugin package's init(), against one
// generic Registry[T] type (spec.md §9 "Global registry").
package registry

import (
	"sort"
	"sync"

	"github.com/firrtlator/firrtlator/ferr"
)

// Plugin is the capability every registrable frontend/pass/backend shares:
// a stable name and a short human-readable description. File extensions are
// not part of Plugin; they come from extensionLister or RegisterExtensions.
type Plugin interface {
	Name() string
	Description() string
}

// Descriptor mirrors Firrtlator::FrontendDescriptor / BackendDescriptor /
// PassDescriptor: the metadata exposed to the CLI's `-h` listing, without
// handing out the plugin value itself.
type Descriptor struct {
	Name        string
	Description string
	Filetypes   []string
}

// Registry is a name-keyed store of plugin factories (zero-arg constructors
// returning a fresh T), guarded for concurrent registration and lookup.
type Registry[T Plugin] struct {
	mu    sync.RWMutex
	build map[string]func() T
	ext   map[string]string // file extension -> plugin name, frontends/backends only
}

// New constructs an empty Registry.
func New[T Plugin]() *Registry[T] {
	return &Registry[T]{
		build: make(map[string]func() T),
		ext:   make(map[string]string),
	}
}

// extensionLister is implemented by plugin kinds that advertise the file
// extensions they claim (backend.Backend); Register reads it automatically
// so a plugin's Extensions() method is the one place its extensions live.
type extensionLister interface {
	Extensions() []string
}

// Register adds a plugin factory under name, rejecting a second
// registration under the same name (spec.md §9: "document the
// re-registration policy (reject duplicates)"). If T implements
// extensionLister, the extensions a freshly built instance reports are
// registered alongside it.
func (r *Registry[T]) Register(name string, build func() T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.build[name]; exists {
		return ferr.RegistryError("plugin %q is already registered", name)
	}
	r.build[name] = build
	if lister, ok := any(build()).(extensionLister); ok {
		for _, ext := range lister.Extensions() {
			if owner, exists := r.ext[ext]; exists && owner != name {
				return ferr.RegistryError("extension %q already claimed by %q", ext, owner)
			}
			r.ext[ext] = name
		}
	}
	return nil
}

// RegisterExtensions additionally associates one or more file extensions
// (e.g. ".fir") with an already-registered plugin name, for
// FindByExtension lookups. Extensions are matched case-sensitively and
// include the leading dot. Plugin kinds that implement extensionLister
// (backend.Backend) get this wired automatically by Register; this stays
// for plugin kinds (frontend.Frontend) that advertise extensions without
// it being part of the interface.
func (r *Registry[T]) RegisterExtensions(name string, extensions ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.build[name]; !exists {
		return ferr.RegistryError("cannot register extensions for unknown plugin %q", name)
	}
	for _, ext := range extensions {
		if owner, exists := r.ext[ext]; exists && owner != name {
			return ferr.RegistryError("extension %q already claimed by %q", ext, owner)
		}
		r.ext[ext] = name
	}
	return nil
}

// Create instantiates a fresh plugin registered under name.
func (r *Registry[T]) Create(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	build, ok := r.build[name]
	if !ok {
		var zero T
		return zero, ferr.RegistryError("unknown plugin %q", name)
	}
	return build(), nil
}

// FindByExtension returns the plugin name registered for a file extension
// (including the leading dot), or ok=false if none claims it.
func (r *Registry[T]) FindByExtension(ext string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.ext[ext]
	return name, ok
}

// List returns descriptors for every registered plugin, sorted by name, for
// the CLI's `-h` output.
func (r *Registry[T]) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	extsByName := make(map[string][]string)
	for ext, name := range r.ext {
		extsByName[name] = append(extsByName[name], ext)
	}
	descs := make([]Descriptor, 0, len(r.build))
	for name, build := range r.build {
		p := build()
		exts := extsByName[name]
		sort.Strings(exts)
		descs = append(descs, Descriptor{
			Name:        p.Name(),
			Description: p.Description(),
			Filetypes:   exts,
		})
	}
	sort.Slice(descs, func(i, j int) bool { return descs[i].Name < descs[j].Name })
	return descs
}
