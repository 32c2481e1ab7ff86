// Package settings resolves named settings across four layers, highest
// priority first:
//
//  1. runtime values assigned with Set,
//  2. the catalog directory (one file per setting),
//  3. the settings module,
//  4. fallbacks registered with SetFallback.
//
// The first layer that defines a name answers for it.
//
//	resolver, err := settings.New(
//	    settings.WithCatalogDir("/run/secrets"),
//	    settings.WithModuleID("/etc/app/settings.yaml"),
//	)
//	resolver.SetFallback("workers", int64(4))
//	workers, err := resolver.GetInt("workers")
package settings

import (
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/0xalexb/settingspy/catalog"
	"github.com/0xalexb/settingspy/literal"
	"github.com/0xalexb/settingspy/module"
)

// Resolver answers setting lookups. It is safe for concurrent use.
type Resolver struct {
	mu       sync.RWMutex
	opts     options
	logger   *slog.Logger
	runtime  mapLayer
	catalog  *catalog.Catalog
	module   module.Module
	moduleID string
	fallback mapLayer
	chain    []chainEntry
}

// New builds a Resolver. It fails with a *config.ConfigurationError when the
// catalog directory or the settings module is configured but unusable, and
// with a *literal.ParseError when a catalog entry does not parse.
func New(opts ...Option) (*Resolver, error) {
	o := options{
		catalogDir: "",
		moduleID:   "",
		module:     nil,
		registry:   nil,
		mode:       literal.Strict,
		logger:     nil,
	}

	for _, apply := range opts {
		apply(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	resolver := &Resolver{
		mu:     sync.RWMutex{},
		opts:   o,
		logger: logger,
	}

	err := resolver.Init(o.catalogDir, o.moduleID)
	if err != nil {
		return nil, err
	}

	return resolver, nil
}

// Init rebuilds every layer from catalogDir and moduleID. Runtime values and
// fallbacks are discarded. If the catalog or module cannot be loaded the
// Resolver keeps its previous state and the error is returned.
//
// Init is the only way to pick up catalog changes or switch modules.
func (r *Resolver) Init(catalogDir, moduleID string) error {
	cat, err := catalog.New(catalogDir,
		catalog.WithMode(r.opts.mode),
		catalog.WithLogger(r.logger),
	)
	if err != nil {
		return err
	}

	mod := r.opts.module

	if moduleID != "" {
		mod, err = r.opts.registry.Load(moduleID)
		if err != nil {
			return err
		}
	}

	runtime := mapLayer{}
	fallback := mapLayer{}

	r.mu.Lock()
	r.runtime = runtime
	r.catalog = cat
	r.module = mod
	r.moduleID = moduleID
	r.fallback = fallback
	r.chain = []chainEntry{
		{layer: LayerRuntime, provider: runtime},
		{layer: LayerCatalog, provider: cat},
		{layer: LayerModule, provider: moduleLayer{mod: mod}},
		{layer: LayerFallback, provider: fallback},
	}
	r.mu.Unlock()

	r.logger.Info("settings initialized",
		slog.String("catalog_dir", catalogDir),
		slog.Int("catalog_entries", cat.Len()),
		slog.String("module", moduleID),
		slog.Bool("has_module", mod != nil),
		slog.String("literal_mode", r.opts.mode.String()),
	)

	return nil
}

func (r *Resolver) resolve(name string) (any, Layer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.chain {
		if value, ok := entry.provider.TryGet(name); ok {
			return value, entry.layer, true
		}
	}

	return nil, 0, false
}

// Get returns the value of the highest-priority layer defining name, or a
// *NotFoundError when none does.
func (r *Resolver) Get(name string) (any, error) {
	value, _, ok := r.resolve(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return value, nil
}

// Lookup is Get in comma-ok form.
func (r *Resolver) Lookup(name string) (any, bool) {
	value, _, ok := r.resolve(name)

	return value, ok
}

// Source reports which layer answers for name.
func (r *Resolver) Source(name string) (Layer, bool) {
	_, layer, ok := r.resolve(name)

	return layer, ok
}

// Set assigns name in the runtime layer, replacing any earlier runtime value.
func (r *Resolver) Set(name string, value any) {
	r.mu.Lock()
	r.runtime[name] = value
	r.mu.Unlock()

	r.logger.Debug("runtime setting assigned", slog.String("name", name))
}

// Unset removes name from the runtime layer so lower layers show through.
func (r *Resolver) Unset(name string) {
	r.mu.Lock()
	delete(r.runtime, name)
	r.mu.Unlock()
}

// SetFallback registers a last-resort value for name, replacing any earlier fallback.
func (r *Resolver) SetFallback(name string, value any) {
	r.mu.Lock()
	r.fallback[name] = value
	r.mu.Unlock()

	r.logger.Debug("fallback setting registered", slog.String("name", name))
}

// Names returns the sorted names defined by the runtime, catalog and fallback
// layers. Module attributes cannot be enumerated and are not included.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := map[string]struct{}{}

	for name := range r.runtime {
		names[name] = struct{}{}
	}

	for name := range r.catalog.All() {
		names[name] = struct{}{}
	}

	for name := range r.fallback {
		names[name] = struct{}{}
	}

	return slices.Sorted(maps.Keys(names))
}

// Catalog returns the current catalog layer.
func (r *Resolver) Catalog() *catalog.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog
}

// Module returns the current settings module, or nil.
func (r *Resolver) Module() module.Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.module
}

// ModuleID returns the identifier the module was loaded from, or "".
func (r *Resolver) ModuleID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.moduleID
}
