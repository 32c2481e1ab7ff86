package module

import (
	"errors"
	"fmt"
	"sync"

	"github.com/0xalexb/settingspy/config"
)

var (
	// ErrUnknownModule is returned by Load for identifiers that are neither registered nor a settings file.
	ErrUnknownModule = errors.New("unknown settings module")
	// ErrDuplicateModule is returned by Register when the identifier is taken.
	ErrDuplicateModule = errors.New("settings module already registered")
	// ErrEmptyID is returned by Register for an empty identifier.
	ErrEmptyID = errors.New("settings module identifier must not be empty")
	// ErrNilModule is returned by Load when a loader returns neither a module nor an error.
	ErrNilModule = errors.New("loader returned no module")
)

// Loader produces a module. It runs each time its identifier is loaded.
type Loader func() (Module, error)

// Registry maps identifiers to module loaders. It is safe for concurrent use.
// A nil *Registry has no registrations but still loads settings files.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:      sync.RWMutex{},
		loaders: map[string]Loader{},
	}
}

// Register binds id to loader.
func (r *Registry) Register(id string, loader Loader) error {
	if id == "" {
		return ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.loaders[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, id)
	}

	r.loaders[id] = loader

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id string, loader Loader) {
	if err := r.Register(id, loader); err != nil {
		panic(err)
	}
}

// RegisterModule binds id to an already built module.
func (r *Registry) RegisterModule(id string, mod Module) error {
	return r.Register(id, func() (Module, error) {
		return mod, nil
	})
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.loader(id)

	return ok
}

func (r *Registry) loader(id string) (Loader, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	loader, ok := r.loaders[id]

	return loader, ok
}

// Load resolves id to a module:
//   - "" yields no module and no error;
//   - a registered id runs its loader;
//   - a path ending in .yaml, .yml, .json or .jsonc, optionally followed by
//     "#section:sub", loads that document (see LoadFile);
//   - anything else fails with ErrUnknownModule.
//
// Every failure is a *config.ConfigurationError.
func (r *Registry) Load(id string) (Module, error) {
	if id == "" {
		return nil, nil //nolint:nilnil // no module configured is not an error.
	}

	if loader, ok := r.loader(id); ok {
		mod, err := loader()
		if err != nil {
			return nil, config.NewConfigurationError("load module", id, err)
		}

		if mod == nil {
			return nil, config.NewConfigurationError("load module", id, ErrNilModule)
		}

		return mod, nil
	}

	if path, section, ok := splitFileID(id); ok {
		return LoadFile(path, section)
	}

	return nil, config.NewConfigurationError("load module", id, ErrUnknownModule)
}
