package settings

import (
	"log/slog"

	"github.com/0xalexb/settingspy/literal"
	"github.com/0xalexb/settingspy/module"
)

type options struct {
	catalogDir string
	moduleID   string
	module     module.Module
	registry   *module.Registry
	mode       literal.Mode
	logger     *slog.Logger
}

// Option configures New.
type Option func(*options)

// WithCatalogDir sets the catalog directory. Empty means no catalog.
func WithCatalogDir(dir string) Option {
	return func(o *options) {
		o.catalogDir = dir
	}
}

// WithModuleID sets the settings module identifier, resolved through the registry.
func WithModuleID(id string) Option {
	return func(o *options) {
		o.moduleID = id
	}
}

// WithModule supplies a settings module directly. It is used whenever no
// module identifier is given, including on Init.
func WithModule(mod module.Module) Option {
	return func(o *options) {
		o.module = mod
	}
}

// WithRegistry sets the registry module identifiers are resolved in.
// Without one only settings files can be loaded.
func WithRegistry(registry *module.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// WithMode selects the literal grammar for catalog entries. The default is literal.Strict.
func WithMode(mode literal.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
