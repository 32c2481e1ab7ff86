package settingspy

import (
	"path/filepath"
	"strings"

	"github.com/0xalexb/settingspy/config"
	filefetcher "github.com/0xalexb/settingspy/config/fetcher/file"
	jsonparser "github.com/0xalexb/settingspy/config/parser/json"
	yamlparser "github.com/0xalexb/settingspy/config/parser/yaml"
	"github.com/0xalexb/settingspy/module"
	"github.com/0xalexb/settingspy/settings"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	// Bootstrap enables the settings module when set.
	Bootstrap *config.Bootstrap
	// Settings are applied to the resolver after the Bootstrap values.
	Settings []settings.Option
	// Registry is supplied to the container for module identifiers.
	Registry *module.Registry
	// Errors collected while applying options; they fail the app on start.
	Errors []error
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, the Bootstrap log level is used; if that is empty or invalid, "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithSettings provides a *settings.Resolver built from boot and opts.
// A nil boot is treated as an empty Bootstrap.
func WithSettings(boot *config.Bootstrap, opts ...settings.Option) Option {
	return func(o *Options) {
		if boot == nil {
			boot = &config.Bootstrap{}
		}

		o.Bootstrap = boot
		o.Settings = append(o.Settings, opts...)
	}
}

// WithSettingsFromEnv is WithSettings with the Bootstrap read from the
// environment when the option is applied.
func WithSettingsFromEnv(envOpts ...config.EnvOption) Option {
	return func(o *Options) {
		boot, err := config.FromEnv(envOpts...)
		if err != nil {
			o.Errors = append(o.Errors, err)

			return
		}

		WithSettings(boot)(o)
	}
}

// WithSettingsFile is WithSettings with the Bootstrap read from a YAML or
// JSON(C) file, optionally from the mapping at section (a colon path).
func WithSettingsFile(path, section string) Option {
	return func(o *Options) {
		boot, err := bootstrapFromFile(path, section)
		if err != nil {
			o.Errors = append(o.Errors, err)

			return
		}

		WithSettings(boot)(o)
	}
}

// WithRegistry supplies the module registry settings module identifiers are resolved in.
func WithRegistry(registry *module.Registry) Option {
	return func(o *Options) {
		o.Registry = registry
	}
}

func bootstrapFromFile(path, section string) (*config.Bootstrap, error) {
	fetcher, err := filefetcher.Open(path)
	if err != nil {
		return nil, config.NewConfigurationError("read bootstrap", path, err)
	}

	var parser config.Parser

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		parser = jsonparser.NewParser()
	default:
		parser = yamlparser.NewParser()
	}

	boot, err := config.Provider(&config.Bootstrap{}, section)(parser, fetcher)
	if err != nil {
		return nil, config.NewConfigurationError("read bootstrap", path, err)
	}

	return boot, nil
}
