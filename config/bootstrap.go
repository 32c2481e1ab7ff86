package config

import (
	"fmt"
	"os"

	"github.com/0xalexb/settingspy/literal"
)

// Environment variables read by FromEnv. A prefix set with WithEnvPrefix is
// prepended to each name.
const (
	EnvSettingsModule  = "SETTINGS_MODULE"
	EnvVariableCatalog = "VARIABLE_CATALOG"
	EnvLiteralMode     = "SETTINGS_LITERAL_MODE"
	EnvLogLevel        = "SETTINGS_LOG_LEVEL"
)

// DefaultLiteralMode is used when no literal mode is configured.
const DefaultLiteralMode = "strict"

// Bootstrap holds the inputs a settings resolver is built from.
type Bootstrap struct {
	// CatalogDir is the directory of one-file-per-setting entries. Empty means no catalog.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`
	// SettingsModule identifies the settings module. Empty means no module layer.
	SettingsModule string `json:"settings_module" yaml:"settings_module"`
	// LiteralMode is "strict" or "permissive".
	LiteralMode string `json:"literal_mode" yaml:"literal_mode"`
	// LogLevel is passed to the logger; empty means info.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// SetDefaults fills in the literal mode.
func (b *Bootstrap) SetDefaults() bool {
	if b.LiteralMode == "" {
		b.LiteralMode = DefaultLiteralMode

		return true
	}

	return false
}

// Validate checks that the literal mode is known.
func (b *Bootstrap) Validate() error {
	_, err := literal.ParseMode(b.LiteralMode)
	if err != nil {
		return fmt.Errorf("literal mode: %w", err)
	}

	return nil
}

// Mode returns the configured literal mode, Strict when unset or invalid.
func (b *Bootstrap) Mode() literal.Mode {
	mode, err := literal.ParseMode(b.LiteralMode)
	if err != nil {
		return literal.Strict
	}

	return mode
}

type envOptions struct {
	prefix string
	lookup func(string) (string, bool)
}

// EnvOption configures FromEnv.
type EnvOption func(*envOptions)

// WithEnvPrefix namespaces the variables, e.g. "APP_" reads APP_SETTINGS_MODULE.
func WithEnvPrefix(prefix string) EnvOption {
	return func(o *envOptions) {
		o.prefix = prefix
	}
}

// WithLookup replaces os.LookupEnv as the variable source.
func WithLookup(lookup func(string) (string, bool)) EnvOption {
	return func(o *envOptions) {
		o.lookup = lookup
	}
}

// FromEnv reads a Bootstrap from the process environment, applies defaults
// and validates it. This is the only place the environment is consulted.
// Invalid values yield a *ConfigurationError.
func FromEnv(opts ...EnvOption) (*Bootstrap, error) {
	options := envOptions{prefix: "", lookup: os.LookupEnv}

	for _, apply := range opts {
		apply(&options)
	}

	get := func(name string) string {
		value, _ := options.lookup(options.prefix + name)

		return value
	}

	bootstrap := &Bootstrap{
		CatalogDir:     get(EnvVariableCatalog),
		SettingsModule: get(EnvSettingsModule),
		LiteralMode:    get(EnvLiteralMode),
		LogLevel:       get(EnvLogLevel),
	}

	source := "env:" + options.prefix

	bootstrap, err := finalize(bootstrap, source)
	if err != nil {
		return nil, NewConfigurationError("read bootstrap", source, err)
	}

	return bootstrap, nil
}
