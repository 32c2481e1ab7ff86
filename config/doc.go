// Package config provides the configuration plumbing shared by the settings
// sources: how raw data is fetched and parsed, how the resolver is bootstrapped
// from the environment, and the error reported when a source is misconfigured.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw data (a file, a catalog entry)
//   - Validator: validates the target after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Paths use colon (:) as the separator:
//
//	"settings"           -> doc["settings"]
//	"services:db"        -> doc["services"]["db"]
//	""                   -> entire document
//
// # Bootstrap
//
// FromEnv reads SETTINGS_MODULE, VARIABLE_CATALOG, SETTINGS_LITERAL_MODE and
// SETTINGS_LOG_LEVEL once at startup:
//
//	boot, err := config.FromEnv(config.WithEnvPrefix("APP_"))
//
// A Bootstrap can equally be loaded from a file with Provider:
//
//	boot, err := config.Provider(&config.Bootstrap{}, "settings")(yamlparser.NewParser(), fetcher)
package config
