// Package logging builds the structured slog loggers used by the resolver and
// its sources. Output is JSON by default, text on request, and the level comes
// from the SETTINGS_LOG_LEVEL bootstrap setting.
package logging
