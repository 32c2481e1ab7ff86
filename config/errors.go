package config

import (
	"errors"
	"fmt"
)

// ErrImproperlyConfigured is matched by every *ConfigurationError.
var ErrImproperlyConfigured = errors.New("improperly configured")

// ConfigurationError reports a settings source that was configured but could
// not be used: a catalog directory that cannot be listed, or a settings module
// that cannot be loaded. It is raised at construction time only.
type ConfigurationError struct {
	// Op is the failed operation, e.g. "open catalog" or "load module".
	Op string
	// Target is the path or identifier that was configured.
	Target string
	Err    error
}

// NewConfigurationError wraps err with the operation and target that failed.
func NewConfigurationError(op, target string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Target: target, Err: err}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("improperly configured: %s %q: %v", e.Op, e.Target, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrImproperlyConfigured.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrImproperlyConfigured
}
