package settings

import "fmt"

// As returns the setting called name as a T. Values are never converted: a
// value of any other type fails with ErrTypeMismatch.
func As[T any](r *Resolver, name string) (T, error) {
	var zero T

	value, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrTypeMismatch, name, value, zero)
	}

	return typed, nil
}

// GetString returns a string setting.
func (r *Resolver) GetString(name string) (string, error) {
	return As[string](r, name)
}

// GetInt returns an integer setting. Catalog integers are int64.
func (r *Resolver) GetInt(name string) (int64, error) {
	return As[int64](r, name)
}

// GetFloat returns a float setting.
func (r *Resolver) GetFloat(name string) (float64, error) {
	return As[float64](r, name)
}

// GetBool returns a boolean setting.
func (r *Resolver) GetBool(name string) (bool, error) {
	return As[bool](r, name)
}
