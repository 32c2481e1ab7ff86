package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("setting not found")
	// ErrTypeMismatch is returned by the typed getters when the value has another type.
	ErrTypeMismatch = errors.New("setting has unexpected type")
)

// NotFoundError is returned by Get when no layer defines the name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no setting named %q", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
