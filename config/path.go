package config

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator separates keys in a navigation path.
const PathSeparator = ":"

// ErrEmptyPathSegment is returned for paths such as "a::b" or ":a".
var ErrEmptyPathSegment = errors.New("empty path segment")

// SplitPath splits a colon-separated navigation path into its keys.
// The empty path yields no keys.
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	keys := strings.Split(path, PathSeparator)

	for i, key := range keys {
		if key == "" {
			return nil, fmt.Errorf("%w at position %d in %q", ErrEmptyPathSegment, i, path)
		}
	}

	return keys, nil
}
