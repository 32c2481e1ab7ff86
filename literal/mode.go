package literal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
var ErrUnknownMode = errors.New("unknown literal mode")

// Mode selects the literal grammar.
type Mode int

const (
	// Strict accepts booleans, integers, floats and quoted strings only.
	Strict Mode = iota
	// Permissive also accepts None and composite literals, and falls back to
	// the raw trimmed text when parsing fails.
	Permissive
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "strict" or "permissive" (any case) into a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return Strict, nil
	case "permissive":
		return Permissive, nil
	default:
		return Strict, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
