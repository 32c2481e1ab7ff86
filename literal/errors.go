package literal

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every *ParseError.
var ErrSyntax = errors.New("invalid literal")

// ParseError describes text that does not match the literal grammar.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid literal %q: %s at offset %d", abbreviate(e.Input), e.Msg, e.Offset)
}

// Is reports whether target is ErrSyntax.
func (e *ParseError) Is(target error) bool {
	return target == ErrSyntax
}

const maxQuoted = 40

func abbreviate(s string) string {
	if len(s) <= maxQuoted {
		return s
	}

	return s[:maxQuoted] + "..."
}
