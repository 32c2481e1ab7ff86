// Package json implements config.Parser for JSON documents. Comments and
// trailing commas (JSONC) are accepted.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/0xalexb/settingspy/config"

	"github.com/tidwall/jsonc"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for JSON and JSONC data.
//
// Numbers decoded into interface values are json.Number, so integers keep
// their exact value.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse strips comments, navigates to path and decodes into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	keys, err := config.SplitPath(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	raw := json.RawMessage(jsonc.ToJSON(data))

	for _, key := range keys {
		var object map[string]json.RawMessage

		err := json.Unmarshal(raw, &object)
		if err != nil {
			return fmt.Errorf("reading path %q at %q: %w", path, key, err)
		}

		// A null object decodes to a nil map and misses here too.
		next, ok := object[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		raw = next
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	err = decoder.Decode(target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
