package module

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/0xalexb/settingspy/config"
	"github.com/0xalexb/settingspy/config/fetcher/file"
	jsonparser "github.com/0xalexb/settingspy/config/parser/json"
	yamlparser "github.com/0xalexb/settingspy/config/parser/yaml"
)

// SectionSeparator separates a settings file path from the section to load.
const SectionSeparator = "#"

// ErrUnsupportedFile is returned by LoadFile for unknown file extensions.
var ErrUnsupportedFile = fmt.Errorf("%w: unsupported settings file extension", ErrUnknownModule)

func parserFor(path string) (config.Parser, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), true
	case ".json", ".jsonc":
		return jsonparser.NewParser(), true
	default:
		return nil, false
	}
}

func splitFileID(id string) (string, string, bool) {
	path, section, _ := strings.Cut(id, SectionSeparator)

	_, ok := parserFor(path)

	return path, section, ok
}

// LoadFile reads a YAML or JSON(C) document and exposes its top-level keys,
// or the keys of the mapping at section (a colon path), as attributes.
// Integers are returned as int64 and other numbers as float64, at any depth.
// Failures are *config.ConfigurationError.
func LoadFile(path, section string) (Module, error) {
	target := path
	if section != "" {
		target += SectionSeparator + section
	}

	parser, ok := parserFor(path)
	if !ok {
		return nil, config.NewConfigurationError("load module", target, ErrUnsupportedFile)
	}

	fetcher, err := file.Open(path)
	if err != nil {
		return nil, config.NewConfigurationError("load module", target, err)
	}

	values, err := config.Provider(&map[string]any{}, section)(parser, fetcher)
	if err != nil {
		// An empty document is an empty module, like an empty source file.
		if section == "" && (errors.Is(err, yamlparser.ErrEmptyData) || errors.Is(err, jsonparser.ErrEmptyData)) {
			return Map{}, nil
		}

		return nil, config.NewConfigurationError("load module", target, err)
	}

	normalized := make(Map, len(*values))

	for name, value := range *values {
		normalized[name] = normalize(value)
	}

	return normalized, nil
}

// normalize converts decoded numbers to int64 or float64 so file modules
// agree with the catalog on numeric types.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}

		return out
	case map[any]any:
		out := make(map[any]any, len(v))
		for key, item := range v {
			out[normalize(key)] = normalize(item)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}

		return out
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint:
		return normalizeUint(uint64(v))
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint64:
		return normalizeUint(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

func normalizeUint(v uint64) any {
	if v > math.MaxInt64 {
		return v
	}

	return int64(v)
}
