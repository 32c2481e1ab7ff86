package module

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/settingspy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModule(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const yamlModule = `
modbool: true
modint: 123
modstr: something
ratio: 0.25
hosts: [a, b]
production:
  workers: 16
  limits:
    cpu: 2
`

const jsonModule = `{
  "modbool": true,
  "modint": 123, // comment
  "modstr": "something",
  "ratio": 0.25,
  "hosts": ["a", "b"],
  "production": {"workers": 16, "limits": {"cpu": 2}},
}`

func TestLoadFile_Formats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "settings.yaml", content: yamlModule},
		{name: "yml", file: "settings.YML", content: yamlModule},
		{name: "json", file: "settings.json", content: jsonModule},
		{name: "jsonc", file: "settings.jsonc", content: jsonModule},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			mod, err := LoadFile(writeModule(t, testCase.file, testCase.content), "")
			require.NoError(t, err)

			expected := map[string]any{
				"modbool": true,
				"modint":  int64(123),
				"modstr":  "something",
				"ratio":   0.25,
				"hosts":   []any{"a", "b"},
			}

			for name, want := range expected {
				value, ok := mod.Lookup(name)
				assert.True(t, ok, name)
				assert.Equal(t, want, value, name)
			}

			production, ok := mod.Lookup("production")
			require.True(t, ok)
			assert.Equal(t, map[string]any{
				"workers": int64(16),
				"limits":  map[string]any{"cpu": int64(2)},
			}, production)
		})
	}
}

func TestLoadFile_Section(t *testing.T) {
	t.Parallel()

	path := writeModule(t, "settings.yaml", yamlModule)

	registry := NewRegistry()

	mod, err := registry.Load(path + "#production")
	require.NoError(t, err)

	value, ok := mod.Lookup("workers")
	assert.True(t, ok)
	assert.Equal(t, int64(16), value)

	_, ok = mod.Lookup("modstr")
	assert.False(t, ok)

	mod, err = registry.Load(path + "#production:limits")
	require.NoError(t, err)

	value, _ = mod.Lookup("cpu")
	assert.Equal(t, int64(2), value)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		file    string
		content string
		section string
	}{
		{name: "missing section", file: "a.yaml", content: yamlModule, section: "staging"},
		{name: "scalar section", file: "b.yaml", content: yamlModule, section: "modstr"},
		{name: "top-level list", file: "c.yaml", content: "- a\n- b\n", section: ""},
		{name: "malformed json", file: "d.json", content: `{"a": `, section: ""},
		{name: "unsupported", file: "e.toml", content: "a = 1", section: ""},
		{name: "empty with section", file: "f.yaml", content: "", section: "production"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			mod, err := LoadFile(writeModule(t, testCase.file, testCase.content), testCase.section)

			assert.Nil(t, mod)
			require.ErrorIs(t, err, config.ErrImproperlyConfigured)
		})
	}
}

func TestLoadFile_EmptyDocumentIsEmptyModule(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"empty.yaml", "empty.json"} {
		mod, err := LoadFile(writeModule(t, name, "\n"), "")
		require.NoError(t, err, name)

		_, ok := mod.Lookup("anything")
		assert.False(t, ok)
	}
}

func TestSplitFileID(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		id      string
		path    string
		section string
		ok      bool
	}{
		{id: "/etc/app.yaml", path: "/etc/app.yaml", section: "", ok: true},
		{id: "app.json#prod:db", path: "app.json", section: "prod:db", ok: true},
		{id: "app.jsonc#", path: "app.jsonc", section: "", ok: true},
		{id: "mysettings", path: "mysettings", section: "", ok: false},
		{id: "dir.yaml/app#x", path: "dir.yaml/app", section: "x", ok: false},
	}

	for _, testCase := range testCases {
		path, section, ok := splitFileID(testCase.id)
		assert.Equal(t, testCase.ok, ok, testCase.id)

		if ok {
			assert.Equal(t, testCase.path, path, testCase.id)
			assert.Equal(t, testCase.section, section, testCase.id)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"int":     8,
		"uint64":  uint64(9),
		"huge":    uint64(math.MaxUint64),
		"float32": float32(0.5),
		"number":  json.Number("12"),
		"decimal": json.Number("1.5"),
		"nested":  []any{uint8(1), map[any]any{uint16(2): int32(3)}},
		"string":  "kept",
	}

	assert.Equal(t, map[string]any{
		"int":     int64(8),
		"uint64":  int64(9),
		"huge":    uint64(math.MaxUint64),
		"float32": 0.5,
		"number":  int64(12),
		"decimal": 1.5,
		"nested":  []any{int64(1), map[any]any{int64(2): int64(3)}},
		"string":  "kept",
	}, normalize(input))
}
