package config_test

import (
	"fmt"
	"testing"

	"github.com/0xalexb/settingspy/config"
	jsonparser "github.com/0xalexb/settingspy/config/parser/json"
	yamlparser "github.com/0xalexb/settingspy/config/parser/yaml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	provider := config.Provider(&config.Bootstrap{}, "")

	fetcher := &StaticDataFetcher{
		Data: []byte("catalog_dir: /etc/myapp/catalog\nsettings_module: /etc/myapp/settings.yaml\n"),
	}

	boot, err := provider(yamlparser.NewParser(), fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("catalog=%s module=%s mode=%s\n", boot.CatalogDir, boot.SettingsModule, boot.LiteralMode)
	// Output: catalog=/etc/myapp/catalog module=/etc/myapp/settings.yaml mode=strict
}

func ExampleProvider_pathNavigation() {
	yamlData := []byte(`
services:
  worker:
    settings:
      catalog_dir: /srv/worker/catalog
      literal_mode: permissive
  api:
    settings:
      catalog_dir: /srv/api/catalog
`)

	provider := config.Provider(&config.Bootstrap{}, "services:worker:settings")

	boot, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("catalog=%s mode=%s\n", boot.CatalogDir, boot.Mode())
	// Output: catalog=/srv/worker/catalog mode=permissive
}

func ExampleFromEnv() {
	env := map[string]string{
		"APP_VARIABLE_CATALOG": "/run/secrets",
		"APP_SETTINGS_MODULE":  "defaults",
	}

	boot, err := config.FromEnv(
		config.WithEnvPrefix("APP_"),
		config.WithLookup(func(name string) (string, bool) {
			value, ok := env[name]

			return value, ok
		}),
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("catalog=%s module=%s mode=%s\n", boot.CatalogDir, boot.SettingsModule, boot.Mode())
	// Output: catalog=/run/secrets module=defaults mode=strict
}

// TestParsers_PathNavigation runs the same navigation scenarios through both
// document parsers.
func TestParsers_PathNavigation(t *testing.T) {
	t.Parallel()

	yamlData := []byte(`
settings:
  catalog_dir: /srv/catalog
  literal_mode: strict
nested:
  deeper:
    settings_module: app.yaml
`)

	jsonData := []byte(`{
  // comments are allowed
  "settings": {"catalog_dir": "/srv/catalog", "literal_mode": "strict"},
  "nested": {"deeper": {"settings_module": "app.yaml"}},
}`)

	parsers := []struct {
		name   string
		parser config.Parser
		data   []byte
	}{
		{name: "yaml", parser: yamlparser.NewParser(), data: yamlData},
		{name: "jsonc", parser: jsonparser.NewParser(), data: jsonData},
	}

	for _, testCase := range parsers {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			boot := &config.Bootstrap{}
			require.NoError(t, testCase.parser.Parse(testCase.data, boot, "settings"))
			assert.Equal(t, "/srv/catalog", boot.CatalogDir)
			assert.Equal(t, "strict", boot.LiteralMode)

			deep := &config.Bootstrap{}
			require.NoError(t, testCase.parser.Parse(testCase.data, deep, "nested:deeper"))
			assert.Equal(t, "app.yaml", deep.SettingsModule)

			whole := make(map[string]any)
			require.NoError(t, testCase.parser.Parse(testCase.data, &whole, ""))
			assert.Contains(t, whole, "settings")
			assert.Contains(t, whole, "nested")

			require.Error(t, testCase.parser.Parse(testCase.data, &config.Bootstrap{}, "missing:path"))
		})
	}
}
