package json

import (
	"encoding/json"
	"testing"

	"github.com/0xalexb/settingspy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var settingsDoc = []byte(`{
  // top-level settings
  "debug": true,
  "workers": 8,
  "greeting": "hello",
  /* per environment */
  "profiles": {
    "staging": {"database": {"host": "staging.db", "port": 5432}},
    "production": {"database": {"host": "prod.db", "port": 6432},},
    "empty": null,
  },
}`)

func TestParser_Parse_EmptyPath(t *testing.T) {
	t.Parallel()

	var result map[string]any

	require.NoError(t, NewParser().Parse(settingsDoc, &result, ""))

	assert.Equal(t, true, result["debug"])
	assert.Equal(t, json.Number("8"), result["workers"])
	assert.Equal(t, "hello", result["greeting"])
}

func TestParser_Parse_NestedStruct(t *testing.T) {
	t.Parallel()

	var result struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}

	require.NoError(t, NewParser().Parse(settingsDoc, &result, "profiles:production:database"))

	assert.Equal(t, "prod.db", result.Host)
	assert.Equal(t, 6432, result.Port)
}

func TestParser_Parse_ScalarLeaf(t *testing.T) {
	t.Parallel()

	var greeting string

	require.NoError(t, NewParser().Parse(settingsDoc, &greeting, "greeting"))
	assert.Equal(t, "hello", greeting)
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    []byte
		path    string
		wantErr error
	}{
		{name: "empty data", data: nil, path: "", wantErr: ErrEmptyData},
		{name: "missing key", data: settingsDoc, path: "profiles:qa", wantErr: ErrPathNotFound},
		{name: "through null", data: settingsDoc, path: "profiles:empty:database", wantErr: ErrPathNotFound},
		{name: "empty segment", data: settingsDoc, path: ":profiles", wantErr: config.ErrEmptyPathSegment},
		{name: "scalar intermediate", data: settingsDoc, path: "greeting:nested", wantErr: nil},
		{name: "invalid json", data: []byte(`{"a": `), path: "", wantErr: nil},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var result map[string]any

			err := NewParser().Parse(testCase.data, &result, testCase.path)

			require.Error(t, err)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}
