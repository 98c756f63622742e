package doctor

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkKeysNestedArrays(t *testing.T) {
	type item struct {
		Known string `toml:"known"`
	}
	type root struct {
		Items []item `toml:"items"`
		Flag  bool   `toml:"flag"`
	}

	raw := map[string]any{
		"flag": true,
		"items": []any{
			map[string]any{"known": "a"},
			map[string]any{"known": "b", "extra": 1},
		},
	}
	var keys []unknownKey
	walkKeys(raw, schemaFor(reflect.TypeOf(root{})), "", &keys)

	require.Len(t, keys, 1)
	assert.Equal(t, unknownKey{Path: "items[1].extra", Allowed: []string{"known"}}, keys[0])
}

func TestFindUnknownKeysSuggestions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "provision.toml")
	content := "[tool]\npython = \"python\"\n\n[verify]\nfilter = [\"numpy\"]\n\n[app]\nlaunch = \"x\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	keys, err := findUnknownKeys(path)

	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "tool", keys[0].Path)
	assert.Equal(t, "tools", keys[0].Suggestion)
	assert.Equal(t, "verify.filter", keys[1].Path)
	assert.Equal(t, "verify.filters", keys[1].Suggestion)
}

func TestUnknownKeyRecommendationEmpty(t *testing.T) {
	assert.Empty(t, unknownKeyRecommendation(filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "provision.toml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))
	assert.Empty(t, unknownKeyRecommendation(path))
}

func TestJoinKeyPath(t *testing.T) {
	assert.Equal(t, "tools", joinKeyPath("", "tools"))
	assert.Equal(t, "tools.pip", joinKeyPath("tools", "pip"))
	assert.Equal(t, `tools["a.b"]`, joinKeyPath("tools", "a.b"))
}
