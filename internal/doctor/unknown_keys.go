package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/messages"
)

// unknownKey is a provision.toml key the schema does not accept.
type unknownKey struct {
	Path       string
	Allowed    []string
	Suggestion string
}

// keyNode mirrors the toml tags of config.Config.
type keyNode struct {
	fields map[string]*keyNode
	items  *keyNode
}

var (
	keySchemaOnce sync.Once
	keySchema     *keyNode
)

// unknownKeyRecommendation lists the unknown keys in path, or returns "" when
// there are none or the file cannot be read as TOML.
func unknownKeyRecommendation(path string) string {
	keys, err := findUnknownKeys(path)
	if err != nil || len(keys) == 0 {
		return ""
	}
	lines := []string{fmt.Sprintf(messages.DoctorUnknownKeysHeaderFmt, path)}
	for _, key := range keys {
		line := "- " + key.Path
		if len(key.Allowed) > 0 {
			line += fmt.Sprintf(messages.DoctorUnknownKeyAllowedFmt, strings.Join(key.Allowed, ", "))
		}
		if key.Suggestion != "" {
			line += fmt.Sprintf(messages.DoctorUnknownKeySuggestFmt, key.Suggestion)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// findUnknownKeys decodes path loosely and walks it against the config schema.
func findUnknownKeys(path string) ([]unknownKey, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	keySchemaOnce.Do(func() {
		keySchema = schemaFor(reflect.TypeOf(config.Config{}))
	})
	var keys []unknownKey
	walkKeys(raw, keySchema, "", &keys)
	sort.Slice(keys, func(i, j int) bool { return keys[i].Path < keys[j].Path })
	return keys, nil
}

func schemaFor(t reflect.Type) *keyNode {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		node := &keyNode{fields: make(map[string]*keyNode)}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			name, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
			if !field.IsExported() || name == "" || name == "-" {
				continue
			}
			node.fields[name] = schemaFor(field.Type)
		}
		return node
	case reflect.Slice, reflect.Array:
		return &keyNode{items: schemaFor(t.Elem())}
	default:
		return &keyNode{}
	}
}

func walkKeys(raw any, node *keyNode, path string, keys *[]unknownKey) {
	if node == nil {
		return
	}
	switch value := raw.(type) {
	case map[string]any:
		if node.fields == nil {
			return
		}
		for key, child := range value {
			next, ok := node.fields[key]
			if !ok {
				*keys = append(*keys, unknownKey{
					Path:       joinKeyPath(path, key),
					Allowed:    node.allowed(),
					Suggestion: node.suggest(key, path),
				})
				continue
			}
			walkKeys(child, next, joinKeyPath(path, key), keys)
		}
	case []any:
		for i, item := range value {
			walkKeys(item, node.items, fmt.Sprintf("%s[%d]", path, i), keys)
		}
	}
}

func (n *keyNode) allowed() []string {
	keys := make([]string, 0, len(n.fields))
	for key := range n.fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// suggest maps common misspellings (case, dashes, singular for plural) to a known key.
func (n *keyNode) suggest(key string, path string) string {
	candidates := []string{
		strings.ToLower(key),
		strings.ReplaceAll(strings.ToLower(key), "-", "_"),
		strings.ToLower(key) + "s",
		strings.TrimSuffix(strings.ToLower(key), "s"),
	}
	for _, candidate := range candidates {
		if candidate == key {
			continue
		}
		if _, ok := n.fields[candidate]; ok {
			return joinKeyPath(path, candidate)
		}
	}
	return ""
}

func joinKeyPath(path string, key string) string {
	if strings.ContainsAny(key, ". \"") {
		key = fmt.Sprintf("[%q]", key)
		return path + key
	}
	if path == "" {
		return key
	}
	return path + "." + key
}
