package runner

import (
	"fmt"
	"sort"
	"strings"
)

// BuildEnv returns base with additions filled in for keys base does not
// already set. Values from the real environment always win over file values.
func BuildEnv(base []string, additions map[string]string) []string {
	env := append([]string(nil), base...)
	if len(additions) == 0 {
		return env
	}
	keys := make([]string, 0, len(additions))
	for key := range additions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := additions[key]
		if value == "" {
			continue
		}
		if _, ok := GetEnv(env, key); ok {
			continue
		}
		env = SetEnv(env, key, value)
	}
	return env
}

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}
