// Package venv detects whether a Python virtual environment is active.
package venv

import (
	"errors"
	"strings"

	"github.com/conn-castle/provision/internal/messages"
)

// DefaultMarker is the variable set by venv activation scripts.
const DefaultMarker = "VIRTUAL_ENV"

// ErrNotActive reports that the marker variable is unset or blank.
var ErrNotActive = errors.New(messages.VenvNotActiveErr)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// Detect returns the active environment path named by marker.
// A marker holding only whitespace counts as unset.
func Detect(lookup LookupEnvFunc, marker string) (string, error) {
	if marker == "" {
		marker = DefaultMarker
	}
	value, ok := lookup(marker)
	if !ok {
		return "", ErrNotActive
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ErrNotActive
	}
	return value, nil
}
