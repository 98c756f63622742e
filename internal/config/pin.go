package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/datawire/ocibuild/pkg/python/pep440"

	"github.com/conn-castle/provision/internal/messages"
)

var (
	packageNamePattern = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)
	nameSeparators     = regexp.MustCompile(`[-_.]+`)
)

// rangeOperators lists every comparison operator other than ==, longest first.
var rangeOperators = []string{"===", "~=", "!=", "<=", ">=", "<", ">"}

// Pin is an exact requirement: name[extras]==version.
type Pin struct {
	Name    string
	Extras  []string
	Version string
}

// String renders the pin as pip accepts it on the command line.
func (p Pin) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	if len(p.Extras) > 0 {
		b.WriteString("[")
		b.WriteString(strings.Join(p.Extras, ","))
		b.WriteString("]")
	}
	b.WriteString("==")
	b.WriteString(p.Version)
	return b.String()
}

// SameVersion reports whether installed is the pinned version under PEP 440
// equality, so 5.22 matches 5.22.0 and 1.0.0-rc.1 matches 1.0.0rc1.
func (p Pin) SameVersion(installed string) bool {
	want, err := pep440.ParseVersion(p.Version)
	if err != nil {
		return p.Version == installed
	}
	have, err := pep440.ParseVersion(installed)
	if err != nil {
		return false
	}
	return want.Cmp(*have) == 0
}

// Key returns the normalized project name used to compare against pip output.
func (p Pin) Key() string {
	return NormalizeName(p.Name)
}

// NormalizeName applies PEP 503 normalization: lower case, runs of -_. become -.
func NormalizeName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(strings.TrimSpace(name), "-"))
}

// ParsePin parses raw as an exact pin. Ranges, wildcards, multiple clauses,
// and environment markers are rejected.
func ParsePin(raw string) (Pin, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Pin{}, errors.New(messages.PinEmpty)
	}
	if strings.Contains(trimmed, ";") {
		return Pin{}, fmt.Errorf(messages.PinEnvironmentMarkerFmt, raw)
	}

	opIndex := strings.IndexAny(trimmed, "=<>!~")
	if opIndex < 0 {
		return Pin{}, fmt.Errorf(messages.PinNotExactFmt, raw)
	}
	name, extras, err := parseNameAndExtras(trimmed[:opIndex], raw)
	if err != nil {
		return Pin{}, err
	}

	specifier := strings.TrimSpace(trimmed[opIndex:])
	for _, op := range rangeOperators {
		if strings.HasPrefix(specifier, op) {
			return Pin{}, fmt.Errorf(messages.PinRangeOperatorFmt, raw, op)
		}
	}
	if !strings.HasPrefix(specifier, "==") {
		return Pin{}, fmt.Errorf(messages.PinNotExactFmt, raw)
	}

	version := strings.TrimSpace(specifier[2:])
	switch {
	case version == "":
		return Pin{}, fmt.Errorf(messages.PinMissingVersionFmt, raw)
	case strings.Contains(version, ","):
		return Pin{}, fmt.Errorf(messages.PinNotExactFmt, raw)
	case strings.Contains(version, "*"):
		return Pin{}, fmt.Errorf(messages.PinWildcardVersionFmt, raw)
	}
	if _, err := pep440.ParseVersion(version); err != nil {
		return Pin{}, fmt.Errorf(messages.PinInvalidVersionFmt, raw, version)
	}

	return Pin{Name: name, Extras: extras, Version: version}, nil
}

// ParseBareName validates raw as a package name with no version or extras.
func ParseBareName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if !packageNamePattern.MatchString(name) {
		return "", fmt.Errorf(messages.PinInvalidNameFmt, raw)
	}
	return name, nil
}

// parseNameAndExtras splits "name[extra1,extra2]" into its parts.
// raw is the full requirement for error messages.
func parseNameAndExtras(part string, raw string) (string, []string, error) {
	part = strings.TrimSpace(part)
	name := part
	var extras []string
	if open := strings.Index(part, "["); open >= 0 {
		if !strings.HasSuffix(part, "]") {
			return "", nil, fmt.Errorf(messages.PinInvalidExtrasFmt, raw)
		}
		name = strings.TrimSpace(part[:open])
		for _, extra := range strings.Split(part[open+1:len(part)-1], ",") {
			extra = strings.TrimSpace(extra)
			if !packageNamePattern.MatchString(extra) {
				return "", nil, fmt.Errorf(messages.PinInvalidExtrasFmt, raw)
			}
			extras = append(extras, extra)
		}
	}
	if !packageNamePattern.MatchString(name) {
		return "", nil, fmt.Errorf(messages.PinInvalidNameFmt, raw)
	}
	return name, extras, nil
}
