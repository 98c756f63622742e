// Package envfile reads KEY=VALUE settings files such as .provision.env.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/provision/internal/messages"
)

// Parse reads .env content into a key-value map. Later keys win.
func Parse(content string) (map[string]string, error) {
	return ParseReader(strings.NewReader(content))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (map[string]string, error) {
	env := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// parseLine returns ok=false for blank and comment lines.
func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	key, raw, found := strings.Cut(trimmed, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false, errors.New(messages.EnvfileExpectedKeyValue)
	}

	value, err := parseValue(strings.TrimSpace(raw))
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

// parseValue unquotes raw. Double quotes honor \\, \", \n and \r escapes;
// single quotes are literal. Only whitespace or a # comment may follow the
// closing quote. Unquoted values are taken as-is.
func parseValue(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	quote := raw[0]
	if quote != '"' && quote != '\'' {
		return raw, nil
	}

	var b strings.Builder
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if c == quote {
			rest := strings.TrimSpace(raw[i+1:])
			if rest != "" && !strings.HasPrefix(rest, "#") {
				return "", errors.New(messages.EnvfileInvalidQuotedSuffix)
			}
			return b.String(), nil
		}
		if quote == '"' && c == '\\' && i+1 < len(raw) {
			if decoded, ok := escapes[raw[i+1]]; ok {
				b.WriteByte(decoded)
				i++
				continue
			}
		}
		b.WriteByte(c)
	}
	return "", errors.New(messages.EnvfileUnterminatedQuotedValue)
}

var escapes = map[byte]byte{
	'\\': '\\',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
}
