package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/provision/internal/envfile"
	"github.com/conn-castle/provision/internal/messages"
)

//go:embed default.toml
var defaultConfig []byte

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax, filesystem, or other loading errors).
var ErrConfigValidation = errors.New("config validation failed")

var statFunc = os.Stat

// LoadProjectConfig resolves the config for root.
// explicitPath, when non-empty, must exist. Otherwise root/provision.toml is used
// when present and the built-in config when it is not. root/.provision.env is
// optional.
func LoadProjectConfig(root string, explicitPath string) (*ProjectConfig, error) {
	paths := DefaultPaths(root)

	var (
		cfg    *Config
		source string
		err    error
	)
	switch {
	case explicitPath != "":
		cfg, err = LoadConfig(explicitPath)
		source = explicitPath
	case exists(paths.ConfigPath):
		cfg, err = LoadConfig(paths.ConfigPath)
		source = paths.ConfigPath
	default:
		cfg, err = LoadDefaultConfig()
		source = messages.ConfigSourceEmbedded
	}
	if err != nil {
		return nil, err
	}

	env := map[string]string{}
	if exists(paths.EnvPath) {
		env, err = LoadEnv(paths.EnvPath)
		if err != nil {
			return nil, err
		}
	}

	return &ProjectConfig{
		Config: *cfg,
		Env:    env,
		Source: source,
		Root:   root,
	}, nil
}

// LoadConfig reads a provision.toml and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return ParseConfig(data, path)
}

// LoadDefaultConfig returns the built-in config as a validated Config.
func LoadDefaultConfig() (*Config, error) {
	if len(defaultConfig) == 0 {
		return nil, fmt.Errorf(messages.ConfigFailedReadDefaultFmt, fs.ErrNotExist)
	}
	return ParseConfig(defaultConfig, "built-in provision.toml")
}

// LoadEnv reads .provision.env into a key-value map.
func LoadEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigMissingEnvFileFmt, path, err)
	}

	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidEnvFileFmt, path, err)
	}
	return filterPipEnv(env), nil
}

// filterPipEnv restricts .env values to the PIP_ namespace.
func filterPipEnv(env map[string]string) map[string]string {
	if len(env) == 0 {
		return env
	}
	filtered := make(map[string]string, len(env))
	for key, value := range env {
		if strings.HasPrefix(key, "PIP_") {
			filtered[key] = value
		}
	}
	return filtered
}

// ParseConfig parses and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func ParseConfig(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
// toml.Unmarshal silently ignores keys such as a misspelled "package" on a step.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func exists(path string) bool {
	_, err := statFunc(path)
	return err == nil
}
