package config

import "path/filepath"

// Paths holds resolved paths for config files.
type Paths struct {
	Root       string
	ConfigPath string
	EnvPath    string
}

// DefaultPaths returns the default config paths for a working directory.
func DefaultPaths(root string) Paths {
	return Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, "provision.toml"),
		EnvPath:    filepath.Join(root, ".provision.env"),
	}
}
