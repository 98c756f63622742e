package config

// Step kinds accepted in [[steps]].kind.
const (
	StepKindBootstrap = "bootstrap"
	StepKindInstall   = "install"
)

// Config is the decoded provision.toml.
type Config struct {
	Tools       ToolsConfig       `toml:"tools"`
	Environment EnvironmentConfig `toml:"environment"`
	Steps       []StepConfig      `toml:"steps"`
	Verify      VerifyConfig      `toml:"verify"`
	App         AppConfig         `toml:"app"`
}

// ToolsConfig names the executables invoked during provisioning.
type ToolsConfig struct {
	Python string `toml:"python"`
	Pip    string `toml:"pip"`
}

// EnvironmentConfig describes how an active virtual environment is detected.
type EnvironmentConfig struct {
	Marker string `toml:"marker"`
}

// StepConfig is a single [[steps]] entry.
type StepConfig struct {
	Kind     string   `toml:"kind"`
	Label    string   `toml:"label"`
	Packages []string `toml:"packages"`
}

// VerifyConfig controls the post-install package listing.
type VerifyConfig struct {
	Filters []string `toml:"filters"`
}

// AppConfig holds the launch hint printed after a successful run.
type AppConfig struct {
	Launch string `toml:"launch"`
}

// ProjectConfig is the resolved configuration for a working directory.
type ProjectConfig struct {
	Config Config
	// Env holds PIP_* values from .provision.env.
	Env map[string]string
	// Source is the config file path, or messages.ConfigSourceEmbedded.
	Source string
	Root   string
}

// Pins returns every install-step pin in step order.
// Call only on a validated config; unparseable entries are skipped.
func (c *Config) Pins() []Pin {
	var pins []Pin
	for _, step := range c.Steps {
		if step.Kind != StepKindInstall {
			continue
		}
		for _, raw := range step.Packages {
			pin, err := ParsePin(raw)
			if err != nil {
				continue
			}
			pins = append(pins, pin)
		}
	}
	return pins
}
