package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/provision/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if strings.TrimSpace(c.Tools.Python) == "" {
		return fmt.Errorf(messages.ConfigToolRequiredFmt, path, "python")
	}
	if strings.TrimSpace(c.Tools.Pip) == "" {
		return fmt.Errorf(messages.ConfigToolRequiredFmt, path, "pip")
	}
	if strings.TrimSpace(c.Environment.Marker) == "" {
		return fmt.Errorf(messages.ConfigMarkerRequiredFmt, path)
	}

	if err := validateSteps(path, c.Steps); err != nil {
		return err
	}

	if len(c.Verify.Filters) == 0 {
		return fmt.Errorf(messages.ConfigVerifyFiltersFmt, path)
	}
	for i, filter := range c.Verify.Filters {
		if strings.TrimSpace(filter) == "" {
			return fmt.Errorf(messages.ConfigVerifyFilterBlankFmt, path, i)
		}
	}

	if strings.TrimSpace(c.App.Launch) == "" {
		return fmt.Errorf(messages.ConfigLaunchRequiredFmt, path)
	}
	return nil
}

// validateSteps checks step ordering and that every install package is an exact pin.
// The bootstrap step must come first and appear once; a project may be pinned by one step only.
func validateSteps(path string, steps []StepConfig) error {
	if len(steps) == 0 {
		return fmt.Errorf(messages.ConfigStepsRequiredFmt, path)
	}
	if steps[0].Kind != StepKindBootstrap {
		return fmt.Errorf(messages.ConfigBootstrapMissingFmt, path)
	}

	pinnedBy := make(map[string]int)
	for i, step := range steps {
		if strings.TrimSpace(step.Label) == "" {
			return fmt.Errorf(messages.ConfigStepLabelRequiredFmt, path, i)
		}
		if len(step.Packages) == 0 {
			return fmt.Errorf(messages.ConfigStepPackagesFmt, path, i)
		}
		switch step.Kind {
		case StepKindBootstrap:
			if i != 0 {
				return fmt.Errorf(messages.ConfigBootstrapFirstFmt, path, i)
			}
			for j, raw := range step.Packages {
				if _, err := ParseBareName(raw); err != nil {
					return fmt.Errorf(messages.ConfigBootstrapPackageFmt, path, i, j, raw)
				}
			}
		case StepKindInstall:
			for j, raw := range step.Packages {
				pin, err := ParsePin(raw)
				if err != nil {
					return fmt.Errorf(messages.ConfigStepPinInvalidFmt, path, i, j, err)
				}
				if first, ok := pinnedBy[pin.Key()]; ok {
					return fmt.Errorf(messages.ConfigDuplicatePackageFmt, path, i, pin.Name, first)
				}
				pinnedBy[pin.Key()] = i
			}
		default:
			return fmt.Errorf(messages.ConfigStepKindInvalidFmt, path, i)
		}
	}
	return nil
}
