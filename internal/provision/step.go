package provision

import (
	"github.com/conn-castle/provision/internal/config"
)

// StepKind classifies a step for error reporting.
type StepKind string

const (
	// KindBootstrap upgrades the packaging toolchain itself.
	KindBootstrap StepKind = config.StepKindBootstrap
	// KindInstall installs a group of exact pins.
	KindInstall StepKind = config.StepKindInstall
)

// Step is one ordered package-manager invocation.
type Step struct {
	// Ordinal is the 1-based position in the run.
	Ordinal int
	Label   string
	Kind    StepKind
	// Args are passed to the package manager unchanged, e.g. install numpy==1.26.4.
	Args []string
}

// StepsFromConfig builds the ordered step list from a validated config.
func StepsFromConfig(cfg *config.Config) []Step {
	steps := make([]Step, 0, len(cfg.Steps))
	for i, sc := range cfg.Steps {
		step := Step{
			Ordinal: i + 1,
			Label:   sc.Label,
			Kind:    StepKind(sc.Kind),
		}
		switch step.Kind {
		case KindBootstrap:
			step.Args = append([]string{"install", "--upgrade"}, sc.Packages...)
		default:
			step.Args = append([]string{"install"}, sc.Packages...)
		}
		steps = append(steps, step)
	}
	return steps
}

// withProgressBarOff inserts pip's --progress-bar off after the subcommand.
func withProgressBarOff(args []string) []string {
	if len(args) == 0 {
		return args
	}
	out := make([]string, 0, len(args)+2)
	out = append(out, args[0], "--progress-bar", "off")
	return append(out, args[1:]...)
}
