package provision

import (
	"errors"
	"fmt"

	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/venv"
)

// Fatal outcomes of a run. Every one of them stops the run immediately.
var (
	// ErrEnvironmentNotActive means no package manager invocation happened.
	ErrEnvironmentNotActive = venv.ErrNotActive
	// ErrBootstrapUpgradeFailed matches a StepError for the bootstrap step.
	ErrBootstrapUpgradeFailed = errors.New(messages.ProvisionErrBootstrapFailed)
	// ErrStepInstallFailed matches a StepError for any install step.
	ErrStepInstallFailed = errors.New(messages.ProvisionErrStepFailed)
	// ErrVerificationFailed means every step succeeded but the post-install queries did not.
	ErrVerificationFailed = errors.New(messages.ProvisionErrVerifyFailed)
)

// StepError reports the step that stopped the run.
type StepError struct {
	Step  Step
	Total int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf(messages.ProvisionStepErrorFmt, e.Step.Ordinal, e.Total, e.Step.Label, e.Err)
}

// Unwrap exposes the runner error, typically wrapping *exec.ExitError.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Is matches ErrBootstrapUpgradeFailed or ErrStepInstallFailed by step kind.
func (e *StepError) Is(target error) bool {
	switch target {
	case ErrBootstrapUpgradeFailed:
		return e.Step.Kind == KindBootstrap
	case ErrStepInstallFailed:
		return e.Step.Kind != KindBootstrap
	}
	return false
}
