// Package provision installs the pinned Python dependencies step by step,
// stopping at the first failure, and verifies the result.
package provision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/fatih/color"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/runner"
	"github.com/conn-castle/provision/internal/venv"
)

// Options configures a Provisioner.
type Options struct {
	Config *config.Config
	Runner runner.Runner
	// LookupEnv reads the environment marker; os.LookupEnv in production.
	LookupEnv venv.LookupEnvFunc
	// Out receives status lines and tool stdout.
	Out io.Writer
	// Err receives tool stderr.
	Err io.Writer
	// QuietProgress appends --progress-bar off to install steps.
	QuietProgress bool
}

// Provisioner runs the fixed step list against the package manager.
type Provisioner struct {
	cfg           *config.Config
	runner        runner.Runner
	lookupEnv     venv.LookupEnvFunc
	out           io.Writer
	errOut        io.Writer
	steps         []Step
	quietProgress bool
}

// New returns a Provisioner for the validated cfg in opts.
func New(opts Options) (*Provisioner, error) {
	if opts.Config == nil {
		return nil, errors.New(messages.ProvisionConfigRequired)
	}
	if opts.Runner == nil {
		return nil, errors.New(messages.ProvisionRunnerRequired)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	errOut := opts.Err
	if errOut == nil {
		errOut = out
	}
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &Provisioner{
		cfg:           opts.Config,
		runner:        opts.Runner,
		lookupEnv:     lookupEnv,
		out:           out,
		errOut:        errOut,
		steps:         StepsFromConfig(opts.Config),
		quietProgress: opts.QuietProgress,
	}, nil
}

// Steps returns a copy of the ordered step list.
func (p *Provisioner) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Run checks the environment, runs every step in order, then verifies.
// The first failure is printed and returned; nothing after it runs.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := p.checkEnvironment(ctx); err != nil {
		return err
	}
	for _, step := range p.steps {
		if err := p.runStep(ctx, step); err != nil {
			return err
		}
	}
	if err := p.verify(ctx); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(p.out, messages.ProvisionVerifyFailedFmt, err)
		return err
	}

	_, _ = fmt.Fprintln(p.out)
	_, _ = color.New(color.FgGreen, color.Bold).Fprintln(p.out, messages.ProvisionComplete)
	_, _ = fmt.Fprintf(p.out, messages.ProvisionUsageHintFmt, p.cfg.App.Launch)
	return nil
}

func (p *Provisioner) checkEnvironment(ctx context.Context) error {
	marker := p.cfg.Environment.Marker
	path, err := venv.Detect(p.lookupEnv, marker)
	if err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(p.out, messages.ProvisionVenvMissingFmt, marker)
		_, _ = fmt.Fprintln(p.out, messages.ProvisionVenvRemediation)
		return err
	}
	dlog.Debugf(ctx, "%s=%s", marker, path)
	_, _ = color.New(color.FgGreen).Fprintf(p.out, messages.ProvisionVenvDetectedFmt, path)
	return nil
}

func (p *Provisioner) runStep(ctx context.Context, step Step) error {
	total := len(p.steps)
	_, _ = color.New(color.FgCyan).Fprintf(p.out, messages.ProvisionStepFmt, step.Ordinal, total, step.Label)

	args := step.Args
	if p.quietProgress {
		args = withProgressBarOff(args)
	}
	err := p.runner.Run(ctx, runner.Command{
		Name:   p.cfg.Tools.Pip,
		Args:   args,
		Stdout: p.out,
		Stderr: p.errOut,
	})
	if err != nil {
		_, _ = color.New(color.FgRed).Fprintf(p.out, messages.ProvisionStepFailedFmt, step.Ordinal, total, step.Label)
		return &StepError{Step: step, Total: total, Err: err}
	}
	return nil
}

// verify prints the interpreter version and the installed packages matching the filters.
func (p *Provisioner) verify(ctx context.Context) error {
	_, _ = fmt.Fprintln(p.out)
	_, _ = color.New(color.FgCyan).Fprintln(p.out, messages.ProvisionVerifyHeader)

	err := p.runner.Run(ctx, runner.Command{
		Name:   p.cfg.Tools.Python,
		Args:   []string{"--version"},
		Stdout: p.out,
		Stderr: p.errOut,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, fmt.Errorf(messages.ProvisionVerifyVersionFailFmt, err))
	}

	var listing bytes.Buffer
	err = p.runner.Run(ctx, runner.Command{
		Name:   p.cfg.Tools.Pip,
		Args:   []string{"list"},
		Stdout: &listing,
		Stderr: p.errOut,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerificationFailed, fmt.Errorf(messages.ProvisionVerifyListFailFmt, err))
	}

	filters := p.cfg.Verify.Filters
	_, _ = fmt.Fprintf(p.out, messages.ProvisionPackagesFmt, strings.Join(filters, ", "))
	rows := FilterPackageList(listing.String(), filters)
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(p.out, messages.ProvisionNoPackages)
		return nil
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(p.out, "  %s\n", row)
	}
	return nil
}
