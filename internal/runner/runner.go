// Package runner invokes external tools such as pip and python.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/datawire/dlib/dexec"
	"github.com/datawire/dlib/dlog"

	"github.com/conn-castle/provision/internal/messages"
)

// Command describes a single external process invocation.
type Command struct {
	Name   string
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a command to completion and reports its exit status.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes.
type ExecRunner struct {
	// Env is the child environment; nil inherits the current process environment.
	Env []string
}

// Run starts cmd and blocks until it exits.
// A non-zero exit is returned as an error wrapping *exec.ExitError.
func (r ExecRunner) Run(ctx context.Context, cmd Command) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.New(messages.RunnerEmptyCommand)
	}
	dlog.Debugf(ctx, messages.RunnerStartCommandFmt, cmd.Name, strings.Join(cmd.Args, " "))

	proc := dexec.CommandContext(ctx, cmd.Name, cmd.Args...)
	proc.Env = r.Env
	proc.Stdout = cmd.Stdout
	proc.Stderr = cmd.Stderr
	if err := proc.Run(); err != nil {
		if code := ExitCode(err); code > 0 {
			dlog.Debugf(ctx, messages.RunnerExitedFmt, cmd.Name, code)
		}
		return fmt.Errorf("%s: %w", cmd.String(), err)
	}
	return nil
}

// ExitCode returns the child exit code carried by err, or -1 when err does not
// come from an exited process.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// LookPath searches PATH for an executable.
var LookPath = dexec.LookPath
