package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conn-castle/provision/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output.
// Used when the failure has already been printed.
type SilentExitError struct {
	Code int
}

func (e SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	cmd.SetArgs(args[1:])
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and exits non-zero on any fatal error.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if len(args) == 0 {
		args = []string{messages.RootUse}
	}
	if err := executeFunc(args, stdout, stderr); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
