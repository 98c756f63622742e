package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/conn-castle/provision/internal/runner"
)

// recordingRunner stands in for pip and python.
type recordingRunner struct {
	calls   []string
	env     map[string]string
	failOn  string
	outputs map[string]string
}

func (r *recordingRunner) Run(_ context.Context, cmd runner.Command) error {
	r.calls = append(r.calls, cmd.String())
	for _, arg := range cmd.Args {
		if arg == r.failOn {
			return errors.New("exit status 1")
		}
	}
	if len(cmd.Args) > 0 && cmd.Stdout != nil {
		if out, ok := r.outputs[cmd.Args[0]]; ok {
			_, _ = io.WriteString(cmd.Stdout, out)
		}
	}
	return nil
}

// stubCLI points the command at root with a fake runner and the given environment marker.
func stubCLI(t *testing.T, root string, active bool) *recordingRunner {
	t.Helper()
	fake := &recordingRunner{outputs: map[string]string{
		"list":   "Package Version\n------- -------\nnumpy 1.26.4\nstreamlit 1.36.0\n",
		"freeze": "numpy==1.26.4\npandas==2.2.2\nyfinance==0.2.40\nrequests==2.32.3\nplotly==5.22.0\nray==2.31.0\nstreamlit==1.36.0\n",
	}}

	origGetwd, origLookup, origTerminal, origRunner := getwd, lookupEnv, isTerminal, newRunner
	getwd = func() (string, error) { return root, nil }
	lookupEnv = func(key string) (string, bool) {
		if active && key == "VIRTUAL_ENV" {
			return root + "/venv", true
		}
		return "", false
	}
	isTerminal = func(io.Writer) bool { return true }
	newRunner = func(env map[string]string) runner.Runner {
		fake.env = env
		return fake
	}
	t.Cleanup(func() {
		getwd, lookupEnv, isTerminal, newRunner = origGetwd, origLookup, origTerminal, origRunner
	})
	return fake
}
