package doctor

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/runner"
)

func requireResultByCheckName(t *testing.T, results []Result, checkName string) Result {
	t.Helper()
	var matches []Result
	for _, result := range results {
		if result.CheckName == checkName {
			matches = append(matches, result)
		}
	}
	require.Len(t, matches, 1, "expected one %s result in %#v", checkName, results)
	return matches[0]
}

func defaultProjectConfig(t *testing.T) *config.ProjectConfig {
	t.Helper()
	cfg, err := config.LoadDefaultConfig()
	require.NoError(t, err)
	return &config.ProjectConfig{Config: *cfg, Source: "built-in"}
}

func stubLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPathFunc
	lookPathFunc = fn
	t.Cleanup(func() { lookPathFunc = orig })
}

func foundEverywhere(name string) (string, error) {
	return "/venv/bin/" + name, nil
}

// freezeRunner answers `pip freeze` with canned output.
type freezeRunner struct {
	output string
	err    error
	calls  []runner.Command
}

func (f *freezeRunner) Run(_ context.Context, cmd runner.Command) error {
	f.calls = append(f.calls, cmd)
	if f.err != nil {
		return f.err
	}
	_, err := io.WriteString(cmd.Stdout, f.output)
	return err
}

var errFreeze = errors.New("exit status 2")
