package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/datawire/dlib/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/provision/internal/testutil"
)

func TestExecRunnerSuccess(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	binDir := t.TempDir()
	testutil.WriteRecordingStub(t, binDir, "pip", testutil.RecordingStub{
		Outputs: map[string]string{"list": "numpy 1.26.4"},
	})

	var stdout bytes.Buffer
	err := ExecRunner{}.Run(ctx, Command{
		Name:   filepath.Join(binDir, "pip"),
		Args:   []string{"list"},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "numpy 1.26.4")
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	binDir := t.TempDir()
	testutil.WriteStubWithExit(t, binDir, "pip", 3)

	err := ExecRunner{}.Run(ctx, Command{Name: filepath.Join(binDir, "pip"), Args: []string{"install", "x==1"}})
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected *exec.ExitError in %v", err)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, err.Error(), "install x==1")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	err := ExecRunner{}.Run(ctx, Command{Name: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Equal(t, -1, ExitCode(err))
}

func TestExecRunnerEmptyName(t *testing.T) {
	err := ExecRunner{}.Run(context.Background(), Command{Name: "  "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command name is required")
}

func TestExecRunnerPassesEnv(t *testing.T) {
	ctx := dlog.NewTestContext(t, false)
	var stdout bytes.Buffer
	err := ExecRunner{Env: []string{"PIP_INDEX_URL=https://mirror.example/simple"}}.Run(ctx, Command{
		Name:   "/bin/sh",
		Args:   []string{"-c", `printf '%s' "$PIP_INDEX_URL"`},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/simple", stdout.String())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "pip", Command{Name: "pip"}.String())
	assert.Equal(t, "pip install numpy==1.26.4", Command{Name: "pip", Args: []string{"install", "numpy==1.26.4"}}.String())
}

func TestExitCodeNonExitError(t *testing.T) {
	assert.Equal(t, -1, ExitCode(errors.New("boom")))
	assert.Equal(t, -1, ExitCode(nil))
}

func TestBuildEnv(t *testing.T) {
	base := []string{"PATH=/bin", "PIP_INDEX_URL=https://real.example/simple"}
	additions := map[string]string{
		"PIP_INDEX_URL": "https://file.example/simple",
		"PIP_TIMEOUT":   "60",
		"PIP_EMPTY":     "",
	}

	env := BuildEnv(base, additions)

	value, ok := GetEnv(env, "PIP_INDEX_URL")
	require.True(t, ok)
	assert.Equal(t, "https://real.example/simple", value, "process environment must win")
	value, ok = GetEnv(env, "PIP_TIMEOUT")
	require.True(t, ok)
	assert.Equal(t, "60", value)
	_, ok = GetEnv(env, "PIP_EMPTY")
	assert.False(t, ok)
	assert.Equal(t, "PATH=/bin", base[0], "base must not be modified")
	assert.Len(t, base, 2)
}

func TestBuildEnvNilAdditions(t *testing.T) {
	env := BuildEnv([]string{"PATH=/bin"}, nil)
	assert.Equal(t, []string{"PATH=/bin"}, env)
}

func TestSetEnvUpdatesExisting(t *testing.T) {
	env := SetEnv([]string{"KEY=old", "OTHER=1"}, "KEY", "new")
	value, ok := GetEnv(env, "KEY")
	require.True(t, ok)
	assert.Equal(t, "new", value)
	assert.Len(t, env, 2)
}

func TestGetEnvMissing(t *testing.T) {
	_, ok := GetEnv([]string{"KEY=value", "NOVAL"}, "MISSING")
	assert.False(t, ok)
	_, ok = GetEnv([]string{"NOVAL"}, "NOVAL")
	assert.False(t, ok)
}

func TestLookPath(t *testing.T) {
	binDir := t.TempDir()
	testutil.WriteStub(t, binDir, "pip")
	t.Setenv("PATH", binDir)

	path, err := LookPath("pip")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "/pip"))

	_, err = LookPath("python")
	assert.Error(t, err)
}
