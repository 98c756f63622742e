package testutil

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStubExitCodes(t *testing.T) {
	dir := t.TempDir()
	WriteStub(t, dir, "ok-stub")
	WriteStubWithExit(t, dir, "exit-stub", 7)

	info, err := os.Stat(filepath.Join(dir, "ok-stub"))
	if err != nil {
		t.Fatalf("stat stub: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Fatalf("expected mode 0755, got %#o", info.Mode().Perm())
	}
	if err := exec.Command(filepath.Join(dir, "ok-stub")).Run(); err != nil {
		t.Fatalf("expected success exit, got %v", err)
	}

	err = exec.Command(filepath.Join(dir, "exit-stub")).Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *exec.ExitError, got %T", err)
	}
	if exitErr.ExitCode() != 7 {
		t.Fatalf("expected exit code 7, got %d", exitErr.ExitCode())
	}
}

func TestWriteStubExpectArg(t *testing.T) {
	dir := t.TempDir()
	stubPath := filepath.Join(dir, "arg-stub")
	WriteStubExpectArg(t, dir, "arg-stub", "--version")

	if err := exec.Command(stubPath, "--version").Run(); err != nil {
		t.Fatalf("expected success with required arg, got %v", err)
	}
	if err := exec.Command(stubPath, "--missing").Run(); err == nil {
		t.Fatal("expected non-zero exit without required arg")
	}
}

func TestWriteRecordingStub(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	WriteRecordingStub(t, dir, "pip", RecordingStub{
		LogPath:   logPath,
		FailOnArg: "broken==1.0",
		Outputs:   map[string]string{"list": "Package Version\nnumpy   1.26.4\n"},
	})
	stubPath := filepath.Join(dir, "pip")

	out, err := exec.Command(stubPath, "list").Output()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(string(out), "numpy   1.26.4") {
		t.Fatalf("expected canned output, got %q", out)
	}

	out, err = exec.Command(stubPath, "install", "ok==1.0").Output()
	if err != nil {
		t.Fatalf("install: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no output for install, got %q", out)
	}

	if err := exec.Command(stubPath, "install", "broken==1.0").Run(); err == nil {
		t.Fatal("expected failure for FailOnArg")
	}

	lines := ReadLines(t, logPath)
	want := []string{"pip list", "pip install ok==1.0", "pip install broken==1.0"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Fatalf("expected calls %v, got %v", want, lines)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	if lines := ReadLines(t, filepath.Join(t.TempDir(), "absent.log")); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}

func TestShellQuote(t *testing.T) {
	if got := shellQuote("it's"); got != `'it'"'"'s'` {
		t.Fatalf("unexpected quoting: %s", got)
	}
}

func TestWithWorkingDirRestoresOriginal(t *testing.T) {
	targetDir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd before test: %v", err)
	}

	var observedDir string
	WithWorkingDir(t, targetDir, func() {
		observedDir, err = os.Getwd()
		if err != nil {
			t.Fatalf("getwd inside callback: %v", err)
		}
	})

	if resolve(observedDir) != resolve(targetDir) {
		t.Fatalf("expected callback cwd %q, got %q", targetDir, observedDir)
	}
	finalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd after callback: %v", err)
	}
	if resolve(finalDir) != resolve(origDir) {
		t.Fatalf("expected cwd restored to %q, got %q", origDir, finalDir)
	}
}

func resolve(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}
