package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	writeScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteStubExpectArg writes an executable shell stub that succeeds only when expectedArg is present.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubExpectArg(t *testing.T, dir string, name string, expectedArg string) {
	t.Helper()
	writeScript(t, dir, name, fmt.Sprintf("for arg in \"$@\"; do\n  if [ \"$arg\" = %s ]; then exit 0; fi\ndone\nexit 1\n", shellQuote(expectedArg)))
}

// RecordingStub configures WriteRecordingStub.
type RecordingStub struct {
	// LogPath receives one line per invocation: the stub name followed by its arguments.
	LogPath string
	// FailOnArg makes the stub exit 1 when any argument equals it.
	FailOnArg string
	// Outputs maps a first argument (for example "list") to text printed on stdout.
	Outputs map[string]string
}

// WriteRecordingStub writes a stub that logs each invocation and can fail or print canned output.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteRecordingStub(t *testing.T, dir string, name string, opts RecordingStub) {
	t.Helper()
	var b strings.Builder
	if opts.LogPath != "" {
		fmt.Fprintf(&b, "echo %s \"$*\" >> %s\n", shellQuote(name), shellQuote(opts.LogPath))
	}
	if opts.FailOnArg != "" {
		fmt.Fprintf(&b, "for arg in \"$@\"; do\n  if [ \"$arg\" = %s ]; then echo \"stub failure\" >&2; exit 1; fi\ndone\n", shellQuote(opts.FailOnArg))
	}
	if len(opts.Outputs) > 0 {
		keys := make([]string, 0, len(opts.Outputs))
		for key := range opts.Outputs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		b.WriteString("case \"$1\" in\n")
		for _, key := range keys {
			fmt.Fprintf(&b, "  %s)\n    cat <<'STUB_OUTPUT'\n%s\nSTUB_OUTPUT\n    ;;\n", shellQuote(key), strings.TrimRight(opts.Outputs[key], "\n"))
		}
		b.WriteString("esac\n")
	}
	b.WriteString("exit 0\n")
	writeScript(t, dir, name, b.String())
}

// ReadLines returns the non-empty lines of path, or nil when it does not exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

func writeScript(t *testing.T, dir string, name string, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// shellQuote wraps s in single quotes for /bin/sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
