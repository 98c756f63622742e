package doctor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/datawire/dlib/dlog"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/runner"
)

// CheckPins compares every pinned install package with `pip freeze`.
// Drift is a warning whose recommendation carries a unified diff.
func CheckPins(ctx context.Context, cfg *config.ProjectConfig, r runner.Runner) []Result {
	pip := cfg.Config.Tools.Pip
	if _, err := lookPathFunc(pip); err != nil {
		return []Result{{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNamePins,
			Message:   messages.DoctorPinsSkippedNoTool,
		}}
	}

	var stdout, stderr bytes.Buffer
	err := r.Run(ctx, runner.Command{Name: pip, Args: []string{"freeze"}, Stdout: &stdout, Stderr: &stderr})
	if err != nil {
		dlog.Debugf(ctx, "pip freeze stderr: %s", strings.TrimSpace(stderr.String()))
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePins,
			Message:        fmt.Sprintf(messages.DoctorPinsFreezeFailedFmt, err),
			Recommendation: messages.DoctorPinsFreezeRecommend,
		}}
	}

	pins := cfg.Config.Pins()
	installed := ParseFreeze(stdout.String())
	diff, drifted := PinDrift(pins, installed)
	if drifted == 0 {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNamePins,
			Message:   fmt.Sprintf(messages.DoctorPinsMatchFmt, len(pins)),
		}}
	}
	return []Result{{
		Status:         StatusWarn,
		CheckName:      messages.DoctorCheckNamePins,
		Message:        fmt.Sprintf(messages.DoctorPinsDriftFmt, drifted, len(pins)),
		Recommendation: messages.DoctorPinsDriftRecommend + "\n\n" + diff,
	}}
}

// ParseFreeze maps normalized project names to installed versions.
// Direct references ("name @ url") are recorded with the reference as the version;
// editable installs and comments are skipped.
func ParseFreeze(output string) map[string]string {
	installed := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		if name, version, ok := strings.Cut(line, "=="); ok {
			installed[config.NormalizeName(name)] = strings.TrimSpace(version)
			continue
		}
		if name, ref, ok := strings.Cut(line, " @ "); ok {
			installed[config.NormalizeName(name)] = "@ " + strings.TrimSpace(ref)
		}
	}
	return installed
}

// PinDrift renders a unified diff between the pinned and installed versions
// and returns how many pins are missing or different. The diff is empty when
// nothing drifted.
func PinDrift(pins []config.Pin, installed map[string]string) (string, int) {
	var want, have strings.Builder
	drifted := 0
	for _, pin := range pins {
		fmt.Fprintf(&want, "%s==%s\n", pin.Name, pin.Version)
		version, ok := installed[pin.Key()]
		if !ok {
			drifted++
			continue
		}
		if strings.HasPrefix(version, "@ ") {
			drifted++
			fmt.Fprintf(&have, "%s %s\n", pin.Name, version)
			continue
		}
		if pin.SameVersion(version) {
			// Equivalent spellings stay unchanged context in the diff.
			fmt.Fprintf(&have, "%s==%s\n", pin.Name, pin.Version)
			continue
		}
		drifted++
		fmt.Fprintf(&have, "%s==%s\n", pin.Name, version)
	}
	if drifted == 0 {
		return "", 0
	}
	diff := udiff.Unified(messages.DoctorDriftExpectedLabel, messages.DoctorDriftInstalledLabel, want.String(), have.String())
	return strings.TrimRight(diff, "\n"), drifted
}
