package doctor

import (
	"errors"
	"fmt"
	"os"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/runner"
	"github.com/conn-castle/provision/internal/venv"
)

var (
	loadProjectConfigFunc = config.LoadProjectConfig
	lookPathFunc          = runner.LookPath
)

// CheckConfig loads the configuration the provision command would use.
// The config is nil when loading failed; later checks are skipped in that case.
func CheckConfig(root string, explicitPath string) ([]Result, *config.ProjectConfig) {
	cfg, err := loadProjectConfigFunc(root, explicitPath)
	if err != nil {
		result := Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigRecommend,
		}
		if errors.Is(err, config.ErrConfigValidation) {
			if rec := unknownKeyRecommendation(configFilePath(root, explicitPath)); rec != "" {
				result.Recommendation = rec
			}
		}
		return []Result{result}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, len(cfg.Config.Steps)),
	}}, cfg
}

// CheckEnvironment reports whether the configured environment marker is set.
func CheckEnvironment(cfg *config.ProjectConfig, lookup venv.LookupEnvFunc) []Result {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	marker := cfg.Config.Environment.Marker
	path, err := venv.Detect(lookup, marker)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameEnvironment,
			Message:        fmt.Sprintf(messages.DoctorEnvMissingFmt, marker),
			Recommendation: messages.DoctorEnvMissingRecommend,
		}}
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameEnvironment,
		Message:   fmt.Sprintf(messages.DoctorEnvActiveFmt, path),
	}}
}

// CheckTools verifies that the interpreter and package manager resolve on PATH.
func CheckTools(cfg *config.ProjectConfig) []Result {
	tools := []string{cfg.Config.Tools.Python, cfg.Config.Tools.Pip}
	results := make([]Result, 0, len(tools))
	for _, tool := range tools {
		path, err := lookPathFunc(tool)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameTools,
				Message:        fmt.Sprintf(messages.DoctorToolMissingFmt, tool, err),
				Recommendation: messages.DoctorToolMissingRecommend,
			})
			continue
		}
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameTools,
			Message:   fmt.Sprintf(messages.DoctorToolFoundFmt, tool, path),
		})
	}
	return results
}

func configFilePath(root string, explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	return config.DefaultPaths(root).ConfigPath
}
