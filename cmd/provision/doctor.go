package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/provision/internal/doctor"
	"github.com/conn-castle/provision/internal/messages"
)

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root, err := getwd()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, root)

			// Later checks need a loaded config.
			allResults, cfg := doctor.CheckConfig(root, opts.configPath)
			if cfg != nil {
				allResults = append(allResults, doctor.CheckEnvironment(cfg, lookupEnv)...)
				allResults = append(allResults, doctor.CheckTools(cfg)...)
				allResults = append(allResults, doctor.CheckPins(cmd.Context(), cfg, newRunner(cfg.Env))...)
			}

			for _, r := range allResults {
				printResult(out, r)
			}

			if doctor.HasProblems(allResults) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		switch {
		case i == 0:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
		case line == "":
			_, _ = fmt.Fprintln(out)
		default:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
		}
	}
}
