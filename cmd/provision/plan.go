package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/provision"
)

func newPlanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := loadProject(opts)
			if err != nil {
				return err
			}
			cfg := &project.Config
			steps := provision.StepsFromConfig(cfg)
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, messages.PlanHeaderFmt, len(steps), project.Source)
			for _, step := range steps {
				_, _ = color.New(color.FgCyan).Fprintf(out, messages.PlanStepFmt, step.Ordinal, len(steps), step.Label)
				_, _ = fmt.Fprintf(out, messages.PlanArgsFmt, cfg.Tools.Pip, strings.Join(step.Args, " "))
			}
			_, _ = fmt.Fprintf(out, messages.PlanVerifyFmt, cfg.Tools.Python, cfg.Tools.Pip, strings.Join(cfg.Verify.Filters, ", "))
			_, _ = fmt.Fprintf(out, messages.PlanLaunchFmt, cfg.App.Launch)
			return nil
		},
	}
}
