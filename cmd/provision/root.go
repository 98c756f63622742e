package main

import (
	"os"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/conn-castle/provision/internal/config"
	"github.com/conn-castle/provision/internal/messages"
	"github.com/conn-castle/provision/internal/provision"
	"github.com/conn-castle/provision/internal/runner"
	"github.com/conn-castle/provision/internal/terminal"
)

var (
	getwd      = os.Getwd
	lookupEnv  = os.LookupEnv
	isTerminal = terminal.IsTerminalWriter
	newRunner  = func(env map[string]string) runner.Runner {
		return runner.ExecRunner{Env: runner.BuildEnv(os.Environ(), env)}
	}
)

type rootOptions struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), cmd.ErrOrStderr(), opts.verbose))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, opts)
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", messages.RootConfigFlag)
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, messages.RootVerboseFlag)

	cmd.AddCommand(newPlanCmd(opts), newDoctorCmd(opts))
	return cmd
}

// loadProject resolves the config for the working directory.
func loadProject(opts *rootOptions) (*config.ProjectConfig, error) {
	root, err := getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadProjectConfig(root, opts.configPath)
}

func runProvision(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	project, err := loadProject(opts)
	if err != nil {
		return err
	}
	dlog.Debugf(ctx, "config: %s", project.Source)

	out := cmd.OutOrStdout()
	p, err := provision.New(provision.Options{
		Config:        &project.Config,
		Runner:        newRunner(project.Env),
		LookupEnv:     lookupEnv,
		Out:           out,
		Err:           cmd.ErrOrStderr(),
		QuietProgress: !isTerminal(out),
	})
	if err != nil {
		return err
	}
	if err := p.Run(ctx); err != nil {
		dlog.Debugf(ctx, "provisioning stopped: %v", err)
		return &SilentExitError{Code: 1}
	}
	return nil
}
