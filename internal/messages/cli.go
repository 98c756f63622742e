package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "provision"
	// RootShort is the short description for the root command.
	RootShort = "Install the pinned Python dependencies into the active virtual environment"
	RootLong  = "Install the pinned Python dependencies of the investment advisor application into the\n" +
		"active virtual environment, one step at a time, stopping at the first failure."
	RootVersionFlag = "Print version and exit"
	RootConfigFlag  = "Path to a provision.toml overriding the built-in step list"
	RootVerboseFlag = "Log every command invocation to stderr"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PlanUse is the plan command name.
	PlanUse       = "plan"
	PlanShort     = "Print the install steps without running them"
	PlanHeaderFmt = "Provisioning plan (%d steps, config: %s)\n"
	PlanStepFmt   = "[%d/%d] %s\n"
	PlanArgsFmt   = "      %s %s\n"
	PlanVerifyFmt = "Verify: %s --version; %s list (filter: %s)\n"
	PlanLaunchFmt = "Launch: %s\n"

	// ConfigSourceEmbedded names the built-in config in output.
	ConfigSourceEmbedded = "built-in"
)
