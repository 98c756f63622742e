package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the environment, tools, and installed pins without changing anything"

	DoctorHealthCheckFmt = "Checking provisioning health in %s...\n"

	DoctorCheckNameConfig      = "Config"
	DoctorCheckNameEnvironment = "Environment"
	DoctorCheckNameTools       = "Tools"
	DoctorCheckNamePins        = "Pins"

	DoctorConfigLoadedFmt     = "Configuration loaded (%d steps)"
	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigRecommend     = "Fix provision.toml or remove it to use the built-in step list."

	DoctorUnknownKeysHeaderFmt = "Remove or rename these keys in %s:"
	DoctorUnknownKeyAllowedFmt = " (allowed keys: %s)"
	DoctorUnknownKeySuggestFmt = " (did you mean %s?)"

	DoctorEnvActiveFmt          = "Virtual environment active: %s"
	DoctorEnvMissingFmt         = "%s is not set"
	DoctorEnvMissingRecommend   = "Run `python -m venv venv` and `source venv/bin/activate`."
	DoctorToolFoundFmt          = "%s found at %s"
	DoctorToolMissingFmt        = "%s not found on PATH: %v"
	DoctorToolMissingRecommend  = "Activate the virtual environment so its bin directory is first on PATH."
	DoctorPinsMatchFmt          = "All %d pinned packages installed at their pinned versions"
	DoctorPinsDriftFmt          = "%d of %d pinned packages missing or at a different version"
	DoctorPinsDriftRecommend    = "Run `provision` to reinstall the pinned versions."
	DoctorPinsFreezeFailedFmt   = "Failed to read installed packages: %v"
	DoctorPinsFreezeRecommend   = "Ensure pip runs inside the virtual environment."
	DoctorPinsSkippedNoTool     = "Skipped: package manager unavailable"
	DoctorDriftExpectedLabel    = "pinned"
	DoctorDriftInstalledLabel   = "installed"
	DoctorStatusOKLabel         = "[OK]"
	DoctorStatusWarnLabel       = "[WARN]"
	DoctorStatusFailLabel       = "[FAIL]"
	DoctorResultLineFmt         = "%s %-12s %s\n"
	DoctorRecommendationPrefix  = "       → "
	DoctorRecommendationIndent  = "         "
	DoctorFailureSummary        = "Some checks failed or reported warnings. Review the output above."
	DoctorFailureError          = "doctor checks failed"
	DoctorSuccessSummary        = "All checks passed."
)
