package messages

// Provision messages printed while installing and verifying packages.
const (
	ProvisionVenvDetectedFmt = "✓ Virtual environment detected: %s\n"
	ProvisionVenvMissingFmt  = "⚠ No virtual environment detected (%s is not set).\n"
	ProvisionVenvRemediation = "Create and activate one before running provision:\n" +
		"  python -m venv venv\n" +
		"  source venv/bin/activate      (Windows: venv\\Scripts\\activate)"
	ProvisionStepFmt         = "[%d/%d] %s...\n"
	ProvisionStepFailedFmt   = "✗ Step %d/%d failed: %s\n"
	ProvisionVerifyHeader    = "Verifying installation..."
	ProvisionPackagesFmt     = "Installed packages matching: %s\n"
	ProvisionNoPackages      = "  (no matching packages found)"
	ProvisionVerifyFailedFmt = "✗ Verification failed: %v\n"
	ProvisionComplete        = "✓ All dependencies installed successfully!"
	ProvisionUsageHintFmt    = "Run the application with: %s\n"

	// ProvisionStepErrorFmt formats a failed step as an error string.
	ProvisionStepErrorFmt         = "step %d/%d (%s) failed: %v"
	ProvisionErrBootstrapFailed   = "bootstrap upgrade failed"
	ProvisionErrStepFailed        = "install step failed"
	ProvisionErrVerifyFailed      = "verification failed"
	ProvisionVerifyVersionFailFmt = "interpreter version query failed: %w"
	ProvisionVerifyListFailFmt    = "package listing failed: %w"
	ProvisionRunnerRequired       = "provision runner is required"
	ProvisionConfigRequired       = "provision config is required"
)
