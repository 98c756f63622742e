package messages

// System messages for internal operations.
const (
	// EnvfileLineErrorFmt formats envfile line errors.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "invalid trailing characters after quoted value"

	// RunnerEmptyCommand reports a runner invocation with no executable.
	RunnerEmptyCommand    = "command name is required"
	RunnerStartCommandFmt = "running %s %s"
	RunnerExitedFmt       = "%s exited with code %d"

	// VenvNotActiveErr is the error text for a missing virtual environment.
	VenvNotActiveErr = "virtual environment is not active"
)
