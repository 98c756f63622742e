package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigFailedReadDefaultFmt  = "failed to read built-in config: %w"
	ConfigMissingEnvFileFmt     = "missing env file %s: %w"
	ConfigInvalidEnvFileFmt     = "invalid env file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized keys: %v."
	ConfigValidationGuidance    = "Run 'provision plan' to inspect the resolved steps."
	ConfigToolRequiredFmt       = "%s: tools.%s is required"
	ConfigMarkerRequiredFmt     = "%s: environment.marker is required"
	ConfigStepsRequiredFmt      = "%s: at least one [[steps]] entry is required"
	ConfigStepLabelRequiredFmt  = "%s: steps[%d].label is required"
	ConfigStepKindInvalidFmt    = "%s: steps[%d].kind must be bootstrap or install"
	ConfigStepPackagesFmt       = "%s: steps[%d].packages must not be empty"
	ConfigBootstrapFirstFmt     = "%s: steps[%d] is a bootstrap step; only steps[0] may be the bootstrap step"
	ConfigBootstrapMissingFmt   = "%s: steps[0] must be the bootstrap step (kind = \"bootstrap\")"
	ConfigBootstrapPackageFmt   = "%s: steps[%d].packages[%d] %q must be a bare package name"
	ConfigStepPinInvalidFmt     = "%s: steps[%d].packages[%d]: %w"
	ConfigDuplicatePackageFmt   = "%s: steps[%d] pins %q which is already pinned by steps[%d]"
	ConfigVerifyFiltersFmt      = "%s: verify.filters must not be empty"
	ConfigVerifyFilterBlankFmt  = "%s: verify.filters[%d] must not be blank"
	ConfigLaunchRequiredFmt     = "%s: app.launch is required"

	// PinEmpty reports an empty requirement string.
	PinEmpty                = "empty requirement"
	PinInvalidNameFmt       = "invalid package name in %q"
	PinInvalidExtrasFmt     = "invalid extras in %q"
	PinNotExactFmt          = "requirement %q must be an exact pin (name==version)"
	PinRangeOperatorFmt     = "requirement %q uses %q; only == pins are allowed"
	PinMissingVersionFmt    = "requirement %q has no version after =="
	PinInvalidVersionFmt    = "requirement %q has invalid version %q"
	PinWildcardVersionFmt   = "requirement %q uses a wildcard version"
	PinEnvironmentMarkerFmt = "requirement %q carries an environment marker; markers are not supported"
)
