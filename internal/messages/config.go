package messages

// Config messages for loading and validating pakk.toml and .pakk.env.
const (
	ConfigMissingFileFmt    = "read config %s: %w"
	ConfigInvalidConfigFmt  = "parse config %s: %w"
	ConfigMissingEnvFileFmt = "read env file %s: %w"
	ConfigInvalidEnvFileFmt = "parse env file %s: %w"

	ConfigValidationPrefixFmt = "%w: %s"

	ConfigSourceNameRequiredFmt = "source %d: name is required"
	ConfigSourceURLRequiredFmt  = "source %q: url is required"
	ConfigDuplicateSourceFmt    = "source %q is declared more than once"
	ConfigPushTimeoutFmt        = "push timeout must not be negative, got %d"

	ConfigPatchParseFailedFmt = "pakk.toml is not valid TOML: %w"
	ConfigSourceNotFoundFmt   = "source %q not found"

	// EnvfileLineErrorFmt wraps a parse failure with its line number.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=value"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "unexpected content after quoted value"
)
