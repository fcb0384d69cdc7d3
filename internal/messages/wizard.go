package messages

// Wizard messages for the interactive setup flow.
const (
	WizardRequiresTerminal = "the setup wizard requires an interactive terminal"

	WizardFeedURLTitle    = "Package source URL"
	WizardFeedNameTitle   = "Package source name"
	WizardAPIKeyTitle     = "Feed API key (stored in .pakk.env; leave empty to skip)"
	WizardOutputDirTitle  = "Default output directory"
	WizardPrereleaseTitle = "Package versions to install"

	WizardChannelStable     = "Stable versions only"
	WizardChannelPrerelease = "Include prerelease versions"

	WizardSummaryTitle        = "Setup summary"
	WizardPreviewTitle        = "Proposed changes"
	WizardApplyPrompt         = "Write these changes?"
	WizardFirstStepExitPrompt = "Exit the wizard without changes?"
	WizardExitWithoutChanges  = "Exited without changes."
	WizardCompleted           = "Setup complete."
	WizardNoChanges           = "No changes needed. Files already match the selected settings."

	WizardSourceNameRequired = "a source name is required"
	WizardSourceURLRequired  = "a source url is required"

	WizardParseConfigFailedFmt = "pakk.toml could not be parsed: %w"
	WizardInvalidEnvFileFmt    = "invalid env file %s: %w"

	WizardWroteConfigFmt = "Wrote %s\n"
)
