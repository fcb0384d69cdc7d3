package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "pakk"
	// RootShort is the short description for the root command.
	RootShort         = "Pakk package manager CLI"
	RootMissingConfig = "pakk isn't configured in this directory (missing pakk.toml); run 'pakk init' to configure"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Create a pakk.toml in the current directory"

	InitOverwriteRequiresTerminal = "init overwrite prompts require an interactive terminal; re-run with --force to overwrite without prompts"
	InitOverwritePrompt           = "Overwrite the existing pakk.toml with the template version?"
	InitExistingDiffersHeader     = "Existing pakk.toml differs from the template:"
	InitKeptExisting              = "Kept existing pakk.toml."

	InitFlagForce    = "Overwrite an existing pakk.toml without prompting"
	InitFlagNoWizard = "Skip prompting to run the setup wizard after init"

	// InstallUse is the install command name.
	InstallUse   = "install [package]"
	InstallShort = "Install a package from the configured sources"

	InstallFlagSource      = "Package source(s) to install from, semicolon separated"
	InstallFlagVersion     = "Specific package version to install"
	InstallFlagOutputDir   = "Directory to install the package into"
	InstallFlagPrerelease  = "Include prerelease package versions"
	InstallFlagForce       = "Reinstall even when the package is already present"
	InstallPackageRequired = "a package id is required"

	// PackUse is the pack command name.
	PackUse   = "pack [manifest]"
	PackShort = "Build a package from a manifest"

	PackFlagOutputDir      = "Directory to write the packed package into"
	PackFlagBasePath       = "Base path the manifest's file entries are resolved against"
	PackManifestRequired   = "a manifest path is required"
	PackManifestMissingFmt = "manifest %s does not exist"

	// PushUse is the push command name.
	PushUse   = "push [package]"
	PushShort = "Push a packed package to a source"

	PushFlagSource        = "Source to push the package to"
	PushFlagTimeout       = "Push timeout in seconds"
	PushPackageRequired   = "a package file is required"
	PushPackageMissingFmt = "package %s does not exist"

	// SourceUse is the source command name.
	SourceUse   = "source"
	SourceShort = "Manage the configured package sources"

	SourceAddUse      = "add [name] [url]"
	SourceAddShort    = "Add a package source to pakk.toml"
	SourceRemoveUse   = "remove [name]"
	SourceRemoveShort = "Remove a package source from pakk.toml"
	SourceListUse     = "list"
	SourceListShort   = "List the configured package sources"

	SourceAddArgs      = "source add requires a name and a url"
	SourceRemoveArgs   = "source remove requires a name"
	SourceAddedFmt     = "Added source %s (%s)\n"
	SourceRemovedFmt   = "Removed source %s\n"
	SourceListEntryFmt = "%s\t%s\n"
	SourceListEmpty    = "No sources configured."

	// ToolNotFoundFmt reports a wrapped executable missing from the search path.
	ToolNotFoundFmt = "required tool %s was not found on PATH"
	ToolFailedFmt   = "%s failed: %w"
	RunningToolFmt  = "Running: %s %s\n"

	QuietFlag       = "Suppress retry and progress output"
	WizardRunPrompt = "Run the setup wizard now? (recommended)"

	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."
	WroteFileFmt          = "Wrote %s\n"
)
