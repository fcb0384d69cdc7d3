package messages

// Filesystem messages for retry logging and operation failures.
const (
	// FsysRetryFmt announces a retry of a filesystem operation after a transient error.
	FsysRetryFmt = "retrying %s for %s (attempt %d of %d): %v\n"
	// FsysFallbackMoveFmt announces the per-file fallback after a failed directory rename.
	FsysFallbackMoveFmt = "directory rename %s -> %s failed (%v); moving contents file by file\n"

	FsysDestinationExistsFmt = "destination %s already exists"

	FsysLockedFmt = "exclusive open %s: %w"

	FsysAttributeUnsupportedFmt = "attribute %s cannot be changed on this platform"
)
