// Package fsutil is the filesystem operation layer for pakk commands. It
// provides retriable, attribute-aware primitives for files and directories,
// path combination and resolution, and executable lookup.
//
// Mutating operations accept an Options value carrying the per-call toggles
// (Silent, Overwrite, Recursive, OverrideAttributes, DisableFallback).
// Transient contention, such as a scanner or indexer briefly holding a
// handle, is retried a bounded number of times with a short delay;
// structural errors (missing paths, permission denied, full disks) surface
// immediately and unmodified.
package fsutil

// Options carries the per-call toggles for mutating operations.
type Options struct {
	// Silent suppresses retry and fallback logging. Commands performing
	// expected-to-contend operations (repeated installs in automation) set
	// it so their output stays clean.
	Silent bool
	// Overwrite permits copy and replace operations to clobber an existing
	// destination.
	Overwrite bool
	// Recursive removes a non-empty directory entirely.
	Recursive bool
	// OverrideAttributes clears blocking attributes (read-only, immutable)
	// before retrying a failed delete.
	OverrideAttributes bool
	// DisableFallback turns off the per-file fallback for directory moves;
	// the native rename error is then returned unmodified.
	DisableFallback bool
}

// ListOptions filters directory listings.
type ListOptions struct {
	// Pattern is a glob matched against entry names; empty matches all.
	Pattern string
	// Extensions keeps only files whose extension matches one of the given
	// values (with or without a leading dot, compared case-insensitively).
	Extensions []string
	// Recursive descends into subdirectories.
	Recursive bool
}
