package fsutil

import "debug/buildinfo"

// FileVersion returns the embedded module version of a Go binary at path.
// Best-effort: files without readable build metadata yield the empty string.
func FileVersion(path string) string {
	info, err := buildinfo.ReadFile(path)
	if err != nil {
		return ""
	}
	return info.Main.Version
}
