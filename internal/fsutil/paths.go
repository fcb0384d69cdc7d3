package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

var executablePathFn = os.Executable

// Combine joins any number of path fragments into a single path.
func Combine(parts ...string) string {
	return filepath.Join(parts...)
}

// FullPath resolves path to an absolute, fully-qualified path, expanding a
// leading ~ to the user's home directory.
func FullPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}

// TempDir returns the host's temp directory.
func TempDir() string {
	return os.TempDir()
}

// Separator returns the host's path separator.
func Separator() rune {
	return os.PathSeparator
}

// LocateExecutable searches for an executable called name in the current
// directory, the directory containing the running process, and then each
// directory named in PATH, trying the bare name and every extension named
// in PATHEXT. Returns the first match and whether one was found.
func LocateExecutable(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if exe, err := executablePathFn(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	dirs = append(dirs, filepath.SplitList(os.Getenv("PATH"))...)

	exts := executableExtensions()
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, ext := range exts {
			candidate := filepath.Join(dir, name+ext)
			if isExecutableFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// executableExtensions returns the candidate suffixes for executable lookup:
// the bare name first, then each PATHEXT entry normalized to a lowercase
// dotted extension.
func executableExtensions() []string {
	exts := []string{""}
	for _, ext := range filepath.SplitList(os.Getenv("PATHEXT")) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	return exts
}

// isExecutableFile reports whether path is a regular file with an execute bit.
func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
