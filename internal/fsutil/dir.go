package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/pakk/internal/messages"
)

var removeAllFn = os.RemoveAll

// ListFiles returns the files under dir, filtered by opts. Results are full
// paths in directory order.
func ListFiles(dir string, opts ListOptions) ([]string, error) {
	var files []string
	if opts.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if matchEntry(d.Name(), opts) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !matchEntry(entry.Name(), opts) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// ListDirectories returns the subdirectories under dir, filtered by the
// Pattern and Recursive options. Extensions are ignored for directories.
func ListDirectories(dir string, opts ListOptions) ([]string, error) {
	var dirs []string
	if opts.Recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() || path == dir {
				return nil
			}
			if matchEntry(d.Name(), ListOptions{Pattern: opts.Pattern}) {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return dirs, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || !matchEntry(entry.Name(), ListOptions{Pattern: opts.Pattern}) {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, entry.Name()))
	}
	return dirs, nil
}

// matchEntry applies the Pattern and Extensions filters to an entry name.
func matchEntry(name string, opts ListOptions) bool {
	if opts.Pattern != "" {
		ok, err := filepath.Match(opts.Pattern, name)
		if err != nil || !ok {
			return false
		}
	}
	if len(opts.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range opts.Extensions {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}

// DirectoryExists reports whether path names an existing directory.
func DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// EnsureDirectory creates path and any missing parents. An existing
// directory is left untouched.
func EnsureDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// MoveDirectory moves src to dst. A native rename is attempted first; when
// it fails and the fallback is not disabled, the contents are moved file by
// file, directory by directory, and the emptied source is removed. With
// DisableFallback the native rename error is returned unmodified.
func MoveDirectory(src string, dst string, opts Options) error {
	renameErr := withRetries("move directory", src, opts.Silent, func() error {
		return renameFn(src, dst)
	})
	if renameErr == nil {
		return nil
	}
	if opts.DisableFallback {
		return renameErr
	}
	if !opts.Silent {
		_, _ = retryColor.Fprintf(retryOutput, messages.FsysFallbackMoveFmt, src, dst, renameErr)
	}
	if err := fallbackMoveDirectory(src, dst, opts); err != nil {
		return err
	}
	return DeleteDirectory(src, Options{
		Silent:             opts.Silent,
		Recursive:          true,
		OverrideAttributes: opts.OverrideAttributes,
	})
}

// fallbackMoveDirectory moves every file under src into dst individually,
// recreating the directory structure as it goes.
func fallbackMoveDirectory(src string, dst string, opts Options) error {
	if err := EnsureDirectory(dst); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := fallbackMoveDirectory(srcPath, dstPath, opts); err != nil {
				return err
			}
			continue
		}
		if err := MoveFile(srcPath, dstPath, Options{Silent: opts.Silent}); err != nil {
			return err
		}
	}
	return nil
}

// CopyDirectory recursively copies src into dst, honoring the Overwrite flag
// for contained files.
func CopyDirectory(src string, dst string, opts Options) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return EnsureDirectory(target)
		}
		return CopyFile(path, target, opts)
	})
}

// DeleteDirectory removes the directory at path. Without Recursive, a
// non-empty directory fails with the underlying error. With
// OverrideAttributes, blocking attributes are cleared across the tree before
// one more retry round.
func DeleteDirectory(path string, opts Options) error {
	remove := removeFn
	if opts.Recursive {
		remove = removeAllFn
	}
	err := withRetries("delete directory", path, opts.Silent, func() error {
		return remove(path)
	})
	if err != nil && opts.OverrideAttributes {
		if clearErr := clearTreeAttributes(path); clearErr == nil {
			err = withRetries("delete directory", path, opts.Silent, func() error {
				return remove(path)
			})
		}
	}
	return err
}

// DeleteDirectoryChecked removes the directory at path, treating absence as
// success. Calling it twice on an already-deleted path never fails.
func DeleteDirectoryChecked(path string, opts Options) error {
	if !DirectoryExists(path) {
		return nil
	}
	err := DeleteDirectory(path, opts)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// clearTreeAttributes strips delete-blocking attributes from path and
// everything under it.
func clearTreeAttributes(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return RemoveAttributes(p, AttrReadOnly|AttrSystem)
	})
}
