package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/text/encoding/unicode"

	"github.com/conn-castle/pakk/internal/messages"
)

var (
	renameFn = os.Rename
	removeFn = os.Remove
	flockFn  = unix.Flock
)

// Encoding selects the on-disk text encoding for WriteFileText.
type Encoding int

const (
	// EncodingUTF8 writes UTF-8 without a byte order mark.
	EncodingUTF8 Encoding = iota
	// EncodingUTF8BOM writes UTF-8 with a leading byte order mark.
	EncodingUTF8BOM
	// EncodingUTF16LE writes little-endian UTF-16 with a byte order mark.
	EncodingUTF16LE
	// EncodingUTF16BE writes big-endian UTF-16 with a byte order mark.
	EncodingUTF16BE
)

// encodeText renders text in the selected encoding.
func (e Encoding) encodeText(text string) ([]byte, error) {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder().Bytes([]byte(text))
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	default:
		return []byte(text), nil
	}
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FileName returns the final element of path.
func FileName(path string) string {
	return filepath.Base(path)
}

// FileStem returns the final element of path without its extension.
func FileStem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// FileExtension returns the extension of path, including the dot.
func FileExtension(path string) string {
	return filepath.Ext(path)
}

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// FileModTime returns the last modification time of the file at path.
func FileModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// OldestFileTime returns the older of the file's creation and modification
// timestamps. On filesystems that do not record a birth time the
// modification time is returned.
func OldestFileTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	mod := info.ModTime()
	if birth, ok := fileBirthTime(path); ok && birth.Before(mod) {
		return birth, nil
	}
	return mod, nil
}

// MoveFile moves src to dst, retrying transient contention and failing loudly
// when retries are exhausted. A cross-device rename falls back to
// copy-and-delete.
func MoveFile(src string, dst string, opts Options) error {
	err := withRetries("move file", src, opts.Silent, func() error {
		return renameFn(src, dst)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.EXDEV) {
		if copyErr := CopyFile(src, dst, Options{Silent: opts.Silent, Overwrite: true}); copyErr != nil {
			return copyErr
		}
		return DeleteFile(src, opts)
	}
	return err
}

// CopyFile copies src to dst. Without Overwrite an existing destination is
// an error before any data is touched.
func CopyFile(src string, dst string, opts Options) error {
	if !opts.Overwrite && FileExists(dst) {
		return fmt.Errorf(messages.FsysDestinationExistsFmt, dst)
	}
	return withRetries("copy file", src, opts.Silent, func() error {
		return copyFileOnce(src, dst)
	})
}

// CopyFileUnsafe copies best-effort and reports success instead of failing.
// Intended for call sites that must not abort on a copy failure.
func CopyFileUnsafe(src string, dst string, opts Options) bool {
	return CopyFile(src, dst, opts) == nil
}

// copyFileOnce performs a single copy attempt, preserving the source mode.
func copyFileOnce(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// ReplaceFile replaces dst with src. When backup is non-empty and dst exists,
// the original destination is copied to backup first.
func ReplaceFile(src string, dst string, backup string, opts Options) error {
	if backup != "" && FileExists(dst) {
		if err := CopyFile(dst, backup, Options{Silent: opts.Silent, Overwrite: true}); err != nil {
			return err
		}
	}
	return MoveFile(src, dst, Options{Silent: opts.Silent})
}

// DeleteFile removes the file at path, retrying transient contention. With
// OverrideAttributes a permission failure clears blocking attributes before
// one more retry round.
func DeleteFile(path string, opts Options) error {
	err := withRetries("delete file", path, opts.Silent, func() error {
		return removeFn(path)
	})
	if err != nil && opts.OverrideAttributes && errors.Is(err, fs.ErrPermission) {
		if clearErr := RemoveAttributes(path, AttrReadOnly|AttrSystem); clearErr == nil {
			err = withRetries("delete file", path, opts.Silent, func() error {
				return removeFn(path)
			})
		}
	}
	return err
}

// DeleteFileChecked removes the file at path, treating absence as success.
func DeleteFileChecked(path string, opts Options) error {
	err := DeleteFile(path, opts)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// CreateFile creates (or truncates) path and returns a writable handle.
func CreateFile(path string) (*os.File, error) {
	return os.Create(path)
}

// ReadFileText reads the whole file at path as text.
func ReadFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadFileBytes reads the whole file at path as raw bytes.
func ReadFileBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// OpenFileReadOnly opens the file at path for reading.
func OpenFileReadOnly(path string) (*os.File, error) {
	return os.Open(path)
}

// OpenFileExclusive opens path for read/write, creating it when missing, and
// takes an exclusive advisory lock so no other cooperating process can open
// it concurrently. Closing the returned handle releases the lock.
func OpenFileExclusive(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.FsysLockedFmt, path, err)
	}
	return file, nil
}

// WriteFileText writes text to path in the selected encoding.
func WriteFileText(path string, text string, enc Encoding, opts Options) error {
	data, err := enc.encodeText(text)
	if err != nil {
		return err
	}
	return withRetries("write file", path, opts.Silent, func() error {
		return os.WriteFile(path, data, 0o644)
	})
}

// WriteFileFrom streams the bytes produced by open into path. open is
// invoked once per attempt so a retried write never reuses a consumed
// reader.
func WriteFileFrom(path string, open func() (io.ReadCloser, error), opts Options) error {
	return withRetries("write file", path, opts.Silent, func() error {
		src, err := open()
		if err != nil {
			return err
		}
		defer func() { _ = src.Close() }()
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return err
		}
		return out.Close()
	})
}

// WriteFileAtomic writes data to filename via a temp file and rename so
// readers never observe a partial write.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
