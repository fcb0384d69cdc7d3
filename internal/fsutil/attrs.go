package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/pakk/internal/messages"
)

// Attribute identifies filesystem attributes of a path. Attributes combine
// as a bitset.
type Attribute uint32

const (
	// AttrReadOnly reflects the absence of the owner write permission.
	AttrReadOnly Attribute = 1 << iota
	// AttrHidden follows the dotfile naming convention.
	AttrHidden
	// AttrSystem maps to the host's immutable inode flag where exposed.
	AttrSystem
	// AttrEncrypted maps to the host's encrypted inode flag where exposed.
	AttrEncrypted
)

var attributeNames = []struct {
	attr Attribute
	name string
}{
	{AttrReadOnly, "readonly"},
	{AttrHidden, "hidden"},
	{AttrSystem, "system"},
	{AttrEncrypted, "encrypted"},
}

func (a Attribute) String() string {
	var names []string
	for _, entry := range attributeNames {
		if a&entry.attr != 0 {
			names = append(names, entry.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// Attributes reports the attribute set of path.
func Attributes(path string) (Attribute, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	var attrs Attribute
	if info.Mode().Perm()&0o200 == 0 {
		attrs |= AttrReadOnly
	}
	if strings.HasPrefix(filepath.Base(path), ".") {
		attrs |= AttrHidden
	}
	return attrs | platformAttributes(path), nil
}

// IsReadOnlyFile reports whether path carries the read-only attribute.
func IsReadOnlyFile(path string) bool { return hasAttribute(path, AttrReadOnly) }

// IsHiddenFile reports whether path carries the hidden attribute.
func IsHiddenFile(path string) bool { return hasAttribute(path, AttrHidden) }

// IsSystemFile reports whether path carries the system attribute.
func IsSystemFile(path string) bool { return hasAttribute(path, AttrSystem) }

// IsEncryptedFile reports whether path carries the encrypted attribute.
func IsEncryptedFile(path string) bool { return hasAttribute(path, AttrEncrypted) }

func hasAttribute(path string, attr Attribute) bool {
	attrs, err := Attributes(path)
	return err == nil && attrs&attr != 0
}

// EnsureAttributes adds the given attributes to path. Attributes the host
// cannot express as state changes (hidden, encrypted) are an error.
func EnsureAttributes(path string, attrs Attribute) error {
	if unsupported := attrs & (AttrHidden | AttrEncrypted); unsupported != 0 {
		return fmt.Errorf(messages.FsysAttributeUnsupportedFmt, unsupported)
	}
	if attrs&AttrReadOnly != 0 {
		if err := chmodWritable(path, false); err != nil {
			return err
		}
	}
	if attrs&AttrSystem != 0 {
		return setImmutable(path, true)
	}
	return nil
}

// RemoveAttributes clears the given attributes on path. The immutable flag
// is cleared best-effort so delete overrides keep working on filesystems
// that do not support it; hidden and encrypted cannot be cleared and are
// skipped.
func RemoveAttributes(path string, attrs Attribute) error {
	if attrs&AttrSystem != 0 {
		_ = setImmutable(path, false)
	}
	if attrs&AttrReadOnly != 0 {
		return chmodWritable(path, true)
	}
	return nil
}

// chmodWritable toggles the write bits on path. Directories regain their
// owner traversal bits as well so their entries stay deletable.
func chmodWritable(path string, writable bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode().Perm()
	if writable {
		mode |= 0o200
		if info.IsDir() {
			mode |= 0o700
		}
	} else {
		mode &^= 0o222
	}
	return os.Chmod(path, mode)
}
