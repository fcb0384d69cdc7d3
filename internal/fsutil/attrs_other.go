//go:build !linux

package fsutil

import (
	"fmt"
	"time"

	"github.com/conn-castle/pakk/internal/messages"
)

func platformAttributes(string) Attribute {
	return 0
}

func fileBirthTime(string) (time.Time, bool) {
	return time.Time{}, false
}

func setImmutable(path string, on bool) error {
	if !on {
		return nil
	}
	return fmt.Errorf(messages.FsysAttributeUnsupportedFmt, AttrSystem)
}
