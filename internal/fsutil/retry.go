package fsutil

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"golang.org/x/sys/unix"

	"github.com/conn-castle/pakk/internal/messages"
)

// RetryAttempts and RetryDelay bound the retry window for mutating file
// operations hit by transient contention. Structural errors are never
// retried regardless of these settings.
var (
	RetryAttempts = 3
	RetryDelay    = 50 * time.Millisecond
)

var (
	sleepFn               = time.Sleep
	retryOutput io.Writer = os.Stderr
	retryColor            = color.New(color.FgYellow)
)

// withRetries runs fn up to RetryAttempts times, sleeping RetryDelay between
// attempts that fail with a transient error. Each retry is logged unless
// silent. The last error is returned on exhaustion; structural errors are
// returned immediately.
func withRetries(op string, path string, silent bool, fn func() error) error {
	attempts := RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if !silent {
			_, _ = retryColor.Fprintf(retryOutput, messages.FsysRetryFmt, op, path, attempt, attempts, err)
		}
		sleepFn(RetryDelay)
	}
	return err
}

// isTransient reports whether err is contention worth retrying, as opposed
// to a structural failure like a missing path or denied permission.
func isTransient(err error) bool {
	return errors.Is(err, unix.EBUSY) ||
		errors.Is(err, unix.ETXTBSY) ||
		errors.Is(err, unix.EAGAIN) ||
		errors.Is(err, unix.EINTR)
}
