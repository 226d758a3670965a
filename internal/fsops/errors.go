package fsops

import (
	"errors"
	"fmt"
)

var (
	// ErrNotDirectory is returned when a path component that must be a
	// directory exists as something else.
	ErrNotDirectory = errors.New("not a directory")

	// ErrParentMissing is returned by WriteFile when the target's parent
	// directory does not exist.
	ErrParentMissing = errors.New("parent directory does not exist")
)

// FilesystemError is the single error kind surfaced by the Materializer.
// Op names the failed operation ("mkdir" or "write"), Path the target.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// IsFilesystemError reports whether err is or wraps a *FilesystemError.
func IsFilesystemError(err error) bool {
	var fe *FilesystemError
	return errors.As(err, &fe)
}
