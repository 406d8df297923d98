package processor

import (
	"errors"
	"fmt"
)

var ErrFileNotFound = errors.New("file not found")

// FileNotFoundError reports a source file that is missing or unreadable.
type FileNotFoundError struct {
	Path string
	Err  error
}

func (e *FileNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("file not found: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileNotFoundError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrFileNotFound, e.Err}
	}
	return []error{ErrFileNotFound}
}
