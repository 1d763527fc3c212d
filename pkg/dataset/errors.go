package dataset

import (
	"errors"
	"fmt"
)

var ErrFileAccess = errors.New("dataset file could not be read")

// FileAccessError is returned when the backing file is missing, unreadable or
// not valid CSV.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrFileAccess, e.Path, e.Err)
}

func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
