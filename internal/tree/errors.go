package tree

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrorKind names the category of a traversal failure.
type ErrorKind string

const (
	ErrorKindNone             ErrorKind = ""
	ErrorKindPathNotFound     ErrorKind = "PathNotFound"
	ErrorKindPermissionDenied ErrorKind = "PermissionDenied"
	ErrorKindNotADirectory    ErrorKind = "NotADirectory"
	ErrorKindUnknown          ErrorKind = "Unknown"
)

// Classify maps an error returned by Render onto an ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, fs.ErrNotExist):
		return ErrorKindPathNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorKindPermissionDenied
	case errors.Is(err, syscall.ENOTDIR):
		return ErrorKindNotADirectory
	default:
		return ErrorKindUnknown
	}
}
