package gtminject

import "errors"

// Sentinel errors for per-file failures. Both are recorded in the report,
// never returned from Run.
var (
	ErrReadHTML  = errors.New("failed to read HTML file")
	ErrWriteHTML = errors.New("failed to write HTML file")
)

// ErrRootNotDir is returned by Run when the root is missing or not a directory.
var ErrRootNotDir = errors.New("root is not a directory")
