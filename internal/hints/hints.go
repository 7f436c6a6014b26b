// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"

	"github.com/alnah/go-gtminject/internal/fileutil"
)

// ForReadError returns hints for a file that could not be read as text.
func ForReadError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fileutil.ErrInvalidUTF8):
		return format("re-save the file as UTF-8 and run again")
	case errors.Is(err, fs.ErrPermission):
		return format("check read permission on the file")
	case errors.Is(err, fs.ErrNotExist):
		return format("file vanished during the walk or is a broken symlink")
	}
	return ""
}

// ForWriteError returns hints for a file that could not be written back.
// The original content is untouched in every case.
func ForWriteError(err error) string {
	var hints []string

	switch {
	case err == nil:
		return ""
	case errors.Is(err, fs.ErrPermission):
		hints = append(hints, "check write permission on the file")
	case errors.Is(err, syscall.EROFS):
		hints = append(hints, "filesystem is mounted read-only")
	case errors.Is(err, fileutil.ErrIsDirectory):
		hints = append(hints, "path ends in .html but is a directory")
	}

	if len(hints) > 0 {
		hints = append(hints, "file left unchanged")
	}
	return formatHints(hints)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
