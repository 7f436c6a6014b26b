// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadText reads the whole file at path and decodes it as UTF-8.
// The file is opened, fully read and closed before returning.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return string(data), nil
}

// Overwrite replaces the content of an existing file in a single write.
// The file keeps its permission bits; it is truncated in place, not renamed.
func Overwrite(path, content string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	// #nosec G306 -- keeps the existing file mode
	return os.WriteFile(path, []byte(content), info.Mode().Perm())
}

// HasSegment reports whether any directory component of path equals name.
// The final element (the file name) is not considered.
//
// Examples:
//   - HasSegment("/site/partials/nav.html", "partials") -> true
//   - HasSegment("/site/partials.html", "partials") -> false
//   - HasSegment("/site/my-partials/nav.html", "partials") -> false
func HasSegment(path, name string) bool {
	dir := filepath.Dir(filepath.Clean(path))
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if part == name {
			return true
		}
	}
	return false
}
