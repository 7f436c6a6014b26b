package main

import (
	"errors"
)

// Exit codes for the gtminject CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // No read or write errors (skips are success)
	ExitGeneral = 1 // At least one file failed, or the walk could not start
	ExitUsage   = 2 // Invalid flags or unexpected arguments
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnexpectedArgs) ||
		errors.Is(err, ErrInvalidFormat) {
		return ExitUsage
	}

	return ExitGeneral
}
