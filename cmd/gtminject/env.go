package main

import (
	"io"
	"os"

	gtminject "github.com/alnah/go-gtminject"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Getwd  func() (string, error)
	// FileSystem overrides candidate file I/O. Nil uses the real filesystem.
	FileSystem gtminject.FileSystem
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getwd:  os.Getwd,
	}
}
