package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Report formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// Sentinel errors for argument handling.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnexpectedArgs = errors.New("unexpected arguments: the working directory is always the root")
	ErrInvalidFormat  = errors.New("invalid report format")
)

// cliFlags holds all command-line flags. None of them changes which files
// are modified, only how the run is reported.
type cliFlags struct {
	quiet   bool
	verbose bool
	noColor bool
	version bool
	format  string
}

// parseFlags parses args (without the program name) and returns positional args.
// Returns flag.ErrHelp when -h or --help is given.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("gtminject", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{}

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every decision to stderr")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.StringVarP(&f.format, "format", "f", formatText, "report format: text, yaml")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

// validate checks flag values and positional arguments.
func (f *cliFlags) validate(positional []string) error {
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}
	switch strings.ToLower(f.format) {
	case formatText, formatYAML:
		f.format = strings.ToLower(f.format)
	default:
		return fmt.Errorf("%w: %q (must be text or yaml)", ErrInvalidFormat, f.format)
	}
	return nil
}
