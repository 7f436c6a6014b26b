package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gtminject "github.com/alnah/go-gtminject"
)

// Sentinel errors for run outcomes.
var (
	ErrWorkingDir  = errors.New("cannot determine working directory")
	ErrFilesFailed = errors.New("some files could not be processed")
)

// runMain parses args, runs the injector and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err == nil {
		err = flags.validate(positional)
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, "Run 'gtminject --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}

	logger := newLogger(flags.verbose, env.Stderr)
	defer func() { _ = logger.Sync() }()

	if err := run(flags, env, logger); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run walks the working directory and writes the report.
func run(flags *cliFlags, env *Environment, logger *zap.Logger) error {
	root, err := env.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWorkingDir, err)
	}

	inj := gtminject.NewInjector(
		gtminject.WithLogger(logger),
		gtminject.WithFileSystem(env.FileSystem),
	)

	logger.Debug("starting walk", zap.String("root", root))
	report, err := inj.Run(root)
	if err != nil {
		return err
	}

	if err := writeReport(env.Stdout, report, flags); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if report.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", ErrFilesFailed, len(report.Errors))
	}
	return nil
}

// newLogger returns a debug console logger on w when verbose, otherwise a no-op logger.
func newLogger(verbose bool, w io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
