package gtminject

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alnah/go-gtminject/internal/fileutil"
	"github.com/alnah/go-gtminject/internal/pipeline"
)

// FileSystem abstracts whole-file text I/O for testability.
type FileSystem interface {
	ReadText(path string) (string, error)
	Overwrite(path, content string) error
}

// osFileSystem reads and writes the real filesystem.
type osFileSystem struct{}

func (osFileSystem) ReadText(path string) (string, error) { return fileutil.ReadText(path) }
func (osFileSystem) Overwrite(path, content string) error { return fileutil.Overwrite(path, content) }

// Compile-time interface implementation check.
var _ FileSystem = osFileSystem{}

// Injector walks a directory tree and injects the tag manager snippets into
// eligible HTML files. It is sequential and holds no state between runs.
type Injector struct {
	logger *zap.Logger
	fsys   FileSystem
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(inj *Injector) {
		if l != nil {
			inj.logger = l
		}
	}
}

// WithFileSystem replaces the filesystem used to read and write candidate files.
// Directory traversal always uses the real filesystem.
func WithFileSystem(f FileSystem) Option {
	return func(inj *Injector) {
		if f != nil {
			inj.fsys = f
		}
	}
}

// NewInjector creates an Injector. Without options it logs nothing and
// works on the real filesystem.
func NewInjector(opts ...Option) *Injector {
	inj := &Injector{
		logger: zap.NewNop(),
		fsys:   osFileSystem{},
	}
	for _, opt := range opts {
		opt(inj)
	}
	return inj
}

// Run processes every .html file below root and returns the report.
// Per-file failures are recorded in the report; the returned error is
// non-nil only when root itself cannot be walked.
func (inj *Injector) Run(root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRootNotDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	report := NewReport()
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			// Unlistable directories are not descended.
			inj.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isCandidate(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 && linksToDir(path) {
			inj.logger.Debug("ignoring symlink to directory", zap.String("path", path))
			return nil
		}
		inj.Process(path, report)
		return nil
	})
	if err != nil {
		return report, err
	}

	inj.logger.Debug("walk complete",
		zap.String("root", root),
		zap.Int("modified", len(report.Modified)),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("errors", len(report.Errors)),
	)
	return report, nil
}

// Process decides one candidate file and appends the outcome to report.
// The file is written at most once, and only when both anchors exist.
func (inj *Injector) Process(path string, report *Report) {
	log := inj.logger.With(zap.String("path", path))

	if reason, skip := skipByPath(path); skip {
		log.Debug("skipped", zap.String("reason", string(reason)))
		report.skip(path, reason)
		return
	}

	text, err := inj.fsys.ReadText(path)
	if err != nil {
		log.Debug("read failed", zap.Error(err))
		report.fail(path, fmt.Errorf("%w: %w", ErrReadHTML, err))
		return
	}

	if hasMarker(text) {
		log.Debug("skipped", zap.String("reason", string(ReasonAlreadyPresent)))
		report.skip(path, ReasonAlreadyPresent)
		return
	}

	ins := pipeline.Locate(text, HeadSnippet, NoscriptSnippet)
	if !ins.Complete() {
		log.Debug("skipped",
			zap.String("reason", string(ReasonNoAnchors)),
			zap.Bool("head", ins.Head != nil),
			zap.Bool("body", ins.Body != nil),
		)
		report.skip(path, ReasonNoAnchors)
		return
	}

	if err := inj.fsys.Overwrite(path, ins.Apply(text)); err != nil {
		log.Debug("write failed", zap.Error(err))
		report.fail(path, fmt.Errorf("%w: %w", ErrWriteHTML, err))
		return
	}

	log.Debug("modified")
	report.modified(path)
}

// linksToDir reports whether the symlink at path resolves to a directory.
// Broken links report false so the read surfaces the error.
func linksToDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadError reports whether err came from reading a candidate file.
func IsReadError(err error) bool {
	return errors.Is(err, ErrReadHTML)
}

// IsWriteError reports whether err came from writing a candidate file back.
func IsWriteError(err error) bool {
	return errors.Is(err, ErrWriteHTML)
}
