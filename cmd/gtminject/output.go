package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	gtminject "github.com/alnah/go-gtminject"
	"github.com/alnah/go-gtminject/internal/hints"
	"github.com/alnah/go-gtminject/internal/yamlutil"
)

// palette holds the styling functions for the text report.
type palette struct {
	label  func(a ...interface{}) string
	reason func(a ...interface{}) string
	failed func(a ...interface{}) string
	hint   func(a ...interface{}) string
}

// newPalette builds a palette. Disabled palettes return plain text.
func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		label:  mk(color.FgBlue, color.Bold),
		reason: mk(color.FgMagenta),
		failed: mk(color.FgHiRed, color.Bold),
		hint:   mk(color.FgHiBlack),
	}
}

// writeReport writes the report in the requested format.
func writeReport(w io.Writer, r *gtminject.Report, flags *cliFlags) error {
	if flags.format == formatYAML {
		return yamlutil.Encode(w, r)
	}
	// color.NoColor is set when stdout is not a terminal or NO_COLOR is set.
	p := newPalette(!flags.noColor && !color.NoColor)
	return printText(w, r, flags.quiet, p)
}

// printText writes the three labeled groups. Quiet mode keeps only errors.
func printText(w io.Writer, r *gtminject.Report, quiet bool, p palette) error {
	ew := &errWriter{w: w}

	if !quiet {
		ew.println(p.label("Modified files:"))
		for _, path := range r.Modified {
			ew.println(path)
		}

		ew.println()
		ew.println(p.label("Skipped files:"))
		for _, s := range r.Skipped {
			ew.printf("%s  --> %s\n", s.Path, p.reason(string(s.Reason)))
		}
		ew.println()
	}

	if quiet && !r.HasErrors() {
		return ew.err
	}

	ew.println(p.label("Errors:"))
	for _, f := range r.Errors {
		ew.printf("%s  %s %s", f.Path, p.failed("ERROR:"), f.Message)
		if h := hintFor(f); h != "" {
			ew.printf("%s", p.hint(h))
		}
		ew.println()
	}
	return ew.err
}

// hintFor picks the hint matching the failure kind.
func hintFor(f gtminject.Failure) string {
	switch {
	case gtminject.IsReadError(f.Err):
		return hints.ForReadError(f.Err)
	case gtminject.IsWriteError(f.Err):
		return hints.ForWriteError(f.Err)
	}
	return ""
}

// errWriter remembers the first write error so printing code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, args...)
}
