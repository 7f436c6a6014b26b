package main

import (
	"fmt"
	"io"

	gtminject "github.com/alnah/go-gtminject"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gtminject [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inject the Google Tag Manager snippets into every .html file below")
	fmt.Fprintf(w, "the current directory. Files already containing %s,\n", gtminject.Marker)
	fmt.Fprintln(w, "files under a partials/ directory and header.html/footer.html are skipped.")
	fmt.Fprintln(w, "A file missing <body> or </head> is never modified.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>    Report format: text, yaml (default text)")
	fmt.Fprintln(w, "  -q, --quiet         Only show errors")
	fmt.Fprintln(w, "  -v, --verbose       Log every decision to stderr")
	fmt.Fprintln(w, "      --no-color      Disable colored output")
	fmt.Fprintln(w, "      --version       Show version information")
	fmt.Fprintln(w, "  -h, --help          Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit status:")
	fmt.Fprintln(w, "  0  no read or write errors")
	fmt.Fprintln(w, "  1  at least one file could not be read or written")
	fmt.Fprintln(w, "  2  invalid usage")
}

// printVersion prints the version line.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "gtminject %s\n", Version)
}
