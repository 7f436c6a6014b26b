// Package gtminject injects the Google Tag Manager snippets into static HTML pages.
//
// # Quick Start
//
// Walk a site directory and inspect the outcome:
//
//	report, err := gtminject.NewInjector().Run("/srv/site")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, path := range report.Modified {
//	    fmt.Println(path)
//	}
//	if report.HasErrors() {
//	    os.Exit(1)
//	}
//
// # Rules
//
// Every file whose name ends in ".html" is decided by the first matching rule:
//
//  1. a directory named "partials" in its path: skipped ("partials")
//  2. base name header.html or footer.html, any case: skipped ("partial-name")
//  3. unreadable or not UTF-8: recorded as an error
//  4. already contains Marker: skipped ("already-present")
//  5. otherwise HeadSnippet goes before the first </head> and NoscriptSnippet
//     after the first <body ...> tag
//
// Both anchors are located in the original text. If either is missing the
// file is skipped ("no-body-or-head") and never written. A modified file is
// written once, in place, keeping its permissions.
//
// # Options
//
//	inj := gtminject.NewInjector(
//	    gtminject.WithLogger(logger),       // *zap.Logger for per-file diagnostics
//	    gtminject.WithFileSystem(customFS), // replace file reads and writes
//	)
package gtminject
