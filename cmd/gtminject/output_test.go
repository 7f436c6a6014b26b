package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gtminject "github.com/alnah/go-gtminject"
	"github.com/alnah/go-gtminject/internal/fileutil"
	"github.com/alnah/go-gtminject/internal/yamlutil"
)

// sampleReport builds a report with one entry per group.
func sampleReport() *gtminject.Report {
	readErr := fmt.Errorf("%w: %w", gtminject.ErrReadHTML, fileutil.ErrInvalidUTF8)
	return &gtminject.Report{
		Modified: []string{"/site/index.html"},
		Skipped:  []gtminject.Skip{{Path: "/site/partials/nav.html", Reason: gtminject.ReasonPartials}},
		Errors:   []gtminject.Failure{{Path: "/site/bad.html", Message: readErr.Error(), Err: readErr}},
	}
}

// ---------------------------------------------------------------------------
// TestPrintText - Text report layout
// ---------------------------------------------------------------------------

func TestPrintText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := printText(&buf, sampleReport(), false, newPalette(false)); err != nil {
		t.Fatal(err)
	}

	want := "Modified files:\n" +
		"/site/index.html\n" +
		"\n" +
		"Skipped files:\n" +
		"/site/partials/nav.html  --> partials\n" +
		"\n" +
		"Errors:\n" +
		"/site/bad.html  ERROR: failed to read HTML file: content is not valid UTF-8\n" +
		"  hint: re-save the file as UTF-8 and run again\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintText_EmptyReportShowsAllGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := printText(&buf, gtminject.NewReport(), false, newPalette(false)); err != nil {
		t.Fatal(err)
	}

	want := "Modified files:\n\nSkipped files:\n\nErrors:\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintText_Quiet(t *testing.T) {
	t.Parallel()

	t.Run("with errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := printText(&buf, sampleReport(), true, newPalette(false)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if strings.Contains(out, "Modified files:") || strings.Contains(out, "Skipped files:") {
			t.Errorf("quiet output should only list errors:\n%s", out)
		}
		if !strings.HasPrefix(out, "Errors:\n/site/bad.html") {
			t.Errorf("quiet output = %q", out)
		}
	})

	t.Run("without errors", func(t *testing.T) {
		t.Parallel()

		r := gtminject.NewReport()
		r.Modified = append(r.Modified, "/site/a.html")

		var buf bytes.Buffer
		if err := printText(&buf, r, true, newPalette(false)); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("quiet output = %q, want empty", buf.String())
		}
	})
}

func TestPrintText_Color(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := printText(&buf, sampleReport(), false, newPalette(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("expected ANSI escapes with color enabled")
	}
	if !strings.Contains(buf.String(), "/site/index.html") {
		t.Error("paths must stay plain")
	}
}

// failingWriter fails after n successful writes.
type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errors.New("broken pipe")
	}
	w.n--
	return len(p), nil
}

func TestPrintText_WriteError(t *testing.T) {
	t.Parallel()

	err := printText(&failingWriter{n: 2}, sampleReport(), false, newPalette(false))
	if err == nil || err.Error() != "broken pipe" {
		t.Errorf("printText() error = %v, want broken pipe", err)
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Hint selection by failure kind
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	perm := &fs.PathError{Op: "open", Path: "a.html", Err: fs.ErrPermission}

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"read permission", fmt.Errorf("%w: %w", gtminject.ErrReadHTML, perm), "read permission"},
		{"write permission", fmt.Errorf("%w: %w", gtminject.ErrWriteHTML, perm), "write permission"},
		{"unclassified", perm, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(gtminject.Failure{Err: tt.err})
			if tt.contains == "" && got != "" {
				t.Errorf("hintFor() = %q, want empty", got)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("hintFor() = %q, want containing %q", got, tt.contains)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteReport_YAML - Machine-readable report
// ---------------------------------------------------------------------------

func TestWriteReport_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeReport(&buf, sampleReport(), &cliFlags{format: formatYAML, quiet: true}); err != nil {
		t.Fatal(err)
	}

	var got gtminject.Report
	if err := yamlutil.UnmarshalStrict(buf.Bytes(), &got); err != nil {
		t.Fatalf("report is not valid YAML: %v\n%s", err, buf.String())
	}

	want := *sampleReport()
	want.Errors[0].Err = nil
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML report mismatch (-want +got):\n%s", diff)
	}
}
