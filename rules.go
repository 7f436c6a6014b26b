package gtminject

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-gtminject/internal/fileutil"
)

// Reason explains why a file was left untouched.
type Reason string

// Skip reasons, in the order the rules are evaluated.
const (
	ReasonPartials       Reason = "partials"
	ReasonPartialName    Reason = "partial-name"
	ReasonAlreadyPresent Reason = "already-present"
	ReasonNoAnchors      Reason = "no-body-or-head"
)

// htmlSuffix selects candidate files. The match is case-sensitive.
const htmlSuffix = ".html"

// partialsDir names the directory whose contents are never injected.
const partialsDir = "partials"

// partialNames are lowercase base names of fragment files.
var partialNames = map[string]bool{
	"header.html": true,
	"footer.html": true,
}

// isCandidate reports whether a file name is considered at all.
func isCandidate(name string) bool {
	return strings.HasSuffix(name, htmlSuffix)
}

// skipByPath applies the rules that need only the path.
// Returns the reason and true if the file must be skipped without reading it.
func skipByPath(path string) (Reason, bool) {
	if fileutil.HasSegment(path, partialsDir) {
		return ReasonPartials, true
	}
	if partialNames[strings.ToLower(filepath.Base(path))] {
		return ReasonPartialName, true
	}
	return "", false
}

// hasMarker reports whether the text was already injected.
// A file holding only one of the two snippets still counts; it is never repaired.
func hasMarker(text string) bool {
	return strings.Contains(text, Marker)
}
