package pipeline

import (
	"regexp"
	"sort"
)

// bodyOpenPattern matches an opening <body> tag with any attributes.
var bodyOpenPattern = regexp.MustCompile(`(?i)<body[^>]*>`)

// headClosePattern matches a literal </head> closing tag.
var headClosePattern = regexp.MustCompile(`(?i)</head>`)

// Edit describes an insertion of Text at byte offset Offset of a document.
type Edit struct {
	Offset int
	Text   string
}

// Insertion is the outcome of locating both anchors in a document.
// A nil edit means its anchor was not found.
type Insertion struct {
	Head *Edit
	Body *Edit
}

// Complete reports whether both anchors were found.
func (i Insertion) Complete() bool {
	return i.Head != nil && i.Body != nil
}

// Apply splices both edits into htmlContent.
// Returns htmlContent unchanged unless the insertion is complete.
func (i Insertion) Apply(htmlContent string) string {
	if !i.Complete() {
		return htmlContent
	}
	// Body first: on an offset tie the noscript block lands before the head block.
	return Splice(htmlContent, *i.Body, *i.Head)
}

// LocateHead finds the first </head> and returns an edit inserting
// headSnippet followed by a newline right before it.
func LocateHead(htmlContent, headSnippet string) *Edit {
	loc := headClosePattern.FindStringIndex(htmlContent)
	if loc == nil {
		return nil
	}
	return &Edit{Offset: loc[0], Text: headSnippet + "\n"}
}

// LocateBody finds the first opening <body ...> tag and returns an edit
// inserting a newline followed by bodySnippet right after it.
func LocateBody(htmlContent, bodySnippet string) *Edit {
	loc := bodyOpenPattern.FindStringIndex(htmlContent)
	if loc == nil {
		return nil
	}
	return &Edit{Offset: loc[1], Text: "\n" + bodySnippet}
}

// Locate computes both edits against the same original text.
// Neither lookup sees the other's output.
func Locate(htmlContent, headSnippet, bodySnippet string) Insertion {
	return Insertion{
		Head: LocateHead(htmlContent, headSnippet),
		Body: LocateBody(htmlContent, bodySnippet),
	}
}

// Splice inserts every edit into s at its offset, measured against s.
// Edits sharing an offset keep their argument order.
// Offsets outside [0, len(s)] are clamped.
func Splice(s string, edits ...Edit) string {
	if len(edits) == 0 {
		return s
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Offset < sorted[b].Offset
	})

	size := len(s)
	for _, e := range sorted {
		size += len(e.Text)
	}

	buf := make([]byte, 0, size)
	prev := 0
	for _, e := range sorted {
		off := min(max(e.Offset, prev), len(s))
		buf = append(buf, s[prev:off]...)
		buf = append(buf, e.Text...)
		prev = off
	}
	buf = append(buf, s[prev:]...)
	return string(buf)
}
