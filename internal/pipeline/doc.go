// Package pipeline implements the text transforms behind snippet injection.
//
// This package has no knowledge of files or snippet contents:
//   - locating the first </head> closing tag (case-insensitive)
//   - locating the first opening <body ...> tag (case-insensitive)
//   - splicing insertions computed against one original text
//
// Anchors are found with two regular expressions rather than an HTML parser.
// Only the first occurrence of each anchor is used, and an insertion is
// applied only when both anchors exist.
package pipeline
