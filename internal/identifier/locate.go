// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identifier

import "regexp"

// candidatePattern finds identifier-shaped spans in free text. It accepts
// any archive name and any v suffix; Parse decides whether a span is valid.
var candidatePattern = regexp.MustCompile(
	`\b(?i:arxiv:)?` +
		`(?:\d{4}\.\d{4,5}|[A-Za-z]+(?:-[A-Za-z]+)*(?:\.[A-Za-z]+(?:-[A-Za-z]+)*)?/\d{7})` +
		`(?:v\w*)?\b`)

// Match is an identifier-shaped span of a larger text.
type Match struct {
	// Text is the matched substring, including any "arXiv:" marker.
	Text string

	// Start and End are byte offsets of Text in the searched string.
	Start, End int
}

// Locate returns the leftmost identifier-shaped span in text.
func Locate(text string) (Match, bool) {
	loc := candidatePattern.FindStringIndex(text)
	if loc == nil {
		return Match{}, false
	}
	return Match{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]}, true
}

// LocateAll returns every non-overlapping identifier-shaped span in text,
// left to right.
func LocateAll(text string) []Match {
	locs := candidatePattern.FindAllStringIndex(text, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{Text: text[loc[0]:loc[1]], Start: loc[0], End: loc[1]})
	}
	return matches
}
