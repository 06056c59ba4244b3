// Package textnorm canonicalizes raw email text before classification.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// disclaimerPattern matches the common confidentiality footer from its
// opening phrase through the rest of the text. Best-effort: it catches
// the standard wording, not every legal boilerplate variant.
var disclaimerPattern = regexp.MustCompile(`(?is)this message.*confidential.*do not share.*`)

// Normalize canonicalizes raw text: Unicode NFKC folding, removal of
// the known confidentiality disclaimer, and whitespace collapse with
// trimming. Empty input yields the empty string; no input can fail.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	text = disclaimerPattern.ReplaceAllString(text, " ")

	// Collapse any whitespace run (including newlines) to one space.
	return strings.Join(strings.Fields(text), " ")
}
