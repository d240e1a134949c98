package report

import (
	"regexp"
	"strings"
)

// boundaryPattern marks where substantive generated text ends and echoed
// instruction text begins: the literal "Instructions:", a numbered list
// start "1.", or a capitalized word immediately followed by a colon.
// The leading group is non-greedy so the first boundary wins when the
// text contains several.
var boundaryPattern = regexp.MustCompile(`(?s)^(.*?)(Instructions:|1\.|[A-Z][a-z]+\s*:)`)

// ExtractSummary takes everything before the first boundary marker in
// generated text. The generation model echoes the prompt's instruction
// block after the substantive answer; this strips it. Best-effort: text
// containing a legitimate capitalized word with a colon gets clipped
// there, and text with no boundary at all is returned whole, trimmed.
func ExtractSummary(text string) string {
	if m := boundaryPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
