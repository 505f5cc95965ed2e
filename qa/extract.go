package qa

import (
	"regexp"
	"strings"
)

// questionPattern matches a span that starts at an interrogative keyword and
// runs up to the next question mark. OCR output is noisy, so the match is
// intentionally loose.
var questionPattern = regexp.MustCompile(
	`(?i)\b(what|which|who|whom|whose|where|when|why|how|can|could|do|does|did|is|are|was|were|will|would|should)\b[^?]*\?`,
)

// ExtractQuestion returns the leftmost question-shaped substring of text,
// trimmed of surrounding whitespace. When the text contains several
// question-looking spans only the first one is used.
func ExtractQuestion(text string) (string, bool) {
	m := questionPattern.FindString(text)
	if m == "" {
		return "", false
	}
	return strings.TrimSpace(m), true
}
