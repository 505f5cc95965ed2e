package qa

import "strings"

// Match scans pairs in stored order and returns the first whose question
// contains, or is contained by, the given question, case-insensitively.
// This is looser than equality on purpose: OCR rarely reproduces a stored
// question verbatim. Very short questions can over-match, which is a known
// and accepted weakness of the containment rule.
func Match(question string, pairs []Pair) (Pair, bool) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return Pair{}, false
	}
	for _, p := range pairs {
		stored := strings.ToLower(strings.TrimSpace(p.Question))
		if stored == "" {
			continue
		}
		if strings.Contains(stored, q) || strings.Contains(q, stored) {
			return p, true
		}
	}
	return Pair{}, false
}
