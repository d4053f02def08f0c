package taxonomy

import (
	"strings"
	"unicode"
)

// Normalize lowercases and trims a skill string and collapses interior
// whitespace, so taxonomy keys and incoming tokens compare consistently.
// Characters that are part of real skill names ("c++", "c#", "node.js",
// "ci/cd") survive; other punctuation becomes a separator.
func Normalize(s string) string {
	var b strings.Builder
	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case r == '+' || r == '#' || r == '.' || r == '/':
			// Significant in tech names; keep as-is.
			b.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}
	out := strings.TrimSpace(b.String())
	// A trailing dot is punctuation, not part of a name.
	out = strings.TrimRight(out, ".")
	return out
}
