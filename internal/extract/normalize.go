package extract

import (
	"strings"
	"unicode"
)

// NormalizeText normalizes whitespace and strips control characters from
// extracted text. Line structure is preserved (parsers use it to find
// section boundaries) but runs of blank lines collapse to one empty line
// and horizontal whitespace collapses to single spaces.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	// Unify line endings and drop non-printable characters.
	var b strings.Builder
	b.Grow(len(text))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, r := range text {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteRune(' ')
		case unicode.IsControl(r) || r == unicode.ReplacementChar:
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	lines := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
