// Package parser extracts structured candidate profiles from normalized
// resume text. Two implementations share the ResumeParser contract: an
// entity-extraction parser that favors recall and a faster pattern-matching
// parser with systematically lower recall on experience and education.
package parser

import (
	"regexp"
	"strconv"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ResumeParser is the capability interface shared by both parser strategies.
// Implementations are selected explicitly by the caller, are deterministic
// for fixed input, and never fail on "nothing found".
type ResumeParser interface {
	// Name identifies the implementation in comparison reports and logs.
	Name() string
	// Parse extracts a structured profile from normalized resume text.
	// It returns *ParseError only when the text is empty.
	Parse(text string) (*types.StructuredProfile, error)
}

// emailPattern is the canonical email regex shared by both parsers.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// maxYears extracts the maximum matched year count across all pattern
// occurrences. Maximum, not sum: overlapping statements ("5 years of
// experience ... 3 years of experience with Go") must not double count.
func maxYears(text string, patterns []*regexp.Regexp) (float64, bool) {
	best := 0
	found := false
	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			found = true
			if n > best {
				best = n
			}
		}
	}
	return float64(best), found
}
