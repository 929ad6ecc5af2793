package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Pattern-matching regexes. The pattern parser has no entity pass: contact
// and experience come from canonical patterns, skills from word-boundary
// dictionary matching, education from direct degree-name keywords only.
// Its lower recall on experience and education relative to the entity
// parser is expected and monitored, not a defect.
var (
	patternPhonePatterns = []*regexp.Regexp{
		// US/Canada with parentheses: (555) 123-4567
		regexp.MustCompile(`\(\d{3}\)\s*[-.]?\d{3}[-.]?\d{4}`),
		// International, before the separator form so the country code is kept
		regexp.MustCompile(`\+\d{1,3}[-. ]?\d{1,4}[-. ]?\d{3,4}[-. ]?\d{3,4}`),
		// US/Canada with separators: 555-123-4567 or 555.123.4567
		regexp.MustCompile(`\d{3}[-. ]\d{3}[-. ]\d{4}`),
		// Unformatted ten digits
		regexp.MustCompile(`\b\d{10}\b`),
	}

	// Narrower than the entity parser's pattern set: requires the literal
	// "N years of experience" phrasing. "5+ years of experience" does not
	// match because of the plus sign.
	patternYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\s+years?\s+of\s+experience`),
	}

	// Bare two-letter forms ("ms", "ba") are deliberately excluded; without
	// punctuation they collide with ordinary words.
	degreeNamePattern = regexp.MustCompile(`(?i)\b(ph\.?d|doctorate|doctoral|master(?:'s|s)?|m\.?sc|mba|m\.s|bachelor(?:'s|s)?|b\.?sc|b\.s|b\.a|associate(?:'s|s)?|high school diploma|ged)\b`)
)

// PatternParser is Parser B: a regex and dictionary based parser. Faster
// than the entity parser (no tagging pass) with systematically lower recall
// on experience and education.
type PatternParser struct {
	dict *Dictionary
}

// NewPatternParser creates a pattern-matching parser backed by the given
// dictionary.
func NewPatternParser(dict *Dictionary) *PatternParser {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &PatternParser{dict: dict}
}

// Name implements ResumeParser.
func (p *PatternParser) Name() string { return "pattern" }

// Parse implements ResumeParser. It returns *ParseError only for input that
// is empty after normalization.
func (p *PatternParser) Parse(text string) (*types.StructuredProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "empty input"}
	}

	email := emailPattern.FindString(text)
	phone := p.extractPhone(text)
	skills := p.dict.MatchBounded(text)
	education := p.extractEducation(text)
	years, yearsFound := maxYears(text, patternYearsPatterns)

	confidence := map[string]float64{
		types.ConfidenceContact:    contactConfidence(email, phone),
		types.ConfidenceSkills:     yieldConfidence(len(skills), 0.35, 0.05, 0.90),
		types.ConfidenceExperience: 0,
		types.ConfidenceEducation:  yieldConfidence(len(education), 0.40, 0.10, 0.80),
	}
	if yearsFound {
		confidence[types.ConfidenceExperience] = 0.70
	}

	return &types.StructuredProfile{
		Contact:           types.Contact{Email: email, Phone: phone},
		Skills:            skills,
		ExperienceEntries: nil, // no entity pass; entry extraction is out of this parser's reach
		ExperienceYears:   years,
		Education:         education,
		Confidence:        confidence,
	}, nil
}

// extractPhone returns the first phone number matched by any pattern.
func (p *PatternParser) extractPhone(text string) string {
	for _, re := range patternPhonePatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractEducation populates education entries only from direct keyword
// matches against the degree-name list. No institution extraction.
func (p *PatternParser) extractEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	seen := make(map[string]bool)
	for _, m := range degreeNamePattern.FindAllString(text, -1) {
		key := strings.ToLower(strings.TrimRight(m, "."))
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, types.EducationEntry{Degree: m})
	}
	return entries
}
