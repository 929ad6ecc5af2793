package parser

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Entity-extraction patterns. The entity pass tags spans by shape and
// section context; the dictionary pass then unions in curated skill hits.
// Union, not intersection: the parser favors recall.
var (
	entityYearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(?i)experience\s*(?:of|:)\s*(\d{1,2})\s*\+?\s*years?`),
	}

	entityPhonePattern = regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}`)

	// "Senior Engineer at Acme Corp (2019 - 2022)" and
	// "Senior Engineer, Acme Corp (3 years)"
	positionAtPattern    = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 /&+#.-]{2,60}?)\s+(?:at|@)\s+([A-Za-z][A-Za-z0-9 .,&'-]{1,60}?)(?:\s*\(([^)]+)\))?$`)
	positionCommaPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 /&+#.-]{2,60}?),\s+([A-Za-z][A-Za-z0-9 .&'-]{1,60}?)(?:\s*\(([^)]+)\))?$`)

	durationPattern = regexp.MustCompile(`(?i)^(?:[a-z]{3,9}\.?\s+)?\d{4}\s*(?:-|–|—|to)\s*(?:(?:[a-z]{3,9}\.?\s+)?\d{4}|present|current)$`)

	institutionPattern = regexp.MustCompile(`([A-Z][A-Za-z&.' -]*?(?:University|College|Institute|School|Academy|Polytechnic))`)

	sectionHeadingPattern = regexp.MustCompile(`(?i)^(technical skills|core competencies|skills?|work experience|professional experience|employment(?: history)?|experience|education|academic background|qualifications|projects|certifications|summary|objective|contact)\b[:\s]*$`)
)

// section kinds recognized by the heading splitter.
const (
	sectionSkills     = "skills"
	sectionExperience = "experience"
	sectionEducation  = "education"
	sectionOther      = "other"
)

// EntityParser is Parser A: an entity-extraction parser that tags candidate
// spans by section context and shape, cross-referenced against the curated
// skill dictionary to reduce false negatives. Slower than the pattern
// parser but higher recall on experience and education.
type EntityParser struct {
	dict *Dictionary
}

// NewEntityParser creates an entity-extraction parser backed by the given
// dictionary.
func NewEntityParser(dict *Dictionary) *EntityParser {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &EntityParser{dict: dict}
}

// Name implements ResumeParser.
func (p *EntityParser) Name() string { return "entity" }

// Parse implements ResumeParser. It returns *ParseError only for input that
// is empty after normalization; sparse resumes yield zero-value fields with
// zero confidence.
func (p *EntityParser) Parse(text string) (*types.StructuredProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Message: "empty input"}
	}

	sections := splitSections(text)

	skills := p.extractSkills(text, sections)
	experience := p.extractExperience(sections)
	education := p.extractEducation(text, sections)
	email := emailPattern.FindString(text)
	phone := entityPhonePattern.FindString(text)
	years, yearsFound := maxYears(text, entityYearsPatterns)

	confidence := map[string]float64{
		types.ConfidenceContact:    contactConfidence(email, phone),
		types.ConfidenceSkills:     yieldConfidence(len(skills), 0.40, 0.05, 0.95),
		types.ConfidenceExperience: 0,
		types.ConfidenceEducation:  yieldConfidence(len(education), 0.50, 0.10, 0.90),
	}
	if yearsFound {
		confidence[types.ConfidenceExperience] = 0.75
		if len(experience) > 0 {
			confidence[types.ConfidenceExperience] = 0.85
		}
	}

	return &types.StructuredProfile{
		Contact:           types.Contact{Email: email, Phone: phone},
		Skills:            skills,
		ExperienceEntries: experience,
		ExperienceYears:   years,
		Education:         education,
		Confidence:        confidence,
	}, nil
}

// extractSkills unions entity-tagged spans from the skills section with
// dictionary hits across the whole text.
func (p *EntityParser) extractSkills(text string, sections map[string][]string) []string {
	found := make(map[string]bool)

	// Entity pass: spans listed under a skills heading.
	for _, line := range sections[sectionSkills] {
		for _, span := range splitSpans(line) {
			canon := p.dict.Canonical(span)
			if canon != "" && len(canon) <= 40 {
				found[canon] = true
			}
		}
	}

	// Dictionary pass over the full text.
	for _, skill := range p.dict.MatchSubstring(text) {
		found[skill] = true
	}

	return sortedKeys(found)
}

// extractExperience tags position/company spans and date-range durations
// from the experience section.
func (p *EntityParser) extractExperience(sections map[string][]string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, line := range sections[sectionExperience] {
		m := positionAtPattern.FindStringSubmatch(line)
		if m == nil {
			m = positionCommaPattern.FindStringSubmatch(line)
		}
		if m != nil {
			entries = append(entries, types.ExperienceEntry{
				Title:    strings.TrimSpace(m[1]),
				Company:  strings.TrimSpace(m[2]),
				Duration: strings.TrimSpace(m[3]),
			})
			continue
		}
		// A bare date-range line belongs to the preceding entry.
		if len(entries) > 0 && entries[len(entries)-1].Duration == "" && durationPattern.MatchString(line) {
			entries[len(entries)-1].Duration = line
		}
	}
	return entries
}

// extractEducation tags degree lines, preferring the education section but
// falling back to the whole text when no heading was found.
func (p *EntityParser) extractEducation(text string, sections map[string][]string) []types.EducationEntry {
	lines := sections[sectionEducation]
	if len(lines) == 0 {
		lines = strings.Split(text, "\n")
	}

	var entries []types.EducationEntry
	seen := make(map[string]bool)
	for _, line := range lines {
		if types.DegreeLevel(line) == 0 {
			continue
		}
		institution := ""
		if m := institutionPattern.FindStringSubmatch(line); m != nil {
			institution = strings.TrimSpace(m[1])
		}
		degree := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), institution))
		degree = strings.TrimRight(degree, ",;- ")
		if len(degree) > 80 {
			degree = degree[:80]
		}
		key := strings.ToLower(degree + "|" + institution)
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, types.EducationEntry{Degree: degree, Institution: institution})
	}
	return entries
}

// splitSections groups resume lines under their nearest preceding section
// heading. Lines before any heading land in the "other" bucket.
func splitSections(text string) map[string][]string {
	sections := make(map[string][]string)
	current := sectionOther
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := sectionHeadingPattern.FindStringSubmatch(line); m != nil {
			current = sectionKind(m[1])
			continue
		}
		sections[current] = append(sections[current], line)
	}
	return sections
}

func sectionKind(heading string) string {
	h := strings.ToLower(heading)
	switch {
	case strings.Contains(h, "skill") || strings.Contains(h, "competenc"):
		return sectionSkills
	case strings.Contains(h, "experience") || strings.Contains(h, "employment"):
		return sectionExperience
	case strings.Contains(h, "education") || strings.Contains(h, "academic") || strings.Contains(h, "qualification"):
		return sectionEducation
	default:
		return sectionOther
	}
}

// splitSpans splits a skills line into candidate skill spans.
func splitSpans(line string) []string {
	spans := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '•' || r == '·'
	})
	out := make([]string, 0, len(spans))
	for _, s := range spans {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// contactConfidence scores the contact field by which identifiers were found.
func contactConfidence(email, phone string) float64 {
	c := 0.0
	if email != "" {
		c += 0.5
	}
	if phone != "" {
		c += 0.4
	}
	return c
}

// yieldConfidence maps an extraction count to a confidence value: zero
// yield means zero confidence, and each additional hit adds step up to limit.
func yieldConfidence(count int, base, step, limit float64) float64 {
	if count == 0 {
		return 0
	}
	c := base + step*float64(count)
	if c > limit {
		return limit
	}
	return c
}
