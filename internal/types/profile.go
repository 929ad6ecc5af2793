// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Contact holds the contact fields extracted from a resume. Location is
// rarely extractable from resume text and is usually supplied by the caller
// alongside the parsed profile; an empty value means unknown.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// ExperienceEntry represents a single work experience span extracted from a resume.
type ExperienceEntry struct {
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// EducationEntry represents a single education record extracted from a resume.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// Confidence map keys. Each parser attaches a per-field reliability estimate
// in [0,1]; low confidence is data, not an error.
const (
	ConfidenceContact    = "contact"
	ConfidenceSkills     = "skills"
	ConfidenceExperience = "experience"
	ConfidenceEducation  = "education"
)

// StructuredProfile is the canonical parsed-resume shape produced by exactly
// one parser implementation per invocation. Profiles are never mutated after
// creation; callers replace rather than patch.
type StructuredProfile struct {
	Contact           Contact            `json:"contact"`
	Skills            []string           `json:"skills"`
	ExperienceEntries []ExperienceEntry  `json:"experience_entries"`
	ExperienceYears   float64            `json:"experience_years"`
	Education         []EducationEntry   `json:"education"`
	Confidence        map[string]float64 `json:"confidence"`
}
