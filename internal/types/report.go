package types

import "time"

// Winner sentinel values for ComparisonReport metrics. The tie sentinel is
// consumed verbatim by the monitoring dashboard and must not change.
const (
	WinnerParserA = "A"
	WinnerParserB = "B"
	WinnerTie     = "tie"
)

// Metric names reported by the parser comparator.
const (
	MetricSkills     = "skills"
	MetricExperience = "experience"
	MetricSpeed      = "speed"
)

// ParserMetrics captures the extraction yield and latency of a single parser
// run over one resume text.
type ParserMetrics struct {
	SkillsCount       int     `json:"skills_count"`
	ExperienceYears   float64 `json:"experience_years"`
	ExperienceEntries int     `json:"experience_entries"`
	EducationEntries  int     `json:"education_entries"`
	HasEmail          bool    `json:"has_email"`
	HasPhone          bool    `json:"has_phone"`
	ParseTimeMS       float64 `json:"parse_time_ms"`
}

// ComparisonReport is the monitoring artifact produced by running both
// parsers over the same extracted text. It is not part of the production
// matching path. Field names are consumed by an external dashboard.
type ComparisonReport struct {
	ParserA       ParserMetrics     `json:"parserA"`
	ParserB       ParserMetrics     `json:"parserB"`
	Winner        map[string]string `json:"winner"`
	GeneratedAt   time.Time         `json:"generated_at"`
	ResumesTested int               `json:"resumes_tested"`
}
