package types

// JobRequirements describes what a job posting asks for. It is owned by the
// job-posting aggregate and is a read-only input to the scorer.
type JobRequirements struct {
	RequiredSkills    []string `json:"required_skills"`
	PreferredSkills   []string `json:"preferred_skills,omitempty"`
	ExperienceMin     float64  `json:"experience_min"`
	EducationRequired string   `json:"education_required,omitempty"`
	Location          string   `json:"location,omitempty"`
	RemoteAllowed     bool     `json:"remote_allowed"`
}
