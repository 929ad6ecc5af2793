package types

// ScoreBreakdown holds the per-dimension components of a match score.
// Every component is in [0,100].
type ScoreBreakdown struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Location   float64 `json:"location"`
	Semantic   float64 `json:"semantic"`
}

// MatchScore is the multi-dimensional compatibility score between one
// candidate profile and one job's requirements. Computed fresh per
// (profile, requirements) pair and never cached across input changes.
type MatchScore struct {
	Overall       float64        `json:"overall"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
}

// CandidateProfile pairs a candidate identifier with their parsed profile.
// The ID is the deterministic tie-breaker in ranked output.
type CandidateProfile struct {
	ID      string            `json:"id"`
	Profile StructuredProfile `json:"profile"`
}

// RankFilters are strict post-score predicates applied by the ranker.
// A candidate failing any filter is excluded entirely, not down-ranked.
type RankFilters struct {
	MinScore       float64  `json:"min_score,omitempty"`
	MustHaveSkills []string `json:"must_have_skills,omitempty"`
	MinExperience  float64  `json:"min_experience,omitempty"`
}

// RankedCandidate is one entry of the ranker's output list.
type RankedCandidate struct {
	CandidateID string     `json:"candidate_id"`
	Score       MatchScore `json:"score"`
}
