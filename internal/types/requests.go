package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseTextRequest is the JSON body for parsing already-extracted text.
type ParseTextRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// MatchRequest is the JSON body for scoring one profile against one job.
// Weights is optional; when present it must sum to 1.0.
type MatchRequest struct {
	Profile      StructuredProfile  `json:"profile" validate:"required"`
	Requirements JobRequirements    `json:"requirements" validate:"required"`
	Weights      map[string]float64 `json:"weights,omitempty"`
}

// RankRequest is the JSON body for ranking a candidate pool against a job.
// JobID is optional; when present the ranked results are persisted under it.
type RankRequest struct {
	JobID        string             `json:"job_id,omitempty"`
	Requirements JobRequirements    `json:"requirements" validate:"required"`
	Candidates   []CandidateProfile `json:"candidates" validate:"required,min=1,dive"`
	Filters      *RankFilters       `json:"filters,omitempty"`
	TopK         int                `json:"top_k" validate:"omitempty,min=1,max=1000"`
}

// Validate validates the ParseTextRequest using the validator.
func (r *ParseTextRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
