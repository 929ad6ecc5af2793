// Package scoring computes multi-dimensional match scores between one
// candidate profile and one job's requirements. Scores are pure arithmetic
// over immutable inputs: total functions with every division-by-zero case
// handled explicitly, never NaN.
package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// SimilarityAbsent marks a missing semantic similarity. The semantic
// component scores 0 but keeps its configured weight, so a degraded
// embedding path measurably lowers the overall score instead of being
// silently reweighted away.
const SimilarityAbsent = -1.0

// Scorer computes MatchScores under a validated weight configuration.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer, failing with InvalidWeightConfigurationError
// when the weights do not sum to 1.0.
func NewScorer(weights Weights) (*Scorer, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: weights}, nil
}

// NewDefaultScorer creates a scorer with the default weights.
func NewDefaultScorer() *Scorer {
	return &Scorer{weights: DefaultWeights()}
}

// Weights returns the scorer's weight configuration.
func (s *Scorer) Weights() Weights { return s.weights }

// Score computes the match score for one (profile, requirements) pair.
// similarity is the pre-fetched semantic similarity in [0, 1], or
// SimilarityAbsent when no embedding result is available.
func (s *Scorer) Score(profile *types.StructuredProfile, req types.JobRequirements, similarity float64) *types.MatchScore {
	matched, missing := splitSkills(profile.Skills, req.RequiredSkills)

	breakdown := types.ScoreBreakdown{
		Skill:      skillScore(profile.Skills, req.RequiredSkills, req.PreferredSkills),
		Experience: experienceScore(profile.ExperienceYears, req.ExperienceMin),
		Education:  educationScore(profile.Education, req.EducationRequired),
		Location:   locationScore(profile.Contact.Location, req.Location, req.RemoteAllowed),
		Semantic:   semanticScore(similarity),
	}

	overall := s.weights.Skill*breakdown.Skill +
		s.weights.Experience*breakdown.Experience +
		s.weights.Education*breakdown.Education +
		s.weights.Location*breakdown.Location +
		s.weights.Semantic*breakdown.Semantic

	return &types.MatchScore{
		Overall:       overall,
		Breakdown:     breakdown,
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

// splitSkills partitions the required skills into matched and missing,
// comparing case-insensitively and reporting the requirement's spelling.
// Matched/missing sets depend only on required skills, never on weighting.
func splitSkills(candidate, required []string) (matched, missing []string) {
	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, s := range required {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// overlapRatio is |candidate ∩ wanted| / |wanted|, case-insensitive.
func overlapRatio(candidate, wanted []string) float64 {
	if len(wanted) == 0 {
		return 0
	}
	have := make(map[string]bool, len(candidate))
	for _, s := range candidate {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	hits := 0
	for _, s := range wanted {
		if have[strings.ToLower(strings.TrimSpace(s))] {
			hits++
		}
	}
	return float64(hits) / float64(len(wanted))
}

// skillScore weights required coverage 0.8 and preferred coverage 0.2. An
// empty required set is trivially satisfied and scores 100 outright.
func skillScore(candidate, required, preferred []string) float64 {
	if len(required) == 0 {
		return 100
	}
	return 0.8*overlapRatio(candidate, required)*100 + 0.2*overlapRatio(candidate, preferred)*100
}

// experienceScore rewards surplus years with diminishing returns above the
// meets-bar floor of 80, and penalizes shortfall linearly below it.
func experienceScore(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 80
	}
	if candidateYears >= requiredYears {
		bonus := (candidateYears - requiredYears) / requiredYears * 10
		if bonus > 20 {
			bonus = 20
		}
		score := 80 + bonus
		if score > 100 {
			return 100
		}
		return score
	}
	return candidateYears / requiredYears * 80
}

// educationScore compares the candidate's highest degree level against the
// required level on the ordinal scale. An absent or unrecognized
// requirement is trivially satisfied.
func educationScore(education []types.EducationEntry, required string) float64 {
	requiredLevel := types.DegreeLevel(required)
	if requiredLevel == 0 {
		return 100
	}
	candidateLevel := 0
	for _, e := range education {
		if level := types.DegreeLevel(e.Degree); level > candidateLevel {
			candidateLevel = level
		}
	}
	if candidateLevel >= requiredLevel {
		return 100
	}
	return float64(candidateLevel) / float64(requiredLevel) * 100
}

// locationScore treats remote jobs as a universal match and an unknown
// location on either side as uncertainty, not a failure.
func locationScore(candidate, required string, remoteAllowed bool) float64 {
	if remoteAllowed {
		return 100
	}
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	required = strings.ToLower(strings.TrimSpace(required))
	switch {
	case candidate == "" || required == "":
		return 50
	case candidate == required:
		return 100
	case strings.Contains(candidate, required) || strings.Contains(required, candidate):
		return 75
	default:
		return 25
	}
}

// semanticScore rescales a cosine similarity in [0, 1] to [0, 100],
// clamping out-of-range inputs. SimilarityAbsent scores 0.
func semanticScore(similarity float64) float64 {
	if similarity < 0 {
		return 0
	}
	if similarity > 1 {
		return 100
	}
	return similarity * 100
}
