package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestNewScorer_RejectsBadWeightSum(t *testing.T) {
	_, err := NewScorer(Weights{Skill: 0.35, Experience: 0.25, Education: 0.15, Location: 0.10, Semantic: 0.05})
	require.Error(t, err)

	var weightErr *InvalidWeightConfigurationError
	require.ErrorAs(t, err, &weightErr)
	assert.InDelta(t, 0.9, weightErr.Sum, 1e-9)
}

func TestNewScorer_RejectsNegativeWeight(t *testing.T) {
	_, err := NewScorer(Weights{Skill: 1.1, Experience: -0.1})
	require.Error(t, err)
}

func TestNewScorer_AcceptsDefaults(t *testing.T) {
	s, err := NewScorer(DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, DefaultWeights(), s.Weights())
}

func TestScore_SkillBoundaries(t *testing.T) {
	s := NewDefaultScorer()

	noRequirements := s.Score(
		&types.StructuredProfile{},
		types.JobRequirements{},
		SimilarityAbsent,
	)
	assert.Equal(t, 100.0, noRequirements.Breakdown.Skill, "empty required set is trivially satisfied")

	halfCovered := s.Score(
		&types.StructuredProfile{Skills: []string{"Python"}},
		types.JobRequirements{RequiredSkills: []string{"Python", "Go"}},
		SimilarityAbsent,
	)
	assert.InDelta(t, 40.0, halfCovered.Breakdown.Skill, 1e-9)
}

func TestScore_PreferredSkillContribution(t *testing.T) {
	s := NewDefaultScorer()

	score := s.Score(
		&types.StructuredProfile{Skills: []string{"Python", "Go"}},
		types.JobRequirements{
			RequiredSkills:  []string{"Python"},
			PreferredSkills: []string{"Go", "Kubernetes"},
		},
		SimilarityAbsent,
	)
	assert.InDelta(t, 90.0, score.Breakdown.Skill, 1e-9, "80 from full required plus half of the preferred 20")
}

func TestScore_ExperienceBoundaries(t *testing.T) {
	s := NewDefaultScorer()
	cases := []struct {
		name      string
		candidate float64
		required  float64
		want      float64
	}{
		{"no requirement", 0, 0, 80},
		{"no requirement with surplus", 12, 0, 80},
		{"exactly meets bar", 5, 5, 80},
		{"double the requirement", 10, 5, 90},
		{"surplus bonus capped", 30, 5, 100},
		{"linear shortfall", 2, 5, 32},
		{"no experience at all", 0, 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := s.Score(
				&types.StructuredProfile{ExperienceYears: tc.candidate},
				types.JobRequirements{ExperienceMin: tc.required},
				SimilarityAbsent,
			)
			assert.InDelta(t, tc.want, score.Breakdown.Experience, 1e-9)
		})
	}
}

func TestScore_Education(t *testing.T) {
	s := NewDefaultScorer()
	masters := []types.EducationEntry{{Degree: "Master of Science"}}
	bachelors := []types.EducationEntry{{Degree: "B.Sc. Computer Science"}}

	cases := []struct {
		name      string
		education []types.EducationEntry
		required  string
		want      float64
	}{
		{"exceeds requirement", masters, "Bachelor's degree", 100},
		{"meets requirement", bachelors, "bachelor", 100},
		{"below requirement", bachelors, "PhD", 60},
		{"no requirement", nil, "", 100},
		{"unrecognized requirement", nil, "certified wizard", 100},
		{"no education against requirement", nil, "Bachelor", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := s.Score(
				&types.StructuredProfile{Education: tc.education},
				types.JobRequirements{EducationRequired: tc.required},
				SimilarityAbsent,
			)
			assert.InDelta(t, tc.want, score.Breakdown.Education, 1e-9)
		})
	}
}

func TestScore_Location(t *testing.T) {
	s := NewDefaultScorer()
	cases := []struct {
		name      string
		candidate string
		required  string
		remote    bool
		want      float64
	}{
		{"remote trumps everything", "Berlin", "New York", true, 100},
		{"exact case-insensitive", "new york", "New York", false, 100},
		{"substring", "Brooklyn, New York", "New York", false, 75},
		{"mismatch", "Berlin", "New York", false, 25},
		{"candidate unknown", "", "New York", false, 50},
		{"job unknown", "Berlin", "", false, 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := s.Score(
				&types.StructuredProfile{Contact: types.Contact{Location: tc.candidate}},
				types.JobRequirements{Location: tc.required, RemoteAllowed: tc.remote},
				SimilarityAbsent,
			)
			assert.InDelta(t, tc.want, score.Breakdown.Location, 1e-9)
		})
	}
}

func TestScore_SemanticRescaledAndClamped(t *testing.T) {
	s := NewDefaultScorer()
	profile := &types.StructuredProfile{}
	req := types.JobRequirements{}

	assert.InDelta(t, 80.0, s.Score(profile, req, 0.8).Breakdown.Semantic, 1e-9)
	assert.Zero(t, s.Score(profile, req, SimilarityAbsent).Breakdown.Semantic)
	assert.Equal(t, 100.0, s.Score(profile, req, 1.7).Breakdown.Semantic)
}

func TestScore_AbsentSimilarityKeepsWeight(t *testing.T) {
	s := NewDefaultScorer()
	profile := &types.StructuredProfile{Skills: []string{"Go"}, ExperienceYears: 5}
	req := types.JobRequirements{RequiredSkills: []string{"Go"}, ExperienceMin: 5}

	with := s.Score(profile, req, 1.0)
	without := s.Score(profile, req, SimilarityAbsent)

	assert.InDelta(t, DefaultWeights().Semantic*100, with.Overall-without.Overall, 1e-9,
		"the semantic weight still applies when similarity is absent")
}

func TestScore_OverallComposition(t *testing.T) {
	s := NewDefaultScorer()
	profile := &types.StructuredProfile{
		Contact:         types.Contact{Location: "Remote"},
		Skills:          []string{"Go"},
		ExperienceYears: 5,
		Education:       []types.EducationEntry{{Degree: "MSc"}},
	}
	req := types.JobRequirements{
		RequiredSkills:    []string{"Go"},
		ExperienceMin:     5,
		EducationRequired: "Bachelor",
		RemoteAllowed:     true,
	}

	score := s.Score(profile, req, 1.0)

	// 0.35*80 + 0.25*80 + 0.15*100 + 0.10*100 + 0.15*100
	want := 0.35*80.0 + 0.25*80 + 0.15*100 + 0.10*100 + 0.15*100
	assert.InDelta(t, want, score.Overall, 1e-9)
}

func TestScore_MatchedMissingSkills(t *testing.T) {
	s := NewDefaultScorer()

	score := s.Score(
		&types.StructuredProfile{Skills: []string{"python", "GO"}},
		types.JobRequirements{RequiredSkills: []string{"Python", "Go", "Rust"}},
		SimilarityAbsent,
	)

	assert.Equal(t, []string{"Go", "Python"}, score.MatchedSkills, "requirement spelling, case-insensitive match")
	assert.Equal(t, []string{"Rust"}, score.MissingSkills)
}

func TestWeightsFromMap(t *testing.T) {
	w, err := WeightsFromMap(map[string]float64{"skill": 0.5, "semantic": 0.5})
	require.NoError(t, err)
	assert.Equal(t, Weights{Skill: 0.5, Semantic: 0.5}, w)
	require.NoError(t, w.Validate())

	_, err = WeightsFromMap(map[string]float64{"vibes": 1.0})
	require.Error(t, err)
}
