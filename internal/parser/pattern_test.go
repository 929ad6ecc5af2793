package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPatternParser_Parse(t *testing.T) {
	p := NewPatternParser(nil)

	profile, err := p.Parse(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "john.doe@example.com", profile.Contact.Email)
	assert.Equal(t, "(555) 123-4567", profile.Contact.Phone)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Python"}, profile.Skills)
	assert.Nil(t, profile.ExperienceEntries)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "Bachelor", profile.Education[0].Degree)
	assert.Empty(t, profile.Education[0].Institution)
}

func TestPatternParser_PlusSuffixedYearsNotMatched(t *testing.T) {
	p := NewPatternParser(nil)

	profile, err := p.Parse("Engineer with 5+ years of experience shipping services")
	require.NoError(t, err)

	assert.Zero(t, profile.ExperienceYears)
	assert.Zero(t, profile.Confidence[types.ConfidenceExperience])
}

func TestPatternParser_PlainYearsMatched(t *testing.T) {
	p := NewPatternParser(nil)

	profile, err := p.Parse("Engineer with 7 years of experience shipping services")
	require.NoError(t, err)

	assert.Equal(t, 7.0, profile.ExperienceYears)
	assert.InDelta(t, 0.70, profile.Confidence[types.ConfidenceExperience], 1e-9)
}

func TestPatternParser_EmptyInput(t *testing.T) {
	p := NewPatternParser(nil)

	_, err := p.Parse("")
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestPatternParser_Deterministic(t *testing.T) {
	p := NewPatternParser(nil)

	first, err := p.Parse(sampleResume)
	require.NoError(t, err)
	second, err := p.Parse(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPatternParser_PhoneFormats(t *testing.T) {
	p := NewPatternParser(nil)

	cases := []struct {
		name string
		text string
		want string
	}{
		{"parenthesized", "call (555) 123-4567 today", "(555) 123-4567"},
		{"dashed", "call 555-123-4567 today", "555-123-4567"},
		{"dotted", "call 555.123.4567 today", "555.123.4567"},
		{"international", "call +1 555 123 4567 today", "+1 555 123 4567"},
		{"bare digits", "call 5551234567 today", "5551234567"},
		{"none", "no number here", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.extractPhone(tc.text))
		})
	}
}

func TestPatternParser_DegreeKeywords(t *testing.T) {
	p := NewPatternParser(nil)

	profile, err := p.Parse("Holds an MBA and a PhD, mentions bachelors informally")
	require.NoError(t, err)

	degrees := make([]string, 0, len(profile.Education))
	for _, e := range profile.Education {
		degrees = append(degrees, e.Degree)
	}
	assert.ElementsMatch(t, []string{"MBA", "PhD", "bachelors"}, degrees)
}
