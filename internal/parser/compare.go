package parser

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Metrics computes extraction-yield metrics for one parsed profile.
func Metrics(profile *types.StructuredProfile, elapsed time.Duration) types.ParserMetrics {
	return types.ParserMetrics{
		SkillsCount:       len(profile.Skills),
		ExperienceYears:   profile.ExperienceYears,
		ExperienceEntries: len(profile.ExperienceEntries),
		EducationEntries:  len(profile.Education),
		HasEmail:          profile.Contact.Email != "",
		HasPhone:          profile.Contact.Phone != "",
		ParseTimeMS:       float64(elapsed) / float64(time.Millisecond),
	}
}

// Compare builds a comparison report from the metrics of two parser runs
// over the same extracted text. Pure aggregation: neither profile is
// touched. Winner rules: higher skill count wins, nonzero experience years
// beat zero, lower parse time wins; anything else is reported as "tie",
// never broken arbitrarily.
func Compare(parserA, parserB types.ParserMetrics) *types.ComparisonReport {
	return &types.ComparisonReport{
		ParserA:       parserA,
		ParserB:       parserB,
		Winner:        winners(parserA, parserB),
		GeneratedAt:   time.Now().UTC(),
		ResumesTested: 1,
	}
}

// RunComparison parses the same text with both parsers concurrently,
// capturing wall-clock timing around each invocation, and reports the
// per-metric winners. Used for quality monitoring, not production parser
// selection.
func RunComparison(parserA, parserB ResumeParser, text string) (*types.ComparisonReport, error) {
	var (
		metricsA types.ParserMetrics
		metricsB types.ParserMetrics
	)

	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		profile, err := parserA.Parse(text)
		if err != nil {
			return err
		}
		metricsA = Metrics(profile, time.Since(start))
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		profile, err := parserB.Parse(text)
		if err != nil {
			return err
		}
		metricsB = Metrics(profile, time.Since(start))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compare(metricsA, metricsB), nil
}

// AggregateReports merges per-resume reports into a corpus-level report:
// yield counts are summed, parse times are averaged, contact booleans hold
// only when they held for every resume, and winners are recomputed from
// the aggregate metrics.
func AggregateReports(reports []*types.ComparisonReport) *types.ComparisonReport {
	if len(reports) == 0 {
		return nil
	}
	if len(reports) == 1 {
		return reports[0]
	}

	var a, b types.ParserMetrics
	a.HasEmail, a.HasPhone = true, true
	b.HasEmail, b.HasPhone = true, true
	total := 0
	for _, r := range reports {
		total += r.ResumesTested
		a = accumulate(a, r.ParserA)
		b = accumulate(b, r.ParserB)
	}
	a.ParseTimeMS /= float64(len(reports))
	b.ParseTimeMS /= float64(len(reports))

	return &types.ComparisonReport{
		ParserA:       a,
		ParserB:       b,
		Winner:        winners(a, b),
		GeneratedAt:   time.Now().UTC(),
		ResumesTested: total,
	}
}

func accumulate(sum, m types.ParserMetrics) types.ParserMetrics {
	sum.SkillsCount += m.SkillsCount
	sum.ExperienceEntries += m.ExperienceEntries
	sum.EducationEntries += m.EducationEntries
	sum.ExperienceYears += m.ExperienceYears
	sum.ParseTimeMS += m.ParseTimeMS
	sum.HasEmail = sum.HasEmail && m.HasEmail
	sum.HasPhone = sum.HasPhone && m.HasPhone
	return sum
}

func winners(a, b types.ParserMetrics) map[string]string {
	w := map[string]string{
		types.MetricSkills:     types.WinnerTie,
		types.MetricExperience: types.WinnerTie,
		types.MetricSpeed:      types.WinnerTie,
	}

	switch {
	case a.SkillsCount > b.SkillsCount:
		w[types.MetricSkills] = types.WinnerParserA
	case b.SkillsCount > a.SkillsCount:
		w[types.MetricSkills] = types.WinnerParserB
	}

	switch {
	case a.ExperienceYears > 0 && b.ExperienceYears == 0:
		w[types.MetricExperience] = types.WinnerParserA
	case b.ExperienceYears > 0 && a.ExperienceYears == 0:
		w[types.MetricExperience] = types.WinnerParserB
	}

	switch {
	case a.ParseTimeMS < b.ParseTimeMS:
		w[types.MetricSpeed] = types.WinnerParserA
	case b.ParseTimeMS < a.ParseTimeMS:
		w[types.MetricSpeed] = types.WinnerParserB
	}

	return w
}
