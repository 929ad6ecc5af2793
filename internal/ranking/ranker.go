// Package ranking scores a pool of candidates against one job's
// requirements and produces a deterministic, filtered, top-K ordering.
package ranking

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

// DefaultRetrievalTimeout bounds the semantic retrieval call.
const DefaultRetrievalTimeout = 3 * time.Second

// scoreConcurrency bounds the parallel scoring fan-out.
const scoreConcurrency = 8

// Ranker combines lexical scoring with semantic retrieval. The embedder and
// searcher are optional: without them every candidate scores with an absent
// similarity and ranking is lexical-only.
type Ranker struct {
	scorer   *scoring.Scorer
	embedder embedding.Embedder
	searcher vectorstore.SimilaritySearcher
	timeout  time.Duration
}

// NewRanker creates a ranker. A nil embedder or searcher disables the
// semantic path; a non-positive timeout selects DefaultRetrievalTimeout.
func NewRanker(scorer *scoring.Scorer, embedder embedding.Embedder, searcher vectorstore.SimilaritySearcher, timeout time.Duration) *Ranker {
	if timeout <= 0 {
		timeout = DefaultRetrievalTimeout
	}
	return &Ranker{
		scorer:   scorer,
		embedder: embedder,
		searcher: searcher,
		timeout:  timeout,
	}
}

// Rank scores every candidate in the pool against the requirements,
// applies the filters as strict predicates, sorts by overall score
// descending with candidate ID as the tie-breaker, and truncates to topK
// (topK <= 0 means unbounded). Retrieval failure or timeout degrades to
// lexical-only scoring for the affected candidates; it never aborts the
// ranking.
func (r *Ranker) Rank(ctx context.Context, req types.JobRequirements, pool []types.CandidateProfile, filters *types.RankFilters, topK int) ([]types.RankedCandidate, error) {
	similarities := r.fetchSimilarities(ctx, req, len(pool))

	scored := make([]types.RankedCandidate, len(pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for i, candidate := range pool {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			similarity := scoring.SimilarityAbsent
			if s, ok := similarities[candidate.ID]; ok {
				similarity = s
			}
			scored[i] = types.RankedCandidate{
				CandidateID: candidate.ID,
				Score:       *r.scorer.Score(&candidate.Profile, req, similarity),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if filters != nil {
		scored = applyFilters(scored, pool, *filters)
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score.Overall != scored[j].Score.Overall {
			return scored[i].Score.Overall > scored[j].Score.Overall
		}
		return scored[i].CandidateID < scored[j].CandidateID
	})

	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}

// fetchSimilarities embeds the requirements and queries the vector store
// under the retrieval budget. Any failure yields an empty map, which scores
// every candidate with an absent similarity.
func (r *Ranker) fetchSimilarities(ctx context.Context, req types.JobRequirements, poolSize int) map[string]float64 {
	if r.embedder == nil || r.searcher == nil || poolSize == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	vector, err := r.embedder.Embed(ctx, requirementsText(req))
	if err == nil {
		var hits []vectorstore.Hit
		hits, err = r.searcher.SimilaritySearch(ctx, vector, poolSize)
		if err == nil {
			similarities := make(map[string]float64, len(hits))
			for _, h := range hits {
				similarities[h.ID] = h.Score
			}
			return similarities
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		err = &RetrievalTimeoutError{Budget: r.timeout, Cause: err}
	}
	log.Printf("WARN: semantic retrieval unavailable, ranking lexical-only: %v", err)
	return nil
}

// requirementsText flattens requirements into the text embedded for
// semantic retrieval.
func requirementsText(req types.JobRequirements) string {
	parts := make([]string, 0, len(req.RequiredSkills)+len(req.PreferredSkills)+2)
	parts = append(parts, req.RequiredSkills...)
	parts = append(parts, req.PreferredSkills...)
	if req.EducationRequired != "" {
		parts = append(parts, req.EducationRequired)
	}
	if req.Location != "" {
		parts = append(parts, req.Location)
	}
	return strings.Join(parts, " ")
}

// ProfileText flattens a profile into the text embedded for retrieval:
// skills, position titles, and degree names.
func ProfileText(p *types.StructuredProfile) string {
	parts := make([]string, 0, len(p.Skills)+len(p.ExperienceEntries)+len(p.Education))
	parts = append(parts, p.Skills...)
	for _, e := range p.ExperienceEntries {
		parts = append(parts, e.Title)
	}
	for _, e := range p.Education {
		parts = append(parts, e.Degree)
	}
	return strings.Join(parts, " ")
}

// applyFilters drops candidates failing any predicate. Must-have skills
// require full subset coverage of the matched skills; partial coverage
// fails the filter.
func applyFilters(scored []types.RankedCandidate, pool []types.CandidateProfile, filters types.RankFilters) []types.RankedCandidate {
	years := make(map[string]float64, len(pool))
	for _, c := range pool {
		years[c.ID] = c.Profile.ExperienceYears
	}

	kept := scored[:0]
	for _, rc := range scored {
		if rc.Score.Overall < filters.MinScore {
			continue
		}
		if years[rc.CandidateID] < filters.MinExperience {
			continue
		}
		if !containsAll(rc.Score.MatchedSkills, filters.MustHaveSkills) {
			continue
		}
		kept = append(kept, rc)
	}
	return kept
}

// containsAll reports whether every wanted skill is present in have,
// case-insensitively.
func containsAll(have, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	set := make(map[string]bool, len(have))
	for _, s := range have {
		set[strings.ToLower(s)] = true
	}
	for _, s := range wanted {
		if !set[strings.ToLower(s)] {
			return false
		}
	}
	return true
}
