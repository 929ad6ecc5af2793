package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

var (
	rankJobFile        string
	rankCandidatesFile string
	rankTopK           int
	rankMinScore       float64
	rankMustHave       []string
	rankMinExperience  float64
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a candidate pool against job requirements",
	Long: "Loads job requirements and a candidate pool, scores every candidate and\n" +
		"prints them ordered best first. Semantic similarity uses the local hashing\n" +
		"embedder.",
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankJobFile, "job", "", "job requirements JSON file (required)")
	rankCmd.Flags().StringVar(&rankCandidatesFile, "candidates", "", "candidate pool JSON file (required)")
	rankCmd.Flags().IntVar(&rankTopK, "top-k", 0, "return only the top K candidates (0 for all)")
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 0, "drop candidates below this overall score")
	rankCmd.Flags().StringSliceVar(&rankMustHave, "must-have", nil, "skills every returned candidate must have matched")
	rankCmd.Flags().Float64Var(&rankMinExperience, "min-experience", 0, "drop candidates below this many years of experience")
	_ = rankCmd.MarkFlagRequired("job")
	_ = rankCmd.MarkFlagRequired("candidates")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	req, err := loadJobRequirements(rankJobFile)
	if err != nil {
		return err
	}

	var pool []types.CandidateProfile
	if err := loadJSON(rankCandidatesFile, &pool); err != nil {
		return err
	}
	if len(pool) == 0 {
		return fmt.Errorf("candidate pool is empty")
	}

	ctx := context.Background()
	embedder := embedding.NewHashingEmbedder(0)
	index := vectorstore.NewMemory(embedder.Dimension())
	for i := range pool {
		vec, err := embedder.Embed(ctx, ranking.ProfileText(&pool[i].Profile))
		if err != nil {
			return fmt.Errorf("failed to embed candidate %s: %w", pool[i].ID, err)
		}
		if err := index.Upsert(pool[i].ID, vec); err != nil {
			return fmt.Errorf("failed to index candidate %s: %w", pool[i].ID, err)
		}
	}

	var filters *types.RankFilters
	if rankMinScore > 0 || len(rankMustHave) > 0 || rankMinExperience > 0 {
		filters = &types.RankFilters{
			MinScore:       rankMinScore,
			MustHaveSkills: rankMustHave,
			MinExperience:  rankMinExperience,
		}
	}

	ranker := ranking.NewRanker(scoring.NewDefaultScorer(), embedder, index, ranking.DefaultRetrievalTimeout)
	ranked, err := ranker.Rank(ctx, req, pool, filters, rankTopK)
	if err != nil {
		return err
	}
	return printJSON(ranked)
}
