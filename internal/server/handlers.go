package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// ParseResponse is the JSON response of the parse endpoint. ProfileID is
// set only when the profile was persisted.
type ParseResponse struct {
	Parser    string                   `json:"parser"`
	Profile   *types.StructuredProfile `json:"profile"`
	ProfileID string                   `json:"profile_id,omitempty"`
}

// handleParse extracts text from an uploaded document (or takes raw text)
// and parses it with the selected parser. The parser query parameter picks
// "entity" (default) or "pattern".
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	selected, err := s.selectParser(r.URL.Query().Get("parser"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := s.requestText(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	profile, err := selected.Parse(text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := ParseResponse{Parser: selected.Name(), Profile: profile}
	if s.database != nil {
		id, err := s.database.SaveProfile(r.Context(), selected.Name(), profile)
		if err != nil {
			log.Printf("Failed to persist profile: %v", err)
		} else {
			resp.ProfileID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCompare runs both parsers over the same text and reports per-metric
// winners.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	text, err := s.requestText(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	report, err := parser.RunComparison(s.parserA, s.parserB, text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleMatch scores one profile against one job's requirements.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	scorer := s.scorer
	if req.Weights != nil {
		weights, err := scoring.WeightsFromMap(req.Weights)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		if scorer, err = scoring.NewScorer(weights); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	similarity := s.semanticSimilarity(r.Context(), ranking.ProfileText(&req.Profile), requirementsText(req.Requirements))
	score := scorer.Score(&req.Profile, req.Requirements, similarity)

	s.jsonResponse(w, http.StatusOK, score)
}

// handleRank scores and orders a candidate pool against one job.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.indexCandidates(r.Context(), req.Candidates)

	ranked, err := s.ranker.Rank(r.Context(), req.Requirements, req.Candidates, req.Filters, req.TopK)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if s.database != nil && req.JobID != "" {
		if err := s.database.SaveRanking(r.Context(), req.JobID, ranked); err != nil {
			log.Printf("Failed to persist ranking for job %s: %v", req.JobID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     req.JobID,
		"candidates": ranked,
	})
}

// handleResults returns the stored screening results for a job, best first.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if s.database == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "results require a configured database")
		return
	}

	jobID := r.PathValue("job_id")
	results, err := s.database.ListResultsByJob(r.Context(), jobID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to load results")
		return
	}

	if raw := r.URL.Query().Get("min_score"); raw != "" {
		minScore, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid min_score")
			return
		}
		filtered := results[:0]
		for _, result := range results {
			if result.Score.Overall >= minScore {
				filtered = append(filtered, result)
			}
		}
		results = filtered
	}
	if results == nil {
		results = []db.ScreeningResult{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":  jobID,
		"results": results,
	})
}

// selectParser resolves the parser query parameter.
func (s *Server) selectParser(name string) (parser.ResumeParser, error) {
	switch name {
	case "", "entity":
		return s.parserA, nil
	case "pattern":
		return s.parserB, nil
	default:
		return nil, &ErrValidation{Message: "unknown parser: " + name}
	}
}

// requestText produces normalized resume text from either a multipart file
// upload or a JSON text body.
func (s *Server) requestText(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", &ErrValidation{Message: "invalid multipart upload"}
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", &ErrValidation{Message: "missing file field"}
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return "", &ErrValidation{Message: "failed to read upload"}
		}

		mimeType := header.Header.Get("Content-Type")
		if override := r.URL.Query().Get("mime"); override != "" {
			mimeType = override
		}
		return extract.Text(extract.RawDocument{Data: data, MIMEType: mimeType})
	}

	var req types.ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", &ErrValidation{Message: "invalid request body"}
	}
	if err := req.Validate(); err != nil {
		return "", &ErrValidation{Message: extractValidationErrors(err)}
	}
	return extract.NormalizeText(req.Text), nil
}

// indexCandidates upserts candidate profile embeddings so retrieval can see
// the pool. Best effort: failures degrade the affected candidates to
// lexical-only scoring.
func (s *Server) indexCandidates(ctx context.Context, pool []types.CandidateProfile) {
	if s.embedder == nil || s.index == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	defer cancel()

	for i := range pool {
		vector, err := s.embedder.Embed(ctx, ranking.ProfileText(&pool[i].Profile))
		if err != nil {
			log.Printf("WARN: failed to embed candidate %s: %v", pool[i].ID, err)
			return
		}
		if err := s.index.Upsert(pool[i].ID, vector); err != nil {
			log.Printf("WARN: failed to index candidate %s: %v", pool[i].ID, err)
		}
	}
}

// semanticSimilarity embeds both texts and returns their cosine similarity
// clamped to [0, 1], or scoring.SimilarityAbsent when embedding is
// unavailable or fails.
func (s *Server) semanticSimilarity(ctx context.Context, a, b string) float64 {
	if s.embedder == nil {
		return scoring.SimilarityAbsent
	}

	ctx, cancel := context.WithTimeout(ctx, s.retrievalTimeout)
	defer cancel()

	va, err := s.embedder.Embed(ctx, a)
	if err != nil {
		log.Printf("WARN: embedding unavailable, matching lexical-only: %v", err)
		return scoring.SimilarityAbsent
	}
	vb, err := s.embedder.Embed(ctx, b)
	if err != nil {
		log.Printf("WARN: embedding unavailable, matching lexical-only: %v", err)
		return scoring.SimilarityAbsent
	}

	similarity := cosine(va, vb)
	if similarity < 0 {
		return 0
	}
	return similarity
}

// requirementsText flattens job requirements into embeddable text.
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

func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
