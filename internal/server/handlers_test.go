package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/parser"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

// testServer builds a server with in-memory collaborators and no database.
func testServer() *Server {
	embedder := embedding.NewHashingEmbedder(64)
	index := vectorstore.NewMemory(embedder.Dimension())
	return &Server{
		parserA:          parser.NewEntityParser(nil),
		parserB:          parser.NewPatternParser(nil),
		scorer:           scoring.NewDefaultScorer(),
		ranker:           ranking.NewRanker(scoring.NewDefaultScorer(), embedder, index, time.Second),
		embedder:         embedder,
		index:            index,
		retrievalTimeout: time.Second,
	}
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

const handlerResume = `SKILLS
Python, Go, PostgreSQL

EXPERIENCE
Senior Engineer at Acme Corp (2019 - 2023)
Shipped platforms over 6 years of experience in backend work`

func TestHandleParse_Entity(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/parse", types.ParseTextRequest{Text: handlerResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "entity", resp.Parser)
	assert.Contains(t, resp.Profile.Skills, "Go")
	assert.Equal(t, 6.0, resp.Profile.ExperienceYears)
	assert.Empty(t, resp.ProfileID, "no database configured")
}

func TestHandleParse_PatternSelection(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/parse?parser=pattern", types.ParseTextRequest{Text: handlerResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pattern", resp.Parser)
}

func TestHandleParse_UnknownParser(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/parse?parser=quantum", types.ParseTextRequest{Text: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleParse_EmptyText(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/parse", types.ParseTextRequest{Text: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleCompare(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodPost, "/compare", types.ParseTextRequest{Text: handlerResume})

	require.Equal(t, http.StatusOK, rec.Code)
	var report types.ComparisonReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.ResumesTested)
	assert.Contains(t, report.Winner, types.MetricExperience)
}

func TestHandleMatch_DefaultWeights(t *testing.T) {
	req := types.MatchRequest{
		Profile: types.StructuredProfile{
			Skills:          []string{"Go", "Python"},
			ExperienceYears: 5,
		},
		Requirements: types.JobRequirements{
			RequiredSkills: []string{"Go"},
			ExperienceMin:  5,
			RemoteAllowed:  true,
		},
	}

	rec := doJSON(t, testServer(), http.MethodPost, "/match", req)

	require.Equal(t, http.StatusOK, rec.Code)
	var score types.MatchScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &score))
	assert.Equal(t, []string{"Go"}, score.MatchedSkills)
	assert.Greater(t, score.Overall, 0.0)
}

func TestHandleMatch_BadWeights(t *testing.T) {
	req := types.MatchRequest{
		Profile:      types.StructuredProfile{Skills: []string{"Go"}},
		Requirements: types.JobRequirements{RequiredSkills: []string{"Go"}},
		Weights:      map[string]float64{"skill": 0.5, "semantic": 0.4},
	}

	rec := doJSON(t, testServer(), http.MethodPost, "/match", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid weight configuration")
}

func TestHandleRank(t *testing.T) {
	req := types.RankRequest{
		Requirements: types.JobRequirements{RequiredSkills: []string{"Go", "Kubernetes"}},
		Candidates: []types.CandidateProfile{
			{ID: "weak", Profile: types.StructuredProfile{Skills: []string{"Go"}}},
			{ID: "strong", Profile: types.StructuredProfile{Skills: []string{"Go", "Kubernetes"}}},
		},
		TopK: 1,
	}

	rec := doJSON(t, testServer(), http.MethodPost, "/rank", req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Candidates []types.RankedCandidate `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Candidates, 1)
	assert.Equal(t, "strong", resp.Candidates[0].CandidateID)
}

func TestHandleRank_EmptyPoolRejected(t *testing.T) {
	req := types.RankRequest{
		Requirements: types.JobRequirements{RequiredSkills: []string{"Go"}},
	}

	rec := doJSON(t, testServer(), http.MethodPost, "/rank", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResults_NoDatabase(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodGet, "/results/job-1", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	rec := doJSON(t, testServer(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRoutes_AuthRequiredWhenConfigured(t *testing.T) {
	s := testServer()
	s.jwtService = NewJWTService(testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/parse", bytes.NewBufferString(`{"text":"x"}`))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Health stays open.
	rec = httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
