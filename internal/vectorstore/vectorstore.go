// Package vectorstore provides candidate vector storage and cosine
// similarity search for the semantic half of match scoring.
package vectorstore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// Hit is one similarity search result. Score is cosine similarity in [-1, 1].
type Hit struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SimilaritySearcher is the read side of a vector store.
type SimilaritySearcher interface {
	// SimilaritySearch returns up to k hits ordered by descending cosine
	// similarity to the query vector, ID ascending on equal scores.
	SimilaritySearch(ctx context.Context, query []float32, k int) ([]Hit, error)
}

// Memory is an in-memory vector index guarded by a read-write mutex. All
// vectors must share the dimension fixed at construction.
type Memory struct {
	mu      sync.RWMutex
	dim     int
	vectors map[string][]float32
}

// NewMemory creates an empty in-memory index for vectors of the given
// dimension.
func NewMemory(dim int) *Memory {
	return &Memory{
		dim:     dim,
		vectors: make(map[string][]float32),
	}
}

// Upsert stores or replaces the vector for id.
func (m *Memory) Upsert(id string, vector []float32) error {
	if id == "" {
		return fmt.Errorf("vector id must not be empty")
	}
	if len(vector) != m.dim {
		return fmt.Errorf("vector dimension %d does not match index dimension %d", len(vector), m.dim)
	}

	stored := make([]float32, len(vector))
	copy(stored, vector)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.vectors[id] = stored
	return nil
}

// Delete removes the vector for id. Deleting an absent id is a no-op.
func (m *Memory) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vectors, id)
}

// Len reports the number of stored vectors.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vectors)
}

// SimilaritySearch implements SimilaritySearcher.
func (m *Memory) SimilaritySearch(ctx context.Context, query []float32, k int) ([]Hit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(query) != m.dim {
		return nil, fmt.Errorf("query dimension %d does not match index dimension %d", len(query), m.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	m.mu.RLock()
	hits := make([]Hit, 0, len(m.vectors))
	for id, vec := range m.vectors {
		hits = append(hits, Hit{ID: id, Score: cosine(query, vec)})
	}
	m.mu.RUnlock()

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].ID < hits[j].ID
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// cosine computes cosine similarity; either zero vector yields 0.
func cosine(a, b []float32) float64 {
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
