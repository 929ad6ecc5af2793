// Package embedding turns resume and job text into dense vectors for
// semantic similarity. The primary embedder calls the Gemini embedding API;
// a deterministic hashing embedder serves as the offline fallback so the
// pipeline degrades instead of failing when no API key is configured.
package embedding

import "context"

// Embedder produces a fixed-dimension vector for a piece of text. Vectors
// from different Embedder implementations are not comparable to each other.
type Embedder interface {
	// Embed returns the embedding vector for text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Dimension reports the length of vectors this embedder produces.
	Dimension() int
	// Close releases any resources held by the embedder.
	Close() error
}
