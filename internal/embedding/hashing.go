package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"strings"
	"unicode"
)

// DefaultHashingDimension is the vector size of the fallback embedder.
const DefaultHashingDimension = 256

// HashingEmbedder is the offline fallback: a signed hashing-trick embedder.
// Each lowercased token is hashed with SHA-256 into a bucket, the bucket
// counts are sign-flipped by a second hash bit, and the result is L2
// normalized. Deterministic for fixed input, needs no network, and captures
// token overlap only; it is a degraded stand-in for the API embedder, not a
// semantic model.
type HashingEmbedder struct {
	dim int
}

// NewHashingEmbedder creates a hashing embedder. Non-positive dimensions
// select DefaultHashingDimension.
func NewHashingEmbedder(dim int) *HashingEmbedder {
	if dim <= 0 {
		dim = DefaultHashingDimension
	}
	return &HashingEmbedder{dim: dim}
}

// Embed implements Embedder. Text with no tokens yields the zero vector.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)
	for _, token := range tokenize(text) {
		sum := sha256.Sum256([]byte(token))
		bucket := binary.BigEndian.Uint32(sum[:4]) % uint32(e.dim)
		if sum[4]&1 == 0 {
			vec[bucket]++
		} else {
			vec[bucket]--
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

// Dimension implements Embedder.
func (e *HashingEmbedder) Dimension() int { return e.dim }

// Close implements Embedder.
func (e *HashingEmbedder) Close() error { return nil }

// tokenize lowercases the text and splits it on anything that is not a
// letter, digit, or the symbol characters common in skill names.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
}
