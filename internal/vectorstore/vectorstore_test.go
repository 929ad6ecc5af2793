package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SimilaritySearch(t *testing.T) {
	m := NewMemory(3)
	require.NoError(t, m.Upsert("aligned", []float32{1, 0, 0}))
	require.NoError(t, m.Upsert("diagonal", []float32{1, 1, 0}))
	require.NoError(t, m.Upsert("orthogonal", []float32{0, 0, 1}))

	hits, err := m.SimilaritySearch(context.Background(), []float32{1, 0, 0}, 2)
	require.NoError(t, err)

	require.Len(t, hits, 2)
	assert.Equal(t, "aligned", hits[0].ID)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)
	assert.Equal(t, "diagonal", hits[1].ID)
	assert.InDelta(t, 0.7071, hits[1].Score, 1e-4)
}

func TestMemory_TieBreakByID(t *testing.T) {
	m := NewMemory(2)
	require.NoError(t, m.Upsert("b", []float32{1, 0}))
	require.NoError(t, m.Upsert("a", []float32{1, 0}))
	require.NoError(t, m.Upsert("c", []float32{1, 0}))

	hits, err := m.SimilaritySearch(context.Background(), []float32{1, 0}, 3)
	require.NoError(t, err)

	ids := []string{hits[0].ID, hits[1].ID, hits[2].ID}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestMemory_UpsertReplacesAndDeletes(t *testing.T) {
	m := NewMemory(2)
	require.NoError(t, m.Upsert("x", []float32{1, 0}))
	require.NoError(t, m.Upsert("x", []float32{0, 1}))
	assert.Equal(t, 1, m.Len())

	hits, err := m.SimilaritySearch(context.Background(), []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 1.0, hits[0].Score, 1e-9)

	m.Delete("x")
	m.Delete("x") // absent id is a no-op
	assert.Zero(t, m.Len())
}

func TestMemory_DimensionMismatch(t *testing.T) {
	m := NewMemory(4)

	require.Error(t, m.Upsert("short", []float32{1, 2}))
	_, err := m.SimilaritySearch(context.Background(), []float32{1}, 1)
	require.Error(t, err)
}

func TestMemory_EmptyIDRejected(t *testing.T) {
	m := NewMemory(1)
	require.Error(t, m.Upsert("", []float32{1}))
}

func TestMemory_ZeroVectorScoresZero(t *testing.T) {
	m := NewMemory(2)
	require.NoError(t, m.Upsert("zero", []float32{0, 0}))

	hits, err := m.SimilaritySearch(context.Background(), []float32{1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Zero(t, hits[0].Score)
}

func TestMemory_CancelledContext(t *testing.T) {
	m := NewMemory(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.SimilaritySearch(ctx, []float32{1}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
